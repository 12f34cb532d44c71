package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// JSON column helpers shared by the mappers. Marshal failures degrade to
// empty JSON rather than propagating; the columns are presentation data.

func toJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return datatypes.JSON("null")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}

func jsonToMap(j datatypes.JSON) map[string]interface{} {
	if len(j) == 0 {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(j, &m); err != nil {
		return nil
	}
	return m
}

func jsonToStrings(j datatypes.JSON) []string {
	if len(j) == 0 {
		return nil
	}
	var s []string
	if err := json.Unmarshal(j, &s); err != nil {
		return nil
	}
	return s
}

func jsonToFloatMap(j datatypes.JSON) map[string]float64 {
	if len(j) == 0 {
		return nil
	}
	var m map[string]float64
	if err := json.Unmarshal(j, &m); err != nil {
		return nil
	}
	return m
}
