package dto

import (
	"time"

	"getunlocked-be/internal/entity"
)

type DigestStarterDTO struct {
	MatchId string `json:"match_id"`
	Name    string `json:"name"`
	Starter string `json:"starter"`
}

type DigestResponse struct {
	DigestDate time.Time          `json:"digest_date"`
	Greeting   string             `json:"greeting"`
	Insights   []string           `json:"insights"`
	Starters   []DigestStarterDTO `json:"starters"`
	Motivation string             `json:"motivation"`
}

func DigestResponseFrom(d *entity.CompatibilityDigest) *DigestResponse {
	starters := make([]DigestStarterDTO, 0, len(d.Starters))
	for _, s := range d.Starters {
		starters = append(starters, DigestStarterDTO{
			MatchId: s.MatchId,
			Name:    s.Name,
			Starter: s.Starter,
		})
	}
	return &DigestResponse{
		DigestDate: d.DigestDate,
		Greeting:   d.Greeting,
		Insights:   d.Insights,
		Starters:   starters,
		Motivation: d.Motivation,
	}
}
