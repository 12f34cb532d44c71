package dna

import (
	"encoding/json"
	"strings"
)

// extractJSON strips markdown code fences and leading prose so that answers
// like "Here is the analysis:\n```json\n{...}\n```" still parse. Returns the
// input unchanged when no JSON object or array can be located.
func extractJSON(content string) string {
	s := strings.TrimSpace(content)

	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
		s = strings.TrimPrefix(s, "json")
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
		s = strings.TrimSpace(s)
	}

	objStart := strings.IndexAny(s, "{[")
	if objStart < 0 {
		return s
	}
	var closer byte = '}'
	if s[objStart] == '[' {
		closer = ']'
	}
	objEnd := strings.LastIndexByte(s, closer)
	if objEnd <= objStart {
		return s
	}
	return s[objStart : objEnd+1]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseProfileAnalysis parses a profile-analysis answer. On failure it
// returns the fallback score set together with a ParseFailure error; the
// caller persists the fallback and decides whether to surface the error.
func ParseProfileAnalysis(content string) (*ProfileAnalysis, *AnalysisError) {
	var a ProfileAnalysis
	if err := json.Unmarshal([]byte(extractJSON(content)), &a); err != nil {
		return FallbackProfileAnalysis(), NewParseError(content, err)
	}

	a.EmotionalIntelligenceScore = clamp(a.EmotionalIntelligenceScore, 0, 100)
	a.InteractionQualityScore = clamp(a.InteractionQualityScore, 0, 100)
	a.EmpathyScore = clamp(a.EmpathyScore, 0, 100)
	a.VulnerabilityComfort = clamp(a.VulnerabilityComfort, 0, 100)

	if a.CommunicationStyle == nil {
		a.CommunicationStyle = map[string]interface{}{}
	}
	if a.EmotionalPatterns == nil {
		a.EmotionalPatterns = map[string]interface{}{}
	}
	if a.PersonalityMarkers == nil {
		a.PersonalityMarkers = map[string]interface{}{}
	}
	return &a, nil
}

func ParseInteractionAnalysis(content string) (*InteractionAnalysis, *AnalysisError) {
	var a InteractionAnalysis
	if err := json.Unmarshal([]byte(extractJSON(content)), &a); err != nil {
		return FallbackInteractionAnalysis(), NewParseError(content, err)
	}

	a.SentimentScore = clamp(a.SentimentScore, -1, 1)
	a.VulnerabilityLevel = clamp(a.VulnerabilityLevel, 0, 1)
	a.EngagementScore = clamp(a.EngagementScore, 0, 1)

	if a.EmotionalMarkers == nil {
		a.EmotionalMarkers = []string{}
	}
	if a.EmpathyIndicators == nil {
		a.EmpathyIndicators = []string{}
	}
	return &a, nil
}

func ParseCompatibilityAnalysis(content string) (*CompatibilityAnalysis, *AnalysisError) {
	var a CompatibilityAnalysis
	if err := json.Unmarshal([]byte(extractJSON(content)), &a); err != nil {
		return FallbackCompatibilityAnalysis(), NewParseError(content, err)
	}

	a.OverallCompatibilityScore = clamp(a.OverallCompatibilityScore, 0, 100)
	a.EmotionalSyncScore = clamp(a.EmotionalSyncScore, 0, 100)
	a.CommunicationCompatibility = clamp(a.CommunicationCompatibility, 0, 100)
	a.PersonalityMatchScore = clamp(a.PersonalityMatchScore, 0, 100)
	a.SharedValuesScore = clamp(a.SharedValuesScore, 0, 100)
	a.GrowthPotentialScore = clamp(a.GrowthPotentialScore, 0, 100)
	a.ConflictHarmonyScore = clamp(a.ConflictHarmonyScore, 0, 100)
	a.AnalysisConfidence = clamp(a.AnalysisConfidence, 0, 1)

	if a.DetailedAnalysis == nil {
		a.DetailedAnalysis = map[string]interface{}{}
	}
	if a.Strengths == nil {
		a.Strengths = []string{}
	}
	if a.GrowthAreas == nil {
		a.GrowthAreas = []string{}
	}
	if a.ConversationStarters == nil {
		a.ConversationStarters = []string{}
	}
	if a.DateIdeas == nil {
		a.DateIdeas = []string{}
	}
	return &a, nil
}

// ParseInsights parses the insight array. Answers wrapped in an object like
// {"insights": [...]} are accepted too since models drift into that shape.
func ParseInsights(content string) ([]Insight, *AnalysisError) {
	raw := extractJSON(content)

	var list []Insight
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		var wrapped struct {
			Insights []Insight `json:"insights"`
		}
		if err2 := json.Unmarshal([]byte(raw), &wrapped); err2 != nil || len(wrapped.Insights) == 0 {
			return FallbackInsights(), NewParseError(content, err)
		}
		list = wrapped.Insights
	}

	for i := range list {
		if list[i].ActionableSteps == nil {
			list[i].ActionableSteps = []string{}
		}
		if list[i].PriorityLevel == "" {
			list[i].PriorityLevel = "medium"
		}
		if list[i].Category == "" {
			list[i].Category = "general"
		}
	}
	return list, nil
}

func ParseMatchScore(content string) (*MatchScore, *AnalysisError) {
	var m MatchScore
	if err := json.Unmarshal([]byte(extractJSON(content)), &m); err != nil {
		return nil, NewParseError(content, err)
	}

	m.CompatibilityScore = clamp(m.CompatibilityScore, 0, 100)
	if m.CompatibilityBreakdown == nil {
		m.CompatibilityBreakdown = map[string]float64{}
	}
	if m.Strengths == nil {
		m.Strengths = []string{}
	}
	if m.PotentialChallenges == nil {
		m.PotentialChallenges = []string{}
	}
	if m.SharedInterests == nil {
		m.SharedInterests = []string{}
	}
	if m.ConversationStarters == nil {
		m.ConversationStarters = []string{}
	}
	return &m, nil
}

func ParseDigestContent(content string) (*DigestContent, *AnalysisError) {
	var d DigestContent
	if err := json.Unmarshal([]byte(extractJSON(content)), &d); err != nil {
		return FallbackDigestContent(), NewParseError(content, err)
	}
	if d.Insights == nil {
		d.Insights = []string{}
	}
	if d.ConversationStarters == nil {
		d.ConversationStarters = []DigestStarter{}
	}
	return &d, nil
}
