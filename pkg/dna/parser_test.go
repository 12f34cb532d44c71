package dna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileAnalysis_Valid(t *testing.T) {
	content := `{
		"emotional_intelligence_score": 88,
		"interaction_quality_score": 72,
		"empathy_score": 91,
		"vulnerability_comfort": 60,
		"communication_style": {"primary": "direct"},
		"love_language_primary": "words_of_affirmation",
		"conflict_resolution_style": "collaborative"
	}`

	a, aerr := ParseProfileAnalysis(content)
	require.Nil(t, aerr)
	assert.Equal(t, 88.0, a.EmotionalIntelligenceScore)
	assert.Equal(t, "words_of_affirmation", a.LoveLanguagePrimary)
	assert.NotNil(t, a.EmotionalPatterns)
	assert.NotNil(t, a.PersonalityMarkers)
}

func TestParseProfileAnalysis_FencedMarkdown(t *testing.T) {
	content := "Here is the analysis:\n```json\n{\"emotional_intelligence_score\": 50, \"empathy_score\": 40}\n```\nHope that helps!"

	a, aerr := ParseProfileAnalysis(content)
	require.Nil(t, aerr)
	assert.Equal(t, 50.0, a.EmotionalIntelligenceScore)
	assert.Equal(t, 40.0, a.EmpathyScore)
}

func TestParseProfileAnalysis_ClampsScores(t *testing.T) {
	content := `{"emotional_intelligence_score": 140, "empathy_score": -20}`

	a, aerr := ParseProfileAnalysis(content)
	require.Nil(t, aerr)
	assert.Equal(t, 100.0, a.EmotionalIntelligenceScore)
	assert.Equal(t, 0.0, a.EmpathyScore)
}

func TestParseProfileAnalysis_GarbageFallsBack(t *testing.T) {
	a, aerr := ParseProfileAnalysis("I'm sorry, I can't help with that.")
	require.NotNil(t, aerr)
	assert.Equal(t, ParseFailure, aerr.Kind)
	assert.Contains(t, aerr.Raw, "sorry")

	assert.Equal(t, 75.0, a.EmotionalIntelligenceScore)
	assert.Equal(t, 70.0, a.InteractionQualityScore)
	assert.Equal(t, 80.0, a.EmpathyScore)
	assert.Equal(t, 65.0, a.VulnerabilityComfort)
	assert.Equal(t, "quality_time", a.LoveLanguagePrimary)
	assert.Equal(t, "collaborative", a.ConflictResolutionStyle)
}

func TestParseInteractionAnalysis_ClampsSentimentRange(t *testing.T) {
	a, aerr := ParseInteractionAnalysis(`{"sentiment_score": -3.0, "vulnerability_level": 1.4, "engagement_score": 0.9}`)
	require.Nil(t, aerr)
	assert.Equal(t, -1.0, a.SentimentScore)
	assert.Equal(t, 1.0, a.VulnerabilityLevel)
	assert.Equal(t, 0.9, a.EngagementScore)
	assert.NotNil(t, a.EmotionalMarkers)
	assert.NotNil(t, a.EmpathyIndicators)
}

func TestParseInteractionAnalysis_GarbageFallsBack(t *testing.T) {
	a, aerr := ParseInteractionAnalysis("not json at all")
	require.NotNil(t, aerr)
	assert.Equal(t, ParseFailure, aerr.Kind)
	assert.Equal(t, 0.5, a.SentimentScore)
	assert.Equal(t, 0.3, a.VulnerabilityLevel)
	assert.Equal(t, 0.7, a.EngagementScore)
	assert.Equal(t, []string{"positive", "engaged"}, a.EmotionalMarkers)
}

func TestParseCompatibilityAnalysis_Valid(t *testing.T) {
	content := `{
		"overall_compatibility_score": 91.5,
		"emotional_sync_score": 88,
		"communication_compatibility": 85,
		"personality_match_score": 90,
		"analysis_confidence": 0.93,
		"strengths": ["humor"],
		"date_ideas": ["museum"]
	}`

	a, aerr := ParseCompatibilityAnalysis(content)
	require.Nil(t, aerr)
	assert.Equal(t, 91.5, a.OverallCompatibilityScore)
	assert.Equal(t, 0.93, a.AnalysisConfidence)
	assert.Equal(t, []string{"humor"}, a.Strengths)
	assert.NotNil(t, a.GrowthAreas)
	assert.NotNil(t, a.ConversationStarters)
}

func TestParseCompatibilityAnalysis_GarbageFallsBack(t *testing.T) {
	a, aerr := ParseCompatibilityAnalysis("```\noops\n```")
	require.NotNil(t, aerr)
	assert.Equal(t, 78.5, a.OverallCompatibilityScore)
	assert.Equal(t, 82.0, a.EmotionalSyncScore)
	assert.Equal(t, 0.7, a.AnalysisConfidence)
}

func TestParseInsights_Array(t *testing.T) {
	content := `[
		{"title": "Slow down", "description": "d", "actionable_steps": ["pause"], "priority_level": "high", "category": "communication"},
		{"title": "Open up", "description": "d2"}
	]`

	insights, aerr := ParseInsights(content)
	require.Nil(t, aerr)
	require.Len(t, insights, 2)
	assert.Equal(t, "Slow down", insights[0].Title)
	// missing fields get usable defaults
	assert.Equal(t, "medium", insights[1].PriorityLevel)
	assert.Equal(t, "general", insights[1].Category)
	assert.NotNil(t, insights[1].ActionableSteps)
}

func TestParseInsights_WrappedObject(t *testing.T) {
	content := `{"insights": [{"title": "Listen more", "description": "d"}]}`

	insights, aerr := ParseInsights(content)
	require.Nil(t, aerr)
	require.Len(t, insights, 1)
	assert.Equal(t, "Listen more", insights[0].Title)
}

func TestParseInsights_GarbageFallsBack(t *testing.T) {
	insights, aerr := ParseInsights("nope")
	require.NotNil(t, aerr)
	require.Len(t, insights, 1)
	assert.Equal(t, "Enhance Active Listening", insights[0].Title)
}

func TestParseMatchScore_Valid(t *testing.T) {
	content := "```json\n" + `{
		"compatibility_score": 87,
		"explanation": "strong match",
		"compatibility_breakdown": {"communication": 90},
		"strengths": ["shared humor"],
		"relationship_prediction": "promising"
	}` + "\n```"

	m, aerr := ParseMatchScore(content)
	require.Nil(t, aerr)
	assert.Equal(t, 87.0, m.CompatibilityScore)
	assert.Equal(t, 90.0, m.CompatibilityBreakdown["communication"])
	assert.NotNil(t, m.SharedInterests)
}

func TestParseMatchScore_GarbageIsNil(t *testing.T) {
	m, aerr := ParseMatchScore("no json here")
	require.NotNil(t, aerr)
	assert.Nil(t, m)
	assert.Equal(t, ParseFailure, aerr.Kind)
}

func TestParseDigestContent(t *testing.T) {
	content := `{
		"greeting": "Good morning!",
		"insights": ["i1"],
		"conversationStarters": [{"matchId": "m1", "name": "Sam", "starter": "hi"}],
		"motivation": "go get em"
	}`

	d, aerr := ParseDigestContent(content)
	require.Nil(t, aerr)
	assert.Equal(t, "Good morning!", d.Greeting)
	require.Len(t, d.ConversationStarters, 1)
	assert.Equal(t, "Sam", d.ConversationStarters[0].Name)
}

func TestExtractJSON_LeadingProse(t *testing.T) {
	got := extractJSON(`Sure! {"a": 1} That's it.`)
	assert.Equal(t, `{"a": 1}`, got)
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "unauthorized", Unauthorized.String())
	assert.Equal(t, "parse_failure", ParseFailure.String())
}

func TestIsKind(t *testing.T) {
	err := NewError(MissingPrerequisite, nil)
	assert.True(t, IsKind(err, MissingPrerequisite))
	assert.False(t, IsKind(err, Unauthorized))
}
