package dna

// Declared response contracts for every analysis type. The prompt text and
// these structs must stay in sync; the model is instructed to answer with
// exactly these field names.

type ProfileAnalysis struct {
	EmotionalIntelligenceScore float64                `json:"emotional_intelligence_score"`
	InteractionQualityScore    float64                `json:"interaction_quality_score"`
	EmpathyScore               float64                `json:"empathy_score"`
	VulnerabilityComfort       float64                `json:"vulnerability_comfort"`
	CommunicationStyle         map[string]interface{} `json:"communication_style"`
	EmotionalPatterns          map[string]interface{} `json:"emotional_patterns"`
	PersonalityMarkers         map[string]interface{} `json:"personality_markers"`
	LoveLanguagePrimary        string                 `json:"love_language_primary"`
	LoveLanguageSecondary      string                 `json:"love_language_secondary"`
	ConflictResolutionStyle    string                 `json:"conflict_resolution_style"`
}

type InteractionAnalysis struct {
	SentimentScore     float64  `json:"sentiment_score"`
	VulnerabilityLevel float64  `json:"vulnerability_level"`
	EngagementScore    float64  `json:"engagement_score"`
	EmotionalMarkers   []string `json:"emotional_markers"`
	EmpathyIndicators  []string `json:"empathy_indicators"`
}

type CompatibilityAnalysis struct {
	OverallCompatibilityScore  float64                `json:"overall_compatibility_score"`
	EmotionalSyncScore         float64                `json:"emotional_sync_score"`
	CommunicationCompatibility float64                `json:"communication_compatibility"`
	PersonalityMatchScore      float64                `json:"personality_match_score"`
	SharedValuesScore          float64                `json:"shared_values_score"`
	GrowthPotentialScore       float64                `json:"growth_potential_score"`
	ConflictHarmonyScore       float64                `json:"conflict_harmony_score"`
	DetailedAnalysis           map[string]interface{} `json:"detailed_analysis"`
	Strengths                  []string               `json:"strengths"`
	GrowthAreas                []string               `json:"growth_areas"`
	ConversationStarters       []string               `json:"conversation_starters"`
	DateIdeas                  []string               `json:"date_ideas"`
	AnalysisConfidence         float64                `json:"analysis_confidence"`
}

type Insight struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ActionableSteps []string `json:"actionable_steps"`
	PriorityLevel   string   `json:"priority_level"`
	Category        string   `json:"category"`
}

type MatchScore struct {
	CompatibilityScore     float64            `json:"compatibility_score"`
	Explanation            string             `json:"explanation"`
	CompatibilityBreakdown map[string]float64 `json:"compatibility_breakdown"`
	Strengths              []string           `json:"strengths"`
	PotentialChallenges    []string           `json:"potential_challenges"`
	SharedInterests        []string           `json:"shared_interests"`
	ConversationStarters   []string           `json:"conversation_starters"`
	RelationshipPrediction string             `json:"relationship_prediction"`
}

type DigestStarter struct {
	MatchID string `json:"matchId"`
	Name    string `json:"name"`
	Starter string `json:"starter"`
}

type DigestContent struct {
	Greeting             string          `json:"greeting"`
	Insights             []string        `json:"insights"`
	ConversationStarters []DigestStarter `json:"conversationStarters"`
	Motivation           string          `json:"motivation"`
}

// Fallbacks mirror the documented defaults persisted when the model answer
// cannot be parsed. Persisting mid-range defaults keeps the widgets rendering
// instead of erroring out on a flaky completion.

func FallbackProfileAnalysis() *ProfileAnalysis {
	return &ProfileAnalysis{
		EmotionalIntelligenceScore: 75.0,
		InteractionQualityScore:    70.0,
		EmpathyScore:               80.0,
		VulnerabilityComfort:       65.0,
		CommunicationStyle:         map[string]interface{}{"primary": "thoughtful", "secondary": "warm"},
		EmotionalPatterns:          map[string]interface{}{},
		PersonalityMarkers:         map[string]interface{}{},
		LoveLanguagePrimary:        "quality_time",
		ConflictResolutionStyle:    "collaborative",
	}
}

func FallbackInteractionAnalysis() *InteractionAnalysis {
	return &InteractionAnalysis{
		SentimentScore:     0.5,
		VulnerabilityLevel: 0.3,
		EngagementScore:    0.7,
		EmotionalMarkers:   []string{"positive", "engaged"},
		EmpathyIndicators:  []string{"active_listening"},
	}
}

func FallbackCompatibilityAnalysis() *CompatibilityAnalysis {
	return &CompatibilityAnalysis{
		OverallCompatibilityScore:  78.5,
		EmotionalSyncScore:         82.0,
		CommunicationCompatibility: 75.0,
		PersonalityMatchScore:      80.0,
		SharedValuesScore:          75.0,
		GrowthPotentialScore:       75.0,
		ConflictHarmonyScore:       75.0,
		DetailedAnalysis:           map[string]interface{}{},
		Strengths:                  []string{"good communication", "shared values"},
		GrowthAreas:                []string{"conflict resolution"},
		ConversationStarters:       []string{"What's your favorite way to spend a weekend?"},
		DateIdeas:                  []string{},
		AnalysisConfidence:         0.7,
	}
}

func FallbackInsights() []Insight {
	return []Insight{
		{
			Title:           "Enhance Active Listening",
			Description:     "Your interactions show great empathy, but developing active listening skills could deepen your connections.",
			ActionableSteps: []string{"Practice reflecting back what others say", "Ask follow-up questions"},
			PriorityLevel:   "medium",
			Category:        "communication",
		},
	}
}

func FallbackDigestContent() *DigestContent {
	return &DigestContent{
		Greeting: "Welcome to your daily digest!",
		Insights: []string{
			"Your profile shows great authenticity and depth",
			"You're attracting quality matches based on shared interests",
			"Your communication style suggests strong emotional intelligence",
		},
		ConversationStarters: []DigestStarter{
			{
				MatchID: "sample",
				Name:    "Your Match",
				Starter: "I noticed we both love adventure - what's the most spontaneous trip you've ever taken?",
			},
		},
		Motivation: "Keep being your authentic self - the right connections are finding you!",
	}
}
