package dna

import (
	"encoding/json"
	"fmt"
	"strings"

	"getunlocked-be/pkg/llm"
)

// mustJSON renders v for inclusion in a prompt. Marshal failures degrade to
// "{}" rather than aborting the analysis over a prompt-formatting problem.
func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

const profileAnalysisSystem = `You are an expert relationship psychologist and emotional intelligence analyst. Analyze user data to create a comprehensive emotional intelligence profile. Focus on:

1. Communication Style: How they express themselves, tone, emotional expression
2. Emotional Patterns: Response to different emotional situations
3. Empathy Level: Ability to understand and relate to others
4. Vulnerability Comfort: Willingness to be open and vulnerable
5. Conflict Resolution: How they handle disagreements
6. Love Language: Primary way they give/receive love
7. Personality Markers: Key personality traits affecting relationships

Return a JSON object with scores (0-100) and detailed analysis.`

// ProfileAnalysisMessages builds the chat for a full profile analysis from
// the user's profile, their recent interactions and any quiz responses.
func ProfileAnalysisMessages(profile, interactions, quizResponses interface{}) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: profileAnalysisSystem},
		{Role: "user", Content: fmt.Sprintf(`Analyze this user's data:

Profile: %s
Recent Interactions: %s
Quiz Responses: %s

Provide emotional intelligence analysis with numerical scores and insights.`,
			mustJSON(profile), mustJSON(interactions), mustJSON(quizResponses))},
	}
}

const interactionAnalysisSystem = `You are an expert in analyzing human emotional interactions. Analyze the given interaction data and provide scores for sentiment (-1.0 to 1.0), vulnerability level (0.0 to 1.0), engagement score (0.0 to 1.0), and identify emotional markers, empathy indicators. Return JSON format.`

func InteractionAnalysisMessages(interaction interface{}) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: interactionAnalysisSystem},
		{Role: "user", Content: "Analyze this interaction: " + mustJSON(interaction)},
	}
}

const compatibilityAnalysisSystem = `You are an expert relationship compatibility analyst. Compare two Connection DNA profiles and provide:
1. Overall compatibility score (0-100)
2. Detailed sub-scores for different aspects
3. Relationship strengths
4. Growth areas
5. Personalized conversation starters
6. Date ideas based on their personalities

Return detailed JSON analysis.`

func CompatibilityAnalysisMessages(profile1, profile2 interface{}) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: compatibilityAnalysisSystem},
		{Role: "user", Content: fmt.Sprintf(`Analyze compatibility between:

Person 1: %s
Person 2: %s

Provide comprehensive compatibility analysis.`, mustJSON(profile1), mustJSON(profile2))},
	}
}

const insightsSystem = `You are a relationship coach providing personalized growth insights. Based on the user's Connection DNA profile and interactions, generate 3-5 actionable insights focusing on:
1. Growth opportunities
2. Relationship strengths to leverage
3. Communication improvements
4. Emotional intelligence development

Each insight should have a title, description, actionable steps, and priority level. Return as JSON array.`

func InsightsMessages(profile, interactions interface{}) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: insightsSystem},
		{Role: "user", Content: fmt.Sprintf(`Generate insights for:
Profile: %s
Recent Interactions: %s`, mustJSON(profile), mustJSON(interactions))},
	}
}

const matchScoringSystem = `You are an expert relationship compatibility analyst with deep understanding of psychology, communication patterns, and relationship dynamics. Provide sophisticated compatibility assessments based on personality psychology and relationship science. Always respond with valid JSON only.`

// CandidateSummary carries the prompt-facing view of one side of a match
// scoring comparison. QuizSummary is empty until the quiz is completed.
type CandidateSummary struct {
	Name        string
	Age         int
	Bio         string
	Location    string
	Occupation  string
	Education   string
	Interests   []string
	QuizSummary string
}

func (c CandidateSummary) promptBlock() string {
	interests := "Not provided"
	if len(c.Interests) > 0 {
		interests = strings.Join(c.Interests, ", ")
	}
	quiz := c.QuizSummary
	if quiz == "" {
		quiz = "Quiz not completed"
	}
	return fmt.Sprintf(`Name: %s
Age: %s
Bio: %s
Location: %s
Occupation: %s
Education: %s
Interests: %s
%s`,
		orNotProvided(c.Name), ageOrNotProvided(c.Age), orNotProvided(c.Bio),
		orNotProvided(c.Location), orNotProvided(c.Occupation), orNotProvided(c.Education),
		interests, quiz)
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}

func ageOrNotProvided(age int) string {
	if age <= 0 {
		return "Not provided"
	}
	return fmt.Sprintf("%d", age)
}

// MatchScoringMessages builds the deep-compatibility chat used by AI
// matching, comparing the requesting user against one candidate.
func MatchScoringMessages(user, candidate CandidateSummary) []llm.Message {
	prompt := fmt.Sprintf(`Analyze deep compatibility between these two people using both their profiles AND detailed quiz responses.

USER PROFILE:
%s

POTENTIAL MATCH:
%s

Analyze their compatibility focusing on:
1. Communication compatibility (how well their styles complement each other)
2. Relationship values alignment (trust/honesty vs adventure vs stability vs fun)
3. Conflict resolution compatibility (how their approaches work together)
4. Love language compatibility (can they meet each other's needs)
5. Social energy balance (introvert/extrovert dynamics)
6. Life planning harmony (structured vs flexible vs spontaneous)
7. Personal growth alignment (importance of development together)
8. Family values compatibility
9. Shared interests and lifestyle compatibility

Provide a sophisticated analysis that goes beyond surface-level matching.

Respond with ONLY a JSON object in this exact format:
{
  "compatibility_score": 87,
  "explanation": "Exceptional compatibility with complementary communication styles.",
  "compatibility_breakdown": {
    "communication": 90,
    "values": 85,
    "lifestyle": 80,
    "love_languages": 95,
    "conflict_resolution": 75
  },
  "strengths": ["Complementary communication styles"],
  "potential_challenges": ["Different conflict resolution approaches"],
  "shared_interests": ["personal growth"],
  "conversation_starters": ["Ask about their perspective on balancing planning with spontaneity"],
  "relationship_prediction": "High potential for deep, meaningful connection"
}

The compatibility_score should be between 1-100 and reflect genuine deep compatibility, not just surface attraction.`,
		user.promptBlock(), candidate.promptBlock())

	return []llm.Message{
		{Role: "system", Content: matchScoringSystem},
		{Role: "user", Content: prompt},
	}
}

// QuizSummaryFromResults flattens nested quiz results into the labelled
// block embedded in match scoring prompts.
func QuizSummaryFromResults(results map[string]interface{}) string {
	if len(results) == 0 {
		return ""
	}
	pick := func(section, key string) string {
		sec, ok := results[section].(map[string]interface{})
		if !ok {
			return "Not provided"
		}
		if v, ok := sec[key].(string); ok && v != "" {
			return v
		}
		return "Not provided"
	}
	return fmt.Sprintf(`QUIZ RESULTS:
Communication Style: %s
Social Energy: %s
Relationship Values: %s
Conflict Resolution: %s
Love Language: %s
Family Importance: %s
Life Planning Style: %s
Personal Growth Priority: %s
Quality Time Preference: %s`,
		pick("personality_scores", "communication_style"),
		pick("personality_scores", "social_energy"),
		pick("compatibility_factors", "relationship_values"),
		pick("compatibility_factors", "conflict_resolution"),
		pick("love_languages", "primary"),
		pick("relationship_goals", "family_importance"),
		pick("personality_scores", "life_planning"),
		pick("compatibility_factors", "personal_growth"),
		pick("compatibility_factors", "quality_time"))
}

// DigestMessages builds the daily digest chat from the user's profile and a
// summary of their recent matches.
func DigestMessages(profile, recentMatches interface{}) []llm.Message {
	prompt := fmt.Sprintf(`You are a dating app AI assistant creating a personalized daily digest. Generate insights based on this user's profile and recent matches.

User Profile:
%s

Recent Matches:
%s

Please generate:
1. A warm, personalized greeting
2. 3-5 insights about their recent matches
3. 2-3 AI-generated conversation starters for their best matches
4. A motivational closing message

Keep the tone friendly, encouraging, and insightful. Focus on meaningful connections rather than superficial aspects.

Return the response as a JSON object with this structure:
{
  "greeting": "Personalized greeting here",
  "insights": ["insight 1", "insight 2", "insight 3"],
  "conversationStarters": [
    {"matchId": "match_id", "name": "match_name", "starter": "conversation starter"}
  ],
  "motivation": "Motivational closing message"
}`, mustJSON(profile), mustJSON(recentMatches))

	return []llm.Message{
		{Role: "user", Content: prompt},
	}
}
