package dto

import (
	"time"

	"github.com/google/uuid"

	"getunlocked-be/internal/entity"
)

type UpdateProfileRequest struct {
	Name       string   `json:"name" validate:"omitempty,min=2"`
	Age        int      `json:"age" validate:"omitempty,gte=18,lte=120"`
	Bio        string   `json:"bio" validate:"omitempty,max=2000"`
	Location   string   `json:"location"`
	Occupation string   `json:"occupation"`
	Education  string   `json:"education"`
	Interests  []string `json:"interests" validate:"omitempty,max=30"`
}

type SubmitQuizRequest struct {
	QuizResults map[string]interface{} `json:"quiz_results" validate:"required"`
}

type ProfileResponse struct {
	Id                         uuid.UUID              `json:"id"`
	UserId                     uuid.UUID              `json:"user_id"`
	Name                       string                 `json:"name"`
	Age                        int                    `json:"age"`
	Bio                        string                 `json:"bio"`
	Location                   string                 `json:"location"`
	Occupation                 string                 `json:"occupation"`
	Education                  string                 `json:"education"`
	Interests                  []string               `json:"interests"`
	QuizResults                map[string]interface{} `json:"quiz_results,omitempty"`
	QuizCompleted              bool                   `json:"quiz_completed"`
	UnlockedBeyondBadgeEnabled bool                   `json:"unlocked_beyond_badge_enabled"`
	VideoChatEnabled           bool                   `json:"video_chat_enabled"`
	CreatedAt                  time.Time              `json:"created_at"`
	UpdatedAt                  time.Time              `json:"updated_at"`
}

func ProfileResponseFrom(p *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		Id:                         p.Id,
		UserId:                     p.UserId,
		Name:                       p.Name,
		Age:                        p.Age,
		Bio:                        p.Bio,
		Location:                   p.Location,
		Occupation:                 p.Occupation,
		Education:                  p.Education,
		Interests:                  p.Interests,
		QuizResults:                p.QuizResults,
		QuizCompleted:              p.QuizCompleted,
		UnlockedBeyondBadgeEnabled: p.UnlockedBeyondBadgeEnabled,
		VideoChatEnabled:           p.VideoChatEnabled,
		CreatedAt:                  p.CreatedAt,
		UpdatedAt:                  p.UpdatedAt,
	}
}
