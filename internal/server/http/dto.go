package httpserver

import "github.com/Antonmish822/SHORT-HACKX5/internal/model"

type registerRequest struct {
	Contact      string `json:"contact"`
	Password     string `json:"password"`
	ConsentGiven bool   `json:"consent_given"`
}

type loginRequest struct {
	Contact  string `json:"contact"`
	Password string `json:"password"`
}

// tokenResponse is the opaque bearer token handed to clients.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type interestsRequest struct {
	Interests string `json:"interests"`
}

type questRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	RewardPoints int    `json:"reward_points"`
	QuestType    string `json:"quest_type"`
}

type questResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	RewardPoints int    `json:"reward_points"`
	QuestType    string `json:"quest_type"`
}

type submitRequest struct {
	Status   string `json:"status"`
	Metadata string `json:"metadata_json"`
}

type submissionResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	QuestID     string `json:"quest_id"`
	Status      string `json:"status"`
	Metadata    string `json:"metadata_json,omitempty"`
	SubmittedAt string `json:"submitted_at"`
}

type profileResponse struct {
	ID              string `json:"id"`
	Contact         string `json:"contact"`
	Points          int    `json:"points"`
	Level           string `json:"level"`
	Interests       string `json:"interests,omitempty"`
	CompletedQuests int    `json:"completed_quests"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func questToResponse(q *model.Quest) questResponse {
	return questResponse{
		ID:           q.ID.String(),
		Title:        q.Title,
		Description:  q.Description,
		RewardPoints: q.RewardPoints,
		QuestType:    q.QuestType,
	}
}

func profileToResponse(p *model.Profile) profileResponse {
	return profileResponse{
		ID:              p.ID.String(),
		Contact:         p.Contact,
		Points:          p.Points,
		Level:           string(p.Level),
		Interests:       p.Interests,
		CompletedQuests: p.CompletedQuests,
	}
}
