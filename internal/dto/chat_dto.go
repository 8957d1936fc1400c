package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
	Message       string    `json:"message" validate:"required,max=2000"`
}

// ClassificationSummary is the wire shape of a classification result attached
// to a chat reply.
type ClassificationSummary struct {
	InScope         bool     `json:"in_scope"`
	Domain          string   `json:"domain"`
	Intent          string   `json:"intent"`
	SimilarityScore float64  `json:"similarity_score"`
	UsedFallback    []string `json:"used_fallback,omitempty"`
}

type SendChatResponse struct {
	Reply           string                `json:"reply"`
	Classification  ClassificationSummary `json:"classification"`
	Recommendations RecommendationSet     `json:"recommendations"`
}

type RecommendationSet struct {
	Questions  []string `json:"questions"`
	Provenance string   `json:"provenance"`
}

type ChatSessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ClassificationTelemetry is the watermill payload the consumer service
// persists into system_logs.
type ClassificationTelemetry struct {
	CustomerId      uuid.UUID `json:"customer_id"`
	ChatSessionId   uuid.UUID `json:"chat_session_id"`
	InScope         bool      `json:"in_scope"`
	Domain          string    `json:"domain"`
	Intent          string    `json:"intent"`
	SimilarityScore float64   `json:"similarity_score"`
	UsedFallback    []string  `json:"used_fallback,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}
