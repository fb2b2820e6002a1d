package usecase

import (
	"context"

	"beacon/internal/domain/service"
)

// PublishEventRequest is a social fact reported by the API's caller.
type PublishEventRequest struct {
	Type       string   `json:"type" validate:"required,oneof=follow friend_request friend_accept confirmation_request chat_message"`
	ActorName  string   `json:"actor_name" validate:"required,max=128"`
	TargetIDs  []string `json:"target_ids" validate:"required,min=1,max=500,dive,uuid"`
	ObjectID   string   `json:"object_id,omitempty" validate:"omitempty,max=128"`
	ObjectName string   `json:"object_name,omitempty" validate:"omitempty,max=256"`
	Message    string   `json:"message,omitempty" validate:"omitempty,max=1024"`
}

// EventOutcome summarises what one social event produced.
type EventOutcome struct {
	Enqueued  int `json:"enqueued"`
	Delivered int `json:"delivered"`
	Skipped   int `json:"skipped"`
}

// SocialUsecase turns social events into notifications.
type SocialUsecase interface {
	// PublishEvent stamps the event and hands it to the event transport.
	PublishEvent(ctx context.Context, actorID string, req *PublishEventRequest) (*service.SocialEvent, error)

	// HandleEvent maps a received event to queue entries or direct sends.
	// Targets that disabled the category are skipped.
	HandleEvent(ctx context.Context, event *service.SocialEvent) (*EventOutcome, error)
}
