package service

import (
	"context"
)

// Social event types understood by the notification producers.
const (
	SocialEventFollow              = "follow"
	SocialEventFriendRequest       = "friend_request"
	SocialEventFriendAccept        = "friend_accept"
	SocialEventConfirmationRequest = "confirmation_request"
	SocialEventChatMessage         = "chat_message"
)

// SocialEvent is a fact emitted by the social graph that may notify users.
type SocialEvent struct {
	RequestID  string   `json:"request_id,omitempty"` // For distributed tracing
	EventID    string   `json:"event_id"`
	Type       string   `json:"type"`
	ActorID    string   `json:"actor_id"`
	ActorName  string   `json:"actor_name"`
	TargetIDs  []string `json:"target_ids"`
	ObjectID   string   `json:"object_id,omitempty"`   // e.g. the event awaiting confirmation
	ObjectName string   `json:"object_name,omitempty"` // e.g. its title
	Message    string   `json:"message,omitempty"`     // chat preview
	OccurredAt int64    `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSocialEvent publishes a social event for async processing by the worker
	PublishSocialEvent(ctx context.Context, event *SocialEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
