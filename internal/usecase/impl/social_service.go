package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventRoute describes how one social event type becomes notifications.
type eventRoute struct {
	category string
	priority entity.Priority
	direct   bool
	title    func(e *service.SocialEvent) string
	body     func(e *service.SocialEvent) string
}

var eventRoutes = map[string]eventRoute{
	service.SocialEventFollow: {
		category: entity.CategoryFollow,
		priority: entity.PriorityNormal,
		title:    func(*service.SocialEvent) string { return "新的追蹤者" },
		body:     func(e *service.SocialEvent) string { return fmt.Sprintf("%s 開始追蹤你", e.ActorName) },
	},
	service.SocialEventFriendRequest: {
		category: entity.CategoryFriendRequest,
		priority: entity.PriorityHigh,
		title:    func(*service.SocialEvent) string { return "新的好友邀請" },
		body:     func(e *service.SocialEvent) string { return fmt.Sprintf("%s 想加你為好友", e.ActorName) },
	},
	service.SocialEventFriendAccept: {
		category: entity.CategoryFriendRequest,
		priority: entity.PriorityNormal,
		title:    func(*service.SocialEvent) string { return "好友邀請已接受" },
		body:     func(e *service.SocialEvent) string { return fmt.Sprintf("%s 接受了你的好友邀請", e.ActorName) },
	},
	service.SocialEventConfirmationRequest: {
		category: entity.CategoryConfirmation,
		priority: entity.PriorityHigh,
		title:    func(*service.SocialEvent) string { return "請確認活動狀態" },
		body: func(e *service.SocialEvent) string {
			return fmt.Sprintf("%s 請你確認「%s」", e.ActorName, e.ObjectName)
		},
	},
	service.SocialEventChatMessage: {
		category: entity.CategoryChatMessage,
		direct:   true,
		title:    func(e *service.SocialEvent) string { return e.ActorName },
		body:     func(e *service.SocialEvent) string { return e.Message },
	},
}

// socialService implements the SocialUsecase interface.
type socialService struct {
	queue     usecase.QueueUsecase
	publisher service.EventPublisher
	logger    *slog.Logger
}

// SocialServiceParams holds dependencies for SocialService, injected by Fx.
type SocialServiceParams struct {
	fx.In

	Queue     usecase.QueueUsecase
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewSocialService creates the social event producer.
func NewSocialService(params SocialServiceParams) usecase.SocialUsecase {
	return &socialService{
		queue:     params.Queue,
		publisher: params.Publisher,
		logger:    params.Logger.With(slog.String("component", "social")),
	}
}

func (s *socialService) PublishEvent(ctx context.Context, actorID string, req *usecase.PublishEventRequest) (*service.SocialEvent, error) {
	if _, ok := eventRoutes[req.Type]; !ok {
		return nil, domainerrors.ErrUnknownEventType
	}

	event := &service.SocialEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.New().String(),
		Type:       req.Type,
		ActorID:    actorID,
		ActorName:  req.ActorName,
		TargetIDs:  req.TargetIDs,
		ObjectID:   req.ObjectID,
		ObjectName: req.ObjectName,
		Message:    req.Message,
		OccurredAt: time.Now().Unix(),
	}

	if err := s.publisher.PublishSocialEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish social event",
			slog.String("event_id", event.EventID),
			slog.String("type", event.Type),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrEventPublishFailed.WrapMessage(err.Error())
	}

	return event, nil
}

// HandleEvent fans one event out to its targets. Invalid or self-targeted
// recipients are skipped; an infrastructure error aborts so the transport redelivers.
func (s *socialService) HandleEvent(ctx context.Context, event *service.SocialEvent) (*usecase.EventOutcome, error) {
	route, ok := eventRoutes[event.Type]
	if !ok {
		return nil, domainerrors.ErrUnknownEventType
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
	)

	outcome := &usecase.EventOutcome{}
	for _, target := range event.TargetIDs {
		userID, err := uuid.Parse(target)
		if err != nil || target == event.ActorID {
			outcome.Skipped++

			continue
		}

		data := map[string]any{
			"event_id":   event.EventID,
			"event_type": event.Type,
			"actor_id":   event.ActorID,
		}
		if event.ObjectID != "" {
			data["object_id"] = event.ObjectID
		}

		if route.direct {
			report, err := s.queue.SendDirect(ctx, &usecase.DirectRequest{
				UserID:   userID,
				Category: route.category,
				Title:    route.title(event),
				Body:     route.body(event),
				Data:     data,
			})
			switch {
			case errors.Is(err, domainerrors.ErrCategoryDisabled):
				outcome.Skipped++
			case err != nil:
				return outcome, errors.Wrapf(err, "send %s to %s", event.Type, userID)
			case report.Succeeded():
				outcome.Delivered++
			default:
				outcome.Skipped++
			}

			continue
		}

		_, err = s.queue.Enqueue(ctx, &usecase.EnqueueRequest{
			UserID:   userID,
			Category: route.category,
			Title:    route.title(event),
			Body:     route.body(event),
			Data:     data,
			Priority: route.priority.String(),
		})
		switch {
		case errors.Is(err, domainerrors.ErrCategoryDisabled):
			outcome.Skipped++
		case err != nil:
			return outcome, errors.Wrapf(err, "enqueue %s for %s", event.Type, userID)
		default:
			outcome.Enqueued++
		}
	}

	logger.InfoContext(ctx, "Social event handled",
		slog.Int("enqueued", outcome.Enqueued),
		slog.Int("delivered", outcome.Delivered),
		slog.Int("skipped", outcome.Skipped),
	)

	return outcome, nil
}
