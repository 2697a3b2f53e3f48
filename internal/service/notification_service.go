package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/daphos/shift-service/internal/events"
	"github.com/daphos/shift-service/pkg/workerpool"
)

// NotifyTimeout bounds queueing and delivering one notification.
const NotifyTimeout = 5 * time.Second

// Notifier delivers a human readable message somewhere outside the service.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	notifier   Notifier
	queue      *workerpool.Pool
}

// NewNotificationService creates the service. notifier may be nil.
// With a queue, delivery runs on the queue's workers instead of the publishing
// request; a single-worker queue keeps messages in publish order.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, notifier Notifier, queue *workerpool.Pool) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		notifier:   notifier,
		queue:      queue,
	}
}

// HasNotifier reports whether messages leave the process.
func (n *NotificationService) HasNotifier() bool {
	return n.notifier != nil
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for _, eventType := range events.AllEventTypes {
		n.dispatcher.Subscribe(eventType, n.handle)
	}
}

func (n *NotificationService) handle(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("employee_id", event.EmployeeID),
		zap.Any("payload", event.Payload))

	if n.notifier == nil {
		return nil
	}
	text := Message(event)
	if n.queue == nil {
		return n.deliver(ctx, event.Type, text)
	}

	submitCtx, cancel := context.WithTimeout(ctx, NotifyTimeout)
	defer cancel()
	err := n.queue.Submit(submitCtx, workerpool.Task{Fn: func(ctx context.Context) (any, error) {
		if err := n.deliver(ctx, event.Type, text); err != nil {
			n.logger.Warn("notification not delivered", zap.String("event_id", event.ID), zap.Error(err))
		}
		return nil, nil
	}})
	if err != nil {
		return fmt.Errorf("queue notification %s: %w", event.Type, err)
	}
	return nil
}

func (n *NotificationService) deliver(ctx context.Context, eventType events.EventType, text string) error {
	ctx, cancel := context.WithTimeout(ctx, NotifyTimeout)
	defer cancel()
	if err := n.notifier.Notify(ctx, text); err != nil {
		return fmt.Errorf("notify %s: %w", eventType, err)
	}
	return nil
}

// Message renders a one-line description of event.
func Message(event events.Event) string {
	switch p := event.Payload.(type) {
	case events.EmployeePayload:
		switch event.Type {
		case events.EventEmployeeCreated:
			return fmt.Sprintf("Employee added: %s (%s)", p.Name, p.Role)
		case events.EventEmployeeDeleted:
			return fmt.Sprintf("Employee removed: %s", p.Name)
		default:
			return fmt.Sprintf("Employee updated: %s (%s)", p.Name, p.Role)
		}
	case events.EmployeeStatusChangedPayload:
		if p.NewActive {
			return fmt.Sprintf("Employee activated: %s", p.Name)
		}
		return fmt.Sprintf("Employee deactivated: %s", p.Name)
	case events.ShiftPayload:
		who := p.EmployeeName
		if who == "" {
			who = event.EmployeeID
		}
		verb := "added"
		switch event.Type {
		case events.EventShiftUpdated:
			verb = "updated"
		case events.EventShiftDeleted:
			verb = "removed"
		}
		return fmt.Sprintf("Shift %s for %s: %s to %s (%s)", verb, who, p.Start, p.End, p.Type)
	}
	return fmt.Sprintf("%s: %s", event.Type, event.EmployeeID)
}
