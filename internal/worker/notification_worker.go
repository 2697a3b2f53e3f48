package worker

import (
	"go.uber.org/zap"

	"github.com/daphos/shift-service/internal/events"
	"github.com/daphos/shift-service/internal/service"
)

// StartNotificationWorker subscribes the notification service to every roster event.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	if logger != nil {
		logger.Debug("notification handlers registered",
			zap.Int("event_types", len(events.AllEventTypes)),
			zap.Bool("telegram", notificationService.HasNotifier()),
		)
	}
}
