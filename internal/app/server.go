package app

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/daphos/shift-service/internal/api/http"
	"github.com/daphos/shift-service/internal/api/http/handlers"
	"github.com/daphos/shift-service/internal/auth"
	"github.com/daphos/shift-service/internal/config"
	"github.com/daphos/shift-service/internal/domain"
	"github.com/daphos/shift-service/internal/events"
	"github.com/daphos/shift-service/internal/notify"
	"github.com/daphos/shift-service/internal/observability"
	"github.com/daphos/shift-service/internal/service"
	"github.com/daphos/shift-service/internal/worker"
	"github.com/daphos/shift-service/pkg/workerpool"
)

// Services bundles the application services built on one Storage.
type Services struct {
	Employees     *service.EmployeeService
	Shifts        *service.ShiftService
	Dashboard     *service.DashboardService
	Auth          *service.AuthService
	Notifications *service.NotificationService
	Tokens        *auth.TokenManager
	Pool          *workerpool.Pool
	NotifyQueue   *workerpool.Pool
}

// NewServices builds the services and registers the notification handlers.
func NewServices(cfg *config.Config, storage *Storage, logger *zap.Logger) *Services {
	dispatcher := events.NewInMemoryDispatcher()
	pool := workerpool.NewPool(cfg.Worker.Count, cfg.Worker.QueueSize)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)

	var notifier service.Notifier
	if tg, err := notify.NewTelegram(cfg.Notification); err == nil {
		notifier = tg
	} else if !errors.Is(err, notify.ErrNotConfigured) {
		logger.Warn("telegram notifier disabled", zap.Error(err))
	}

	notifyQueue := workerpool.NewPool(1, cfg.Worker.QueueSize)
	notifications := service.NewNotificationService(dispatcher, logger, notifier, notifyQueue)
	worker.StartNotificationWorker(notifications, logger)

	return &Services{
		Employees: service.NewEmployeeService(service.EmployeeDependencies{
			EmployeeRepo: storage.Employees,
			Dispatcher:   dispatcher,
			Logger:       logger,
		}),
		Shifts: service.NewShiftService(service.ShiftDependencies{
			EmployeeRepo: storage.Employees,
			ShiftRepo:    storage.Shifts,
			Dispatcher:   dispatcher,
			Logger:       logger,
		}),
		Dashboard: service.NewDashboardService(*cfg, service.DashboardDependencies{
			EmployeeRepo: storage.Employees,
			ShiftRepo:    storage.Shifts,
			Pool:         pool,
		}),
		Auth:          service.NewAuthService(*cfg, tokens),
		Notifications: notifications,
		Tokens:        tokens,
		Pool:          pool,
		NotifyQueue:   notifyQueue,
	}
}

// Close stops the worker pools.
func (s *Services) Close() {
	s.NotifyQueue.Close()
	s.Pool.Close()
}

// Clock returns the current wall clock in the configured timezone.
func Clock(cfg *config.Config) func() time.Time {
	loc, err := cfg.App.Location()
	if err != nil {
		loc = time.Local
	}
	return func() time.Time { return domain.WallClock(time.Now().In(loc)) }
}

// NewServer builds the fiber application with middlewares and routes.
func NewServer(cfg *config.Config, storage *Storage, services *Services, logger *zap.Logger, metrics *observability.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, storage.Checks, metrics),
		Auth:           handlers.NewAuthHandler(services.Auth),
		Employees:      handlers.NewEmployeesHandler(services.Employees, services.Shifts),
		Shifts:         handlers.NewShiftsHandler(services.Shifts),
		Dashboard:      handlers.NewDashboardHandler(services.Dashboard, Clock(cfg)),
		AuthMiddleware: auth.NewAuthMiddleware(services.Tokens, cfg.Auth.Enabled),
	})
	return app
}
