// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	authfeature "github.com/dalemusser/volunteerhub/internal/app/features/auth"
	botsfeature "github.com/dalemusser/volunteerhub/internal/app/features/bots"
	communicationsfeature "github.com/dalemusser/volunteerhub/internal/app/features/communications"
	configfeature "github.com/dalemusser/volunteerhub/internal/app/features/config"
	healthfeature "github.com/dalemusser/volunteerhub/internal/app/features/health"
	logsfeature "github.com/dalemusser/volunteerhub/internal/app/features/logs"
	metricsfeature "github.com/dalemusser/volunteerhub/internal/app/features/metrics"
	notificationsfeature "github.com/dalemusser/volunteerhub/internal/app/features/notifications"
	segmentationfeature "github.com/dalemusser/volunteerhub/internal/app/features/segmentation"
	tasksfeature "github.com/dalemusser/volunteerhub/internal/app/features/tasks"
	volunteersfeature "github.com/dalemusser/volunteerhub/internal/app/features/volunteers"
	configstore "github.com/dalemusser/volunteerhub/internal/app/store/config"
	logstore "github.com/dalemusser/volunteerhub/internal/app/store/logs"
	metricstore "github.com/dalemusser/volunteerhub/internal/app/store/metrics"
	notificationstore "github.com/dalemusser/volunteerhub/internal/app/store/notifications"
	"github.com/dalemusser/volunteerhub/internal/app/store/queries/volunteerfilter"
	segmentstore "github.com/dalemusser/volunteerhub/internal/app/store/segments"
	taskstore "github.com/dalemusser/volunteerhub/internal/app/store/tasks"
	userstore "github.com/dalemusser/volunteerhub/internal/app/store/users"
	volunteerstore "github.com/dalemusser/volunteerhub/internal/app/store/volunteers"
	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/dalemusser/volunteerhub/internal/app/system/limits"
	"github.com/dalemusser/volunteerhub/internal/app/system/mailer"
	"github.com/dalemusser/volunteerhub/internal/app/system/ratelimit"
	"github.com/dalemusser/volunteerhub/internal/app/system/token"
	"github.com/dalemusser/volunteerhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The JSON API lives under /api/v1 with a
// bare /health alongside it for load balancers.
//
// Route guards: /auth and /health are public; bot routes require the shared
// API key; /config and /communications/enviar require the admin role; the
// rest requires any authenticated worker.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	// Stores
	volunteers := volunteerstore.New(db)
	segments := segmentstore.New(db)
	tasks := taskstore.New(db)
	logs := logstore.New(db)
	users := userstore.New(db)
	cfgStore := configstore.New(db)
	notifications := notificationstore.New(db)
	metrics := metricstore.New(db)
	engine := volunteerfilter.NewEngine(volunteers)

	// Token service and guards
	tokens := token.NewService(appCfg.JWTSecret, appCfg.AccessTokenTTL, appCfg.RefreshTokenTTL)
	requireWorker := auth.RequireRole(tokens, models.RoleWorker)
	requireAdmin := auth.RequireRole(tokens, models.RoleAdmin)

	// Outbound mail transport
	mail, err := mailer.New(appCfg.MailProvider, appCfg.MailFrom, appCfg.ResendAPIKey, cfgStore, logger)
	if err != nil {
		logger.Error("mail transport init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(limits.JSONBody)

		// Public: registration, login, refresh. Credential endpoints are
		// rate limited per IP to slow brute-force attempts.
		loginLimiter := ratelimit.New(20, time.Minute)
		authHandler := authfeature.NewHandler(users, tokens, logger)
		api.With(ratelimit.Middleware(loginLimiter)).Mount("/auth", authfeature.Routes(authHandler))

		// Bot polling surface, guarded by the shared API key
		botsHandler := botsfeature.NewHandler(tasks, logger)
		api.Mount("/bots", botsfeature.Routes(botsHandler, appCfg.BotAPIKey))

		// Admin-only configuration surface
		configHandler := configfeature.NewHandler(cfgStore, logger)
		api.Mount("/config", configfeature.Routes(configHandler, requireAdmin))

		// Everything else requires an authenticated user
		api.Group(func(pr chi.Router) {
			pr.Use(requireWorker)

			volunteersHandler := volunteersfeature.NewHandler(volunteers, logger)
			pr.Mount("/voluntarios", volunteersfeature.Routes(volunteersHandler))

			metricsHandler := metricsfeature.NewHandler(metrics, logger)
			pr.Mount("/metrics", metricsfeature.Routes(metricsHandler))

			segmentationHandler := segmentationfeature.NewHandler(segments, engine, logger)
			pr.Mount("/segmentation", segmentationfeature.Routes(segmentationHandler))

			communicationsHandler := communicationsfeature.NewHandler(segments, engine, logs, mail, logger)
			pr.Mount("/communications", communicationsfeature.Routes(communicationsHandler, requireAdmin))

			tasksHandler := tasksfeature.NewHandler(tasks, logger)
			pr.Mount("/tasks", tasksfeature.Routes(tasksHandler))

			logsHandler := logsfeature.NewHandler(logs, logger)
			pr.Mount("/logs", logsfeature.Routes(logsHandler))

			notificationsHandler := notificationsfeature.NewHandler(notifications, logger)
			pr.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))
		})
	})

	return r, nil
}
