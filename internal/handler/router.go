package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/zhouzirui/servo-bot/backend/internal/handler/robot"
	middlewarePkg "github.com/zhouzirui/servo-bot/backend/internal/middleware"
	robotService "github.com/zhouzirui/servo-bot/backend/internal/service/robot"
	"github.com/zhouzirui/servo-bot/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services. ctx bounds long-lived connections.
func NewRouter(ctx context.Context, robotSvc *robotService.Service, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger))
	r.Use(middlewarePkg.Recover(logger, string(robotService.KindUpstreamFailure), robotService.MessageProcessingError))
	r.Use(middlewarePkg.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{
			"status":   "UP",
			"provider": robotSvc.Provider(),
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	robotHandler := robot.New(ctx, robotSvc, logger.Named("robot"))
	r.Route("/api", func(api chi.Router) {
		robotHandler.RegisterRoutes(api)
	})

	return r
}
