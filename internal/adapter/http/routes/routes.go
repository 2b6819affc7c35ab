package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "agency_backoffice/docs" // swagger spec
	request "agency_backoffice/internal/adapter/http/dto/request"
	"agency_backoffice/internal/adapter/http/handlers"
	"agency_backoffice/internal/adapter/http/middleware"
	"agency_backoffice/internal/config"
	"agency_backoffice/internal/infrastructure/logging"
	"agency_backoffice/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Budgets       *handlers.BudgetHandler
	Contracts     *handlers.ContractHandler
	Payments      *handlers.PaymentHandler
	Projects      *handlers.ProjectHandler
	Clients       *handlers.ClientHandler
	Notifications *handlers.NotificationHandler
	Webhooks      *handlers.WebhookHandler
}

// NewRouter builds the gin engine wrapped in CORS.
func NewRouter(cfg config.Config, log *zap.Logger, h Handlers) (http.Handler, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := request.RegisterValidators(v); err != nil {
			return nil, fmt.Errorf("register validators: %w", err)
		}
	}

	router := gin.New()
	router.Use(logging.GinRecovery(log), logging.GinMiddleware(log), metrics.GinMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWebhookRoutes(v1, h.Webhooks, cfg.PaymentWebhookSecret)

	// Client-facing actions reachable from proposal and contract emails.
	addPublicRoutes(v1, h)

	private := v1.Group("", middleware.Auth(cfg.JWTSecret, cfg.AuthEnabled))
	addBudgetRoutes(private, h)
	addProjectRoutes(private, h)
	addClientRoutes(private, h.Clients)
	addNotificationRoutes(private, h.Notifications)

	return cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(router), nil
}

// Run serves handler until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger, handler http.Handler) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("http server shutting down")
	return srv.Shutdown(shutdownCtx)
}
