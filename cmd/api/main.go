package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agency_backoffice/internal/adapter/http/handlers"
	"agency_backoffice/internal/adapter/http/routes"
	"agency_backoffice/internal/adapter/persistence/repository"
	"agency_backoffice/internal/config"
	"agency_backoffice/internal/infrastructure/database"
	"agency_backoffice/internal/infrastructure/email"
	"agency_backoffice/internal/infrastructure/logging"
	"agency_backoffice/internal/infrastructure/messaging"
	"agency_backoffice/internal/infrastructure/payments"
	"agency_backoffice/internal/usecase"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Agency Backoffice API
// @version         1.0
// @description     Budgets, contracts, payments and projects for a web agency backoffice.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.PrettyLogs)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when AUTH_ENABLED is true")
	}
	if cfg.PaymentWebhookSecret == "" {
		log.Warn("PAYMENT_WEBHOOK_SECRET not set, POST /v1/webhooks/payments will reject every call")
	}
	if !cfg.PrettyLogs {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectRelational(cfg, log, repository.Models()...)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}

	tx := repository.NewGormTransactor(db)
	budgets := repository.NewBudgetGormRepository(db)
	clients := repository.NewClientGormRepository(db)
	users := repository.NewUserGormRepository(db)
	projects := repository.NewProjectGormRepository(db)
	contracts := repository.NewContractGormRepository(db)
	paymentRows := repository.NewPaymentGormRepository(db)
	schedules := repository.NewScheduleGormRepository(db)
	notifications := repository.NewNotificationDynamoRepository(ddb, cfg.NotificationsTable)

	var gateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.MercadoPagoNotificationURL, cfg.PaymentGatewayMock, log); err != nil {
		log.Warn("payment gateway disabled", zap.Error(err))
	} else {
		gateway = mp
	}

	var mailer interfaces.IEmailSender
	if cfg.SMTPEnabled() {
		mailer = email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, log)
	} else {
		log.Warn("SMTP_HOST not set, emails will be reported as not sent")
	}

	dispatch := usecase.NewDispatcher(mailer, notifications, users, cfg.AppURL, log)

	budgetUC := usecase.NewBudgetUseCase(tx, budgets, dispatch, log)
	clientUC := usecase.NewClientUseCase(clients)
	contractUC := usecase.NewContractUseCase(tx, contracts, budgets, dispatch, log)
	paymentUC := usecase.NewPaymentUseCase(tx, paymentRows, budgets, projects, gateway, dispatch, log)
	conversionUC := usecase.NewConversionUseCase(tx, budgets, clients, users, projects, contracts, paymentUC, dispatch, log)
	eventsUC := usecase.NewPaymentEventsUseCase(conversionUC, gateway, log)
	projectUC := usecase.NewProjectUseCase(projects, budgets, dispatch, log)
	scheduleUC := usecase.NewScheduleUseCase(tx, schedules, projects, budgets, dispatch, log)
	notificationUC := usecase.NewNotificationUseCase(notifications)

	if _, err := usecase.NewUserUseCase(users, log).EnsureAdmin(ctx, cfg.SeedAdminName, cfg.SeedAdminEmail); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if cfg.KafkaPaymentsEnabled {
		consumer, err := messaging.NewPaymentConsumer(cfg, eventsUC, log)
		if err != nil {
			return fmt.Errorf("kafka consumer: %w", err)
		}
		go func() {
			if err := consumer.Run(ctx); err != nil {
				log.Error("payment consumer stopped", zap.Error(err))
			}
		}()
	}

	handler, err := routes.NewRouter(cfg, log, routes.Handlers{
		Budgets:       handlers.NewBudgetHandler(budgetUC),
		Contracts:     handlers.NewContractHandler(contractUC),
		Payments:      handlers.NewPaymentHandler(paymentUC, conversionUC),
		Projects:      handlers.NewProjectHandler(projectUC, scheduleUC),
		Clients:       handlers.NewClientHandler(clientUC),
		Notifications: handlers.NewNotificationHandler(notificationUC),
		Webhooks:      handlers.NewWebhookHandler(eventsUC, log),
	})
	if err != nil {
		return err
	}

	return routes.Run(ctx, cfg, log, handler)
}
