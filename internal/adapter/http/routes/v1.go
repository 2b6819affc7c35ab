package routes

import (
	"net/http"

	"agency_backoffice/internal/adapter/http/handlers"
	"agency_backoffice/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets       = "/budgets"
	PathContracts     = "/contracts"
	PathProjects      = "/projects"
	PathClients       = "/clients"
	PathNotifications = "/notifications"
	PathWebhooks      = "/webhooks"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.WebhookHandler, secret string) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payments", middleware.WebhookSignature(secret), h.PaymentConfirmed)
		webhooks.POST("/mercadopago", h.MercadoPagoNotification)
	}
}

func addPublicRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathBudgets, h.Budgets.CreateBudget)
	rg.POST(PathBudgets+"/:id/approve", h.Budgets.ApproveBudget)
	rg.POST(PathBudgets+"/:id/reject", h.Budgets.RejectBudget)
	rg.POST(PathContracts+"/:id/sign", h.Contracts.SignContract)
}

func addBudgetRoutes(rg *gin.RouterGroup, h Handlers) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", h.Budgets.ListBudgets)
		budgets.GET("/:id", h.Budgets.GetBudget)
		budgets.PATCH("/:id/final-value", middleware.RequireAdmin(), h.Budgets.UpdateFinalValue)
		budgets.POST("/:id/send", h.Budgets.SendBudget)

		budgets.POST("/:id/contract", h.Contracts.GenerateContract)
		budgets.GET("/:id/contract", h.Contracts.GetContract)

		budgets.GET("/:id/payments", h.Payments.ListPayments)
		budgets.POST("/:id/down-payment/link", h.Payments.CreateDownPaymentLink)
		budgets.POST("/:id/down-payment/confirm", middleware.RequireAdmin(), h.Payments.ConfirmDownPayment)
		budgets.POST("/:id/final-payment/confirm", middleware.RequireAdmin(), h.Payments.ConfirmFinalPayment)
	}
}

func addProjectRoutes(rg *gin.RouterGroup, h Handlers) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.Projects.ListProjects)
		projects.GET("/:id", h.Projects.GetProject)
		projects.POST("/:id/progress", h.Projects.NotifyProgress)
		projects.POST("/:id/final-payment/link", h.Payments.CreateFinalPaymentLink)
		projects.POST("/:id/schedule", h.Projects.ScheduleDelivery)
		projects.GET("/:id/schedule", h.Projects.GetSchedule)
	}
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.ListNotifications)
		notifications.PATCH("/:id/read", h.MarkRead)
	}
}
