package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/emmanuel-dcoder/tap-sync-api/internal/config"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/http/handlers"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/http/middleware"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/mailer"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/email"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/notifications"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/orders"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/payments"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/transactions"
	"github.com/emmanuel-dcoder/tap-sync-api/internal/modules/users"
)

// NewRouter wires the full service graph and mounts all routes.
func NewRouter(logger *slog.Logger, db *gorm.DB, cfg config.Config) *gin.Engine {
	usersRepo := users.NewRepo(db)
	txnRepo := transactions.NewRepo(db)
	orderSvc := orders.NewService(db)
	notifSvc := notifications.NewService(db)

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
	mailSvc := email.NewMailerAdapter(smtpMailer, cfg.Mail.FromAddr, cfg.Mail.FromName)

	gateway := payments.NewPaystackClient(cfg.Paystack)
	verifier := payments.NewVerifier(cfg.Paystack.SecretKey)
	sideFx := payments.NewSideEffects(usersRepo, notifSvc, mailSvc, logger)

	paymentSvc := payments.NewService(gateway, usersRepo, txnRepo, cfg.Pricing, cfg.Paystack.CallbackURL, logger)
	webhookSvc := payments.NewWebhookService(db, verifier, gateway.Name(), sideFx, logger)

	paymentHandler := handlers.NewPaymentHandler(paymentSvc)
	webhookHandler := handlers.NewWebhookHandler(webhookSvc)
	orderHandler := handlers.NewOrderHandler(orderSvc)
	txnHandler := handlers.NewTransactionHandler(txnRepo)
	notifHandler := handlers.NewNotificationHandler(notifSvc)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.ErrorHandler(logger),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	payment := r.Group("/payment")
	{
		payment.POST("/initialize", paymentHandler.Initialize)
		payment.POST("/webhook", webhookHandler.Handle)
	}

	r.GET("/orders/:userId", orderHandler.ListByUser)
	r.GET("/transactions/:userId", txnHandler.ListByUser)

	notif := r.Group("/notifications")
	{
		notif.GET("/user/:userId", notifHandler.ListByUser)
		notif.POST("/:id/read", notifHandler.MarkRead)
	}

	return r
}
