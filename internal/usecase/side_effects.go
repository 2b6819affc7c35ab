package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/infrastructure/metrics"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errEmailNotConfigured = errors.New("email sender not configured")

// SideEffects reports the best-effort work done after a state change.
// A failed email never fails the operation that triggered it.
type SideEffects struct {
	EmailSent        bool   `json:"emailSent"`
	EmailError       string `json:"emailError,omitempty"`
	NotificationSent bool   `json:"notificationSent"`
}

// Dispatcher sends transactional email and in-app notifications after commits.
// Every dependency is optional; a missing one is reported, not fatal.
type Dispatcher struct {
	mailer        interfaces.IEmailSender
	notifications interfaces.INotificationRepository
	users         interfaces.IUserRepository
	appURL        string
	log           *zap.Logger
}

func NewDispatcher(mailer interfaces.IEmailSender, notifications interfaces.INotificationRepository, users interfaces.IUserRepository, appURL string, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		mailer:        mailer,
		notifications: notifications,
		users:         users,
		appURL:        strings.TrimRight(appURL, "/"),
		log:           log.Named("dispatch"),
	}
}

// Email renders and sends one template to a client. The result is folded into fx.
func (d *Dispatcher) Email(ctx context.Context, fx *SideEffects, kind emailKind, to string, data emailData) {
	if d == nil {
		fx.EmailError = errEmailNotConfigured.Error()
		return
	}
	to = strings.TrimSpace(to)
	if to == "" {
		fx.EmailError = "client has no email address"
		metrics.SideEffectsTotal.WithLabelValues("email", metrics.OutcomeIgnored).Inc()
		return
	}
	if d.mailer == nil {
		fx.EmailError = errEmailNotConfigured.Error()
		metrics.SideEffectsTotal.WithLabelValues("email", metrics.OutcomeIgnored).Inc()
		return
	}

	msg, err := renderEmail(kind, to, data)
	if err == nil {
		err = d.mailer.Send(ctx, msg)
	}
	if err != nil {
		d.log.Warn("email failed", zap.String("kind", string(kind)), zap.String("to", to), zap.Error(err))
		fx.EmailError = err.Error()
		metrics.SideEffectsTotal.WithLabelValues("email", metrics.OutcomeFailed).Inc()
		return
	}
	fx.EmailSent = true
	fx.EmailError = ""
	metrics.SideEffectsTotal.WithLabelValues("email", metrics.OutcomeOK).Inc()
}

// Notify creates an in-app notification for userID, falling back to the first
// admin (or any user) when userID is nil.
func (d *Dispatcher) Notify(ctx context.Context, fx *SideEffects, userID *string, n entities.Notification) {
	if d == nil || d.notifications == nil {
		return
	}

	target := derefID(userID)
	if target == "" && d.users != nil {
		u, err := d.users.FirstByRole(ctx, entities.UserRoleAdmin)
		if err == nil && u.ID == "" {
			u, err = d.users.First(ctx)
		}
		if err != nil {
			d.log.Warn("notification target lookup failed", zap.Error(err))
		}
		target = u.ID
	}
	if target == "" {
		d.log.Debug("no user to notify", zap.String("title", n.Title))
		metrics.SideEffectsTotal.WithLabelValues("notification", metrics.OutcomeIgnored).Inc()
		return
	}

	n.ID = uuid.NewString()
	n.UserID = target
	n.CreatedAt = time.Now().UTC()
	if n.Link != "" && strings.HasPrefix(n.Link, "/") {
		n.Link = d.appURL + n.Link
	}
	if _, err := d.notifications.Create(ctx, n); err != nil {
		d.log.Warn("notification failed", zap.String("user_id", target), zap.String("title", n.Title), zap.Error(err))
		metrics.SideEffectsTotal.WithLabelValues("notification", metrics.OutcomeFailed).Inc()
		return
	}
	fx.NotificationSent = true
	metrics.SideEffectsTotal.WithLabelValues("notification", metrics.OutcomeOK).Inc()
}

// URL resolves an app path (e.g. /projects/<id>) against APP_URL.
func (d *Dispatcher) URL(path string) string {
	if d == nil {
		return path
	}
	return d.appURL + path
}

func derefID(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
