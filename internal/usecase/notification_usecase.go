package usecase

import (
	"context"
	"strings"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"
)

type INotificationUseCase interface {
	ListForUser(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) ListForUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return []entities.Notification{}, nil
	}
	return u.repo.ListByUserID(ctx, userID)
}

// MarkRead only touches notifications owned by userID.
func (u *NotificationUseCase) MarkRead(ctx context.Context, id, userID string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	userID = strings.TrimSpace(userID)
	if id == "" || userID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	n, err := u.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
