package usecase

import (
	"context"
	"strings"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IUserUseCase interface {
	EnsureAdmin(ctx context.Context, name, email string) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
	log  *zap.Logger
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, log *zap.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, log: log.Named("user.usecase")}
}

// EnsureAdmin returns the first ADMIN user, creating one from name/email when
// none exists. An empty email only looks the admin up.
func (u *UserUseCase) EnsureAdmin(ctx context.Context, name, email string) (entities.User, error) {
	admin, err := u.repo.FirstByRole(ctx, entities.UserRoleAdmin)
	if err != nil || admin.ID != "" {
		return admin, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.User{}, nil
	}

	created, err := u.repo.Create(ctx, entities.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     email,
		Role:      entities.UserRoleAdmin,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return entities.User{}, err
	}
	u.log.Info("admin user seeded", zap.String("user_id", created.ID), zap.String("email", created.Email))
	return created, nil
}
