package repository

import (
	"context"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type userModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null;uniqueIndex"`
	Role      string `gorm:"size:16;not null;index"`
	CreatedAt time.Time
}

func (userModel) TableName() string { return "users" }

// UserGormRepository reads team members. Users are managed elsewhere; this
// service only needs them to attribute project ownership.
type UserGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IUserRepository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// Create inserts a user. It backs the seed command and tests.
func (r *UserGormRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	m := userModel{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), CreatedAt: u.CreatedAt}
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.User{}, translate(err, "create user")
	}
	u.CreatedAt = m.CreatedAt
	return u, nil
}

func (r *UserGormRepository) FirstByRole(ctx context.Context, role entities.UserRole) (entities.User, error) {
	return r.first(conn(ctx, r.db).Where("role = ?", string(role)))
}

func (r *UserGormRepository) First(ctx context.Context) (entities.User, error) {
	return r.first(conn(ctx, r.db))
}

func (r *UserGormRepository) first(q *gorm.DB) (entities.User, error) {
	var m userModel
	err := q.Order("created_at ASC").First(&m).Error
	if isNotFound(err) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, translate(err, "get user")
	}
	return entities.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      entities.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
	}, nil
}
