package repository

import (
	"context"
	"strings"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type clientModel struct {
	ID           string                                     `gorm:"primaryKey;size:36"`
	Name         string                                     `gorm:"size:255;not null;index"`
	FirstName    string                                     `gorm:"size:120"`
	LastName     string                                     `gorm:"size:255"`
	DocumentType string                                     `gorm:"size:16;not null"`
	Document     string                                     `gorm:"size:64;not null;uniqueIndex"`
	Company      string                                     `gorm:"size:255"`
	PrimaryEmail string                                     `gorm:"size:255;index"`
	Emails       datatypes.JSONSlice[entities.ContactEntry] `gorm:"not null"`
	Phones       datatypes.JSONSlice[entities.ContactEntry] `gorm:"not null"`
	Status       string                                     `gorm:"size:16;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (clientModel) TableName() string { return "clients" }

// ClientGormRepository persists Client entities.
//
// The primary email is denormalised into its own indexed column so the
// conversion flow can match clients without scanning the JSON lists.
type ClientGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IClientRepository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	m := toClientModel(c)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Client{}, translate(err, "create client")
	}
	return fromClientModel(m), nil
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var m clientModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&m).Error
	if isNotFound(err) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, translate(err, "get client")
	}
	return fromClientModel(m), nil
}

func (r *ClientGormRepository) List(ctx context.Context) ([]entities.Client, error) {
	var rows []clientModel
	if err := conn(ctx, r.db).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, translate(err, "list clients")
	}
	out := make([]entities.Client, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromClientModel(m))
	}
	return out, nil
}

// FindByEmailOrName matches on the primary email (case-insensitive) or the exact name.
// An email match wins over a name match.
func (r *ClientGormRepository) FindByEmailOrName(ctx context.Context, email, name string) (entities.Client, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" && name == "" {
		return entities.Client{}, nil
	}

	var m clientModel
	err := conn(ctx, r.db).
		Where("(primary_email <> '' AND primary_email = ?) OR name = ?", email, name).
		Order(gorm.Expr("CASE WHEN primary_email = ? THEN 0 ELSE 1 END, created_at ASC", email)).
		First(&m).Error
	if isNotFound(err) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, translate(err, "find client")
	}
	return fromClientModel(m), nil
}

func toClientModel(c entities.Client) clientModel {
	emails := c.Emails
	if emails == nil {
		emails = []entities.ContactEntry{}
	}
	phones := c.Phones
	if phones == nil {
		phones = []entities.ContactEntry{}
	}
	return clientModel{
		ID:           c.ID,
		Name:         c.Name,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		DocumentType: c.DocumentType,
		Document:     c.Document,
		Company:      c.Company,
		PrimaryEmail: strings.ToLower(c.PrimaryEmail()),
		Emails:       datatypes.NewJSONSlice(emails),
		Phones:       datatypes.NewJSONSlice(phones),
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func fromClientModel(m clientModel) entities.Client {
	return entities.Client{
		ID:           m.ID,
		Name:         m.Name,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		DocumentType: m.DocumentType,
		Document:     m.Document,
		Company:      m.Company,
		Emails:       []entities.ContactEntry(m.Emails),
		Phones:       []entities.ContactEntry(m.Phones),
		Status:       entities.ClientStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
