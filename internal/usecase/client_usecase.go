package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type CreateClientInput struct {
	Name         string
	DocumentType string
	Document     string
	Company      string
	Emails       []entities.ContactEntry
	Phones       []entities.ContactEntry
}

type IClientUseCase interface {
	Create(ctx context.Context, in CreateClientInput) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, in CreateClientInput) (entities.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Client{}, fmt.Errorf("%w: name is required", ErrInvalidClientInput)
	}
	doc, ok := entities.NormalizeDocument(in.DocumentType, in.Document)
	if !ok {
		return entities.Client{}, ErrInvalidDocument
	}

	emails, err := normalizeContacts(in.Emails, "email")
	if err != nil {
		return entities.Client{}, err
	}
	for _, e := range emails {
		if err := validate.Var(e.Value, "email"); err != nil {
			return entities.Client{}, fmt.Errorf("%w: invalid email %q", ErrInvalidClientInput, e.Value)
		}
	}
	phones, err := normalizeContacts(in.Phones, "phone")
	if err != nil {
		return entities.Client{}, err
	}

	now := time.Now().UTC()
	first, last := entities.SplitName(name)
	c := entities.Client{
		ID:           uuid.NewString(),
		Name:         name,
		FirstName:    first,
		LastName:     last,
		DocumentType: strings.ToUpper(strings.TrimSpace(in.DocumentType)),
		Document:     doc,
		Company:      strings.TrimSpace(in.Company),
		Emails:       emails,
		Phones:       phones,
		Status:       entities.ClientStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, c)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.Client{}, ErrClientAlreadyExists
	}
	return created, err
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrClientNotFound
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

// normalizeContacts trims values, drops empty entries and assigns ids. A list
// with a single entry and no primary gets that entry as primary.
func normalizeContacts(in []entities.ContactEntry, kind string) ([]entities.ContactEntry, error) {
	out := make([]entities.ContactEntry, 0, len(in))
	for _, e := range in {
		e.Value = strings.TrimSpace(e.Value)
		if e.Value == "" {
			continue
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if e.Type == "" {
			e.Type = "other"
		}
		out = append(out, e)
	}
	if len(out) == 1 {
		out[0].IsPrimary = true
	}
	if !entities.HasSinglePrimary(out) {
		return nil, fmt.Errorf("%w: %s list needs exactly one primary entry", ErrInvalidClientInput, kind)
	}
	return out, nil
}
