package response

import (
	"time"

	"agency_backoffice/internal/domain/entities"
)

type ContactEntryResponse struct {
	ID        string `json:"id"`
	Value     string `json:"value"`
	Type      string `json:"type"`
	IsPrimary bool   `json:"isPrimary"`
}

type ClientResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	FirstName    string                 `json:"firstName"`
	LastName     string                 `json:"lastName"`
	DocumentType string                 `json:"documentType"`
	Document     string                 `json:"document"`
	Company      string                 `json:"company,omitempty"`
	PrimaryEmail string                 `json:"primaryEmail,omitempty"`
	Emails       []ContactEntryResponse `json:"emails"`
	Phones       []ContactEntryResponse `json:"phones"`
	Status       string                 `json:"status"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		DocumentType: c.DocumentType,
		Document:     c.Document,
		Company:      c.Company,
		PrimaryEmail: c.PrimaryEmail(),
		Emails:       fromContacts(c.Emails),
		Phones:       fromContacts(c.Phones),
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromClients(list []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromClient(c))
	}
	return out
}

func optionalClient(c *entities.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	r := FromClient(*c)
	return &r
}

func fromContacts(in []entities.ContactEntry) []ContactEntryResponse {
	out := make([]ContactEntryResponse, 0, len(in))
	for _, e := range in {
		out = append(out, ContactEntryResponse{ID: e.ID, Value: e.Value, Type: e.Type, IsPrimary: e.IsPrimary})
	}
	return out
}
