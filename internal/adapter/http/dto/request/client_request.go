package request

import (
	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase"
)

type ContactEntryRequest struct {
	Value     string `json:"value" binding:"required"`
	Type      string `json:"type"`
	IsPrimary bool   `json:"isPrimary"`
}

type CreateClientRequest struct {
	Name         string                `json:"name" binding:"required"`
	DocumentType string                `json:"documentType" binding:"required,oneof=CPF CNPJ PASSPORT cpf cnpj passport"`
	Document     string                `json:"document" binding:"required,document"`
	Company      string                `json:"company"`
	Emails       []ContactEntryRequest `json:"emails" binding:"dive"`
	Phones       []ContactEntryRequest `json:"phones" binding:"dive"`
}

func (r CreateClientRequest) ToInput() usecase.CreateClientInput {
	return usecase.CreateClientInput{
		Name:         r.Name,
		DocumentType: r.DocumentType,
		Document:     r.Document,
		Company:      r.Company,
		Emails:       toContacts(r.Emails),
		Phones:       toContacts(r.Phones),
	}
}

func toContacts(in []ContactEntryRequest) []entities.ContactEntry {
	out := make([]entities.ContactEntry, 0, len(in))
	for _, e := range in {
		out = append(out, entities.ContactEntry{Value: e.Value, Type: e.Type, IsPrimary: e.IsPrimary})
	}
	return out
}
