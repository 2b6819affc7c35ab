package entities

import (
	"strings"
	"time"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// DefaultLastName is used when a client name has a single token.
const DefaultLastName = "Cliente"

// ContactEntry is one element of a client's email or phone list.
type ContactEntry struct {
	ID        string `json:"id"`
	Value     string `json:"value"`
	Type      string `json:"type"`
	IsPrimary bool   `json:"isPrimary"`
}

// Client is the customer record. Emails and Phones must hold exactly one
// primary entry when non-empty.
type Client struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	DocumentType string         `json:"document_type"`
	Document     string         `json:"document"`
	Company      string         `json:"company,omitempty"`
	Emails       []ContactEntry `json:"emails"`
	Phones       []ContactEntry `json:"phones"`
	Status       ClientStatus   `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// PrimaryEmail returns the value of the primary email entry, if any.
func (c Client) PrimaryEmail() string {
	return primaryValue(c.Emails)
}

func (c Client) PrimaryPhone() string {
	return primaryValue(c.Phones)
}

func primaryValue(entries []ContactEntry) string {
	for _, e := range entries {
		if e.IsPrimary {
			return e.Value
		}
	}
	return ""
}

// HasSinglePrimary reports whether a non-empty list has exactly one primary entry.
// Empty lists are valid.
func HasSinglePrimary(entries []ContactEntry) bool {
	if len(entries) == 0 {
		return true
	}
	n := 0
	for _, e := range entries {
		if e.IsPrimary {
			n++
		}
	}
	return n == 1
}

// SplitName splits a full name into first name (first token) and last name
// (remaining tokens). A single token gets DefaultLastName.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", DefaultLastName
	case 1:
		return parts[0], DefaultLastName
	}
	return parts[0], strings.Join(parts[1:], " ")
}
