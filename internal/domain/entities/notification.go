package entities

import "time"

// Notification is an in-app message for a user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type Notification struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Type      string            `json:"type"`
	Category  string            `json:"category"`
	Read      bool              `json:"read"`
	Link      string            `json:"link,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
