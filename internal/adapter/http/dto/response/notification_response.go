package response

import (
	"time"

	"agency_backoffice/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Type      string            `json:"type"`
	Category  string            `json:"category"`
	Read      bool              `json:"read"`
	Link      string            `json:"link,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Category:  n.Category,
		Read:      n.Read,
		Link:      n.Link,
		Metadata:  n.Metadata,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotifications(list []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, FromNotification(n))
	}
	return out
}
