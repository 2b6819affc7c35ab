package response

import (
	"time"

	"agency_backoffice/internal/domain/entities"
)

type ScheduleResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	MeetingLink string    `json:"meetingLink,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromSchedule(s entities.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:          s.ID,
		ProjectID:   s.ProjectID,
		Date:        s.Date,
		Time:        s.Time,
		Type:        string(s.Type),
		Status:      string(s.Status),
		MeetingLink: s.MeetingLink,
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
