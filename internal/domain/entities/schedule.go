package entities

import "time"

type ScheduleType string

const (
	ScheduleTypeVideo ScheduleType = "video"
	ScheduleTypeAudio ScheduleType = "audio"
)

type ScheduleStatus string

const (
	ScheduleStatusScheduled         ScheduleStatus = "scheduled"
	ScheduleStatusRescheduled       ScheduleStatus = "rescheduled"
	ScheduleStatusPendingReschedule ScheduleStatus = "pending_reschedule"
)

// Schedule is the delivery meeting of a project (one per project).
type Schedule struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"project_id"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Type        ScheduleType   `json:"type"`
	Status      ScheduleStatus `json:"status"`
	MeetingLink string         `json:"meeting_link,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
