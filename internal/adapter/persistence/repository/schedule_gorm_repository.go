package repository

import (
	"context"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type scheduleModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	ProjectID   string `gorm:"size:36;not null;uniqueIndex"`
	Date        string `gorm:"size:10;not null"`
	Time        string `gorm:"size:5;not null"`
	Type        string `gorm:"size:16;not null"`
	Status      string `gorm:"size:32;not null"`
	MeetingLink string `gorm:"size:512"`
	Notes       string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (scheduleModel) TableName() string { return "schedules" }

type ScheduleGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IScheduleRepository = (*ScheduleGormRepository)(nil)

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) Create(ctx context.Context, s entities.Schedule) (entities.Schedule, error) {
	m := toScheduleModel(s)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		return entities.Schedule{}, translate(err, "create schedule")
	}
	return fromScheduleModel(m), nil
}

func (r *ScheduleGormRepository) Update(ctx context.Context, s entities.Schedule) (entities.Schedule, error) {
	m := toScheduleModel(s)
	m.UpdatedAt = utcNow()
	if err := conn(ctx, r.db).Save(&m).Error; err != nil {
		return entities.Schedule{}, translate(err, "update schedule")
	}
	return fromScheduleModel(m), nil
}

func (r *ScheduleGormRepository) GetByProjectID(ctx context.Context, projectID string) (entities.Schedule, error) {
	var m scheduleModel
	err := conn(ctx, r.db).Where("project_id = ?", projectID).First(&m).Error
	if isNotFound(err) {
		return entities.Schedule{}, nil
	}
	if err != nil {
		return entities.Schedule{}, translate(err, "get schedule")
	}
	return fromScheduleModel(m), nil
}

func toScheduleModel(s entities.Schedule) scheduleModel {
	return scheduleModel{
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

func fromScheduleModel(m scheduleModel) entities.Schedule {
	return entities.Schedule{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Date:        m.Date,
		Time:        m.Time,
		Type:        entities.ScheduleType(m.Type),
		Status:      entities.ScheduleStatus(m.Status),
		MeetingLink: m.MeetingLink,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
