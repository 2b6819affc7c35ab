package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"
	"agency_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	scheduleDateLayout = "2006-01-02"
	scheduleTimeLayout = "15:04"
)

type ScheduleDeliveryInput struct {
	ProjectID   string
	Date        string
	Time        string
	Type        entities.ScheduleType
	MeetingLink string
	Notes       string
}

type ScheduleResult struct {
	Schedule    entities.Schedule `json:"schedule"`
	Rescheduled bool              `json:"rescheduled"`
	SideEffects
}

type IScheduleUseCase interface {
	ScheduleDelivery(ctx context.Context, in ScheduleDeliveryInput) (ScheduleResult, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Schedule, error)
}

type ScheduleUseCase struct {
	tx        interfaces.ITransactor
	schedules interfaces.IScheduleRepository
	projects  interfaces.IProjectRepository
	budgets   interfaces.IBudgetRepository
	dispatch  *Dispatcher
	log       *zap.Logger
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase(
	tx interfaces.ITransactor,
	schedules interfaces.IScheduleRepository,
	projects interfaces.IProjectRepository,
	budgets interfaces.IBudgetRepository,
	dispatch *Dispatcher,
	log *zap.Logger,
) *ScheduleUseCase {
	return &ScheduleUseCase{
		tx:        tx,
		schedules: schedules,
		projects:  projects,
		budgets:   budgets,
		dispatch:  dispatch,
		log:       log.Named("schedule.usecase"),
	}
}

// ScheduleDelivery creates the project's delivery meeting, or reschedules it
// when one already exists.
func (u *ScheduleUseCase) ScheduleDelivery(ctx context.Context, in ScheduleDeliveryInput) (ScheduleResult, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	if in.ProjectID == "" {
		return ScheduleResult{}, ErrInvalidProjectID
	}
	if err := validateSchedule(&in); err != nil {
		return ScheduleResult{}, err
	}

	var (
		res     ScheduleResult
		project entities.Project
	)
	err := runWithRetry(ctx, u.tx, func(ctx context.Context) error {
		res = ScheduleResult{}
		var err error
		project, err = u.projects.GetByID(ctx, in.ProjectID)
		if err != nil {
			return err
		}
		if project.ID == "" {
			return ErrProjectNotFound
		}
		if _, err := policy.Decide(policy.EventDeliveryScheduled, policy.State{
			HasProject:      true,
			ProjectStatus:   project.Status,
			ProjectProgress: project.Progress,
		}); err != nil {
			return err
		}

		existing, err := u.schedules.GetByProjectID(ctx, project.ID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if existing.ID != "" {
			existing.Date = in.Date
			existing.Time = in.Time
			existing.Type = in.Type
			existing.MeetingLink = in.MeetingLink
			existing.Notes = in.Notes
			existing.Status = entities.ScheduleStatusRescheduled
			res.Schedule, err = u.schedules.Update(ctx, existing)
			res.Rescheduled = true
			return err
		}
		res.Schedule, err = u.schedules.Create(ctx, entities.Schedule{
			ID:          uuid.NewString(),
			ProjectID:   project.ID,
			Date:        in.Date,
			Time:        in.Time,
			Type:        in.Type,
			Status:      entities.ScheduleStatusScheduled,
			MeetingLink: in.MeetingLink,
			Notes:       in.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		return err
	})
	if err != nil {
		return ScheduleResult{}, err
	}
	u.log.Info("delivery scheduled",
		zap.String("project_id", project.ID),
		zap.String("schedule_id", res.Schedule.ID),
		zap.Bool("rescheduled", res.Rescheduled),
	)

	b, err := u.budgets.GetByID(ctx, project.BudgetID)
	if err != nil {
		u.log.Warn("budget lookup for delivery email failed", zap.String("project_id", project.ID), zap.Error(err))
	}
	u.dispatch.Email(ctx, &res.SideEffects, emailDeliveryScheduled, b.ClientEmail, emailData{
		ClientName:  project.ClientName,
		ProjectName: project.Name,
		Date:        res.Schedule.Date,
		Time:        res.Schedule.Time,
		MeetingLink: res.Schedule.MeetingLink,
	})
	u.dispatch.Notify(ctx, &res.SideEffects, project.CreatedByID, entities.Notification{
		Title:    "Entrega agendada",
		Message:  fmt.Sprintf("Entrega do projeto %s em %s às %s.", project.Name, res.Schedule.Date, res.Schedule.Time),
		Type:     "info",
		Category: "schedule",
		Link:     "/projects/" + project.ID,
		Metadata: map[string]string{"project_id": project.ID, "schedule_id": res.Schedule.ID},
	})
	return res, nil
}

func (u *ScheduleUseCase) GetByProjectID(ctx context.Context, projectID string) (entities.Schedule, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Schedule{}, ErrInvalidProjectID
	}
	s, err := u.schedules.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Schedule{}, err
	}
	if s.ID == "" {
		return entities.Schedule{}, ErrScheduleNotFound
	}
	return s, nil
}

func validateSchedule(in *ScheduleDeliveryInput) error {
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.MeetingLink = strings.TrimSpace(in.MeetingLink)
	in.Notes = strings.TrimSpace(in.Notes)
	if _, err := time.Parse(scheduleDateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSchedule)
	}
	if _, err := time.Parse(scheduleTimeLayout, in.Time); err != nil {
		return fmt.Errorf("%w: time must be HH:MM", ErrInvalidSchedule)
	}
	switch in.Type {
	case "":
		in.Type = entities.ScheduleTypeVideo
	case entities.ScheduleTypeVideo, entities.ScheduleTypeAudio:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidSchedule, in.Type)
	}
	if in.MeetingLink != "" {
		if err := validate.Var(in.MeetingLink, "url"); err != nil {
			return fmt.Errorf("%w: invalid meeting link", ErrInvalidSchedule)
		}
	}
	return nil
}
