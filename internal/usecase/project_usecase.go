package usecase

import (
	"context"
	"fmt"
	"strings"

	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"
	"agency_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type ProgressResult struct {
	Project  entities.Project `json:"project"`
	Replayed bool             `json:"replayed"`
	SideEffects
}

type IProjectUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	NotifyProgress(ctx context.Context, projectID string, progress int, sendEmail bool) (ProgressResult, error)
}

type ProjectUseCase struct {
	projects interfaces.IProjectRepository
	budgets  interfaces.IBudgetRepository
	dispatch *Dispatcher
	log      *zap.Logger
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(projects interfaces.IProjectRepository, budgets interfaces.IBudgetRepository, dispatch *Dispatcher, log *zap.Logger) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, budgets: budgets, dispatch: dispatch, log: log.Named("project.usecase")}
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.projects.List(ctx)
}

// NotifyProgress moves a project to development_<progress>. Progress never goes
// back: a lower step is rejected and the current step is a no-op.
func (u *ProjectUseCase) NotifyProgress(ctx context.Context, projectID string, progress int, sendEmail bool) (ProgressResult, error) {
	p, err := u.GetByID(ctx, projectID)
	if err != nil {
		return ProgressResult{}, err
	}

	dec, err := policy.Decide(policy.EventProgressNotified, policy.State{
		HasProject:      true,
		ProjectStatus:   p.Status,
		ProjectProgress: p.Progress,
		Progress:        progress,
	})
	if err != nil {
		return ProgressResult{}, err
	}
	if dec.Replay {
		u.log.Info("progress already applied", zap.String("project_id", p.ID), zap.Int("progress", progress))
		return ProgressResult{Project: p, Replayed: true}, nil
	}

	advanced, err := u.projects.AdvanceProgress(ctx, p.ID, dec.NextProjectStatus, dec.Progress)
	if err != nil {
		return ProgressResult{}, err
	}
	current, err := u.GetByID(ctx, p.ID)
	if err != nil {
		return ProgressResult{}, err
	}
	if !advanced {
		if current.Progress == progress {
			return ProgressResult{Project: current, Replayed: true}, nil
		}
		return ProgressResult{}, fmt.Errorf("%w: %d after %d", policy.ErrProgressRegression, progress, current.Progress)
	}
	u.log.Info("project progress updated",
		zap.String("project_id", p.ID),
		zap.Int("from", p.Progress),
		zap.Int("to", progress),
	)

	res := ProgressResult{Project: current}
	if sendEmail {
		b, err := u.budgets.GetByID(ctx, current.BudgetID)
		if err != nil {
			u.log.Warn("budget lookup for progress email failed", zap.String("project_id", p.ID), zap.Error(err))
		}
		u.dispatch.Email(ctx, &res.SideEffects, emailProgress, b.ClientEmail, emailData{
			ClientName:  current.ClientName,
			ProjectName: current.Name,
			Progress:    progress,
		})
	}
	u.dispatch.Notify(ctx, &res.SideEffects, current.CreatedByID, entities.Notification{
		Title:    "Progresso do projeto",
		Message:  fmt.Sprintf("O projeto %s atingiu %d%%.", current.Name, progress),
		Type:     "info",
		Category: "project",
		Link:     "/projects/" + current.ID,
		Metadata: map[string]string{"project_id": current.ID, "progress": fmt.Sprint(progress)},
	})
	return res, nil
}
