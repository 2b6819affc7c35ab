package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"agency_backoffice/internal/adapter/http/handlers/mocks"
	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/domain/policy"
	"agency_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProjectRouter(projects usecase.IProjectUseCase, schedules usecase.IScheduleUseCase) *gin.Engine {
	h := NewProjectHandler(projects, schedules)
	r := gin.New()
	r.GET("/v1/projects", h.ListProjects)
	r.GET("/v1/projects/:id", h.GetProject)
	r.POST("/v1/projects/:id/progress", h.NotifyProgress)
	r.POST("/v1/projects/:id/schedule", h.ScheduleDelivery)
	r.GET("/v1/projects/:id/schedule", h.GetSchedule)
	return r
}

func TestProjectHandler_NotifyProgress(t *testing.T) {
	t.Run("invalid step is rejected before the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newProjectRouter(mocks.NewMockIProjectUseCase(ctrl), mocks.NewMockIScheduleUseCase(ctrl))

		for _, body := range []string{`{"progress":30}`, `{}`, `{"progress":"50"}`} {
			if w := perform(r, http.MethodPost, "/v1/projects/p-1/progress", body); w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("email defaults to on", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(projects, mocks.NewMockIScheduleUseCase(ctrl))

		projects.EXPECT().NotifyProgress(gomock.Any(), "p-1", 50, true).Return(usecase.ProgressResult{
			Project:     entities.Project{ID: "p-1", Progress: 50, Status: entities.ProjectStatusDevelopment50},
			SideEffects: usecase.SideEffects{EmailSent: true},
		}, nil)
		projects.EXPECT().NotifyProgress(gomock.Any(), "p-1", 70, false).Return(usecase.ProgressResult{
			Project: entities.Project{ID: "p-1", Progress: 70},
		}, nil)

		w := perform(r, http.MethodPost, "/v1/projects/p-1/progress", `{"progress":50}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["project"].(map[string]any)["status"] != "development_50" || body["emailSent"] != true {
			t.Fatalf("unexpected body %v", body)
		}

		if w := perform(r, http.MethodPost, "/v1/projects/p-1/progress", `{"progress":70,"sendEmail":false}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("regression conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(projects, mocks.NewMockIScheduleUseCase(ctrl))

		projects.EXPECT().NotifyProgress(gomock.Any(), "p-1", 20, true).Return(usecase.ProgressResult{}, fmt.Errorf("%w: 20 after 70", policy.ErrProgressRegression))

		w := perform(r, http.MethodPost, "/v1/projects/p-1/progress", `{"progress":20}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		expectCode(t, w, "PROGRESS_REGRESSION")
	})
}

func TestProjectHandler_Queries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projects := mocks.NewMockIProjectUseCase(ctrl)
	r := newProjectRouter(projects, mocks.NewMockIScheduleUseCase(ctrl))

	projects.EXPECT().List(gomock.Any()).Return([]entities.Project{{ID: "p-1"}}, nil)
	projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)
	projects.EXPECT().GetByID(gomock.Any(), "p-2").Return(entities.Project{}, usecase.ErrProjectNotFound)

	if w := perform(r, http.MethodGet, "/v1/projects", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := perform(r, http.MethodGet, "/v1/projects/p-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := perform(r, http.MethodGet, "/v1/projects/p-2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProjectHandler_Schedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	schedules := mocks.NewMockIScheduleUseCase(ctrl)
	r := newProjectRouter(mocks.NewMockIProjectUseCase(ctrl), schedules)

	schedules.EXPECT().ScheduleDelivery(gomock.Any(), usecase.ScheduleDeliveryInput{
		ProjectID:   "p-1",
		Date:        "2026-11-20",
		Time:        "14:30",
		Type:        entities.ScheduleTypeVideo,
		MeetingLink: "https://meet.example.com/abc",
	}).Return(usecase.ScheduleResult{
		Schedule:    entities.Schedule{ID: "s-1", ProjectID: "p-1", Status: entities.ScheduleStatusRescheduled},
		Rescheduled: true,
	}, nil)
	schedules.EXPECT().GetByProjectID(gomock.Any(), "p-2").Return(entities.Schedule{}, usecase.ErrScheduleNotFound)

	w := perform(r, http.MethodPost, "/v1/projects/p-1/schedule", `{"date":"2026-11-20","time":"14:30","type":"video","meetingLink":"https://meet.example.com/abc"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["rescheduled"] != true {
		t.Fatalf("unexpected body %v", body)
	}

	if w := perform(r, http.MethodPost, "/v1/projects/p-1/schedule", `{"date":"amanhã","time":"14:30"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if w := perform(r, http.MethodGet, "/v1/projects/p-2/schedule", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
