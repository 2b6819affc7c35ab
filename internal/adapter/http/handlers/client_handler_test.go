package handlers

import (
	"net/http"
	"testing"

	"agency_backoffice/internal/adapter/http/handlers/mocks"
	"agency_backoffice/internal/domain/entities"
	"agency_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newClientRouter(uc usecase.IClientUseCase) *gin.Engine {
	h := NewClientHandler(uc)
	r := gin.New()
	r.POST("/v1/clients", h.CreateClient)
	r.GET("/v1/clients", h.ListClients)
	r.GET("/v1/clients/:id", h.GetClient)
	return r
}

func TestClientHandler_CreateClient(t *testing.T) {
	t.Run("invalid document never reaches the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newClientRouter(mocks.NewMockIClientUseCase(ctrl))

		w := perform(r, http.MethodPost, "/v1/clients", `{"name":"Ana","documentType":"CPF","document":"123.456.789-00"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		r := newClientRouter(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, usecase.ErrClientAlreadyExists)

		w := perform(r, http.MethodPost, "/v1/clients", `{"name":"Ana","documentType":"CPF","document":"529.982.247-25"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		expectCode(t, w, "CLIENT_ALREADY_EXISTS")
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		r := newClientRouter(uc)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateClientInput{
			Name:         "Ana Lima",
			DocumentType: "CNPJ",
			Document:     "11.222.333/0001-81",
			Emails:       []entities.ContactEntry{{Value: "ana@acme.com", Type: "work", IsPrimary: true}},
			Phones:       []entities.ContactEntry{},
		}).Return(entities.Client{ID: "c-1", Name: "Ana Lima"}, nil)

		w := perform(r, http.MethodPost, "/v1/clients", `{"name":"Ana Lima","documentType":"CNPJ","document":"11.222.333/0001-81","emails":[{"value":"ana@acme.com","type":"work","isPrimary":true}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestClientHandler_Queries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientUseCase(ctrl)
	r := newClientRouter(uc)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Client{{ID: "c-1"}}, nil)
	uc.EXPECT().GetByID(gomock.Any(), "c-2").Return(entities.Client{}, usecase.ErrClientNotFound)

	if w := perform(r, http.MethodGet, "/v1/clients", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := perform(r, http.MethodGet, "/v1/clients/c-2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
