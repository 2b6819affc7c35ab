package handlers

import (
	"errors"
	"net/http"

	request "agency_backoffice/internal/adapter/http/dto/request"
	response "agency_backoffice/internal/adapter/http/dto/response"
	"agency_backoffice/internal/usecase"
	"agency_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// CreateClient godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateClientRequest  true  "Client"
// @Success      201   {object}  response.ClientResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		renderError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(created))
}

// ListClients godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}  response.ClientResponse
// @Security     BearerAuth
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		renderError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClients(list))
}

// GetClient godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  response.ClientResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     BearerAuth
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	cl, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, mapClientError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClient(cl))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientInput):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDocument):
		return pkg.NewDomainErrorSimple("INVALID_DOCUMENT", "Invalid document for the selected type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientAlreadyExists):
		return pkg.NewDomainErrorSimple("CLIENT_ALREADY_EXISTS", "Já existe um cliente cadastrado com este documento", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
