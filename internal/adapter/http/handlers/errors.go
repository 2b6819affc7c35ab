package handlers

import (
	"errors"
	"net/http"

	"agency_backoffice/internal/domain/policy"
	"agency_backoffice/internal/usecase"
	"agency_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// renderError writes appErr as JSON. Internal causes are attached to the gin
// context so the request logger records them.
func renderError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidPayload(c *gin.Context, err error) {
	renderError(c, pkg.NewDomainError(errInvalidPayload.Code, errInvalidPayload.Message, err, errInvalidPayload.HTTPStatus))
}

// mapCommonError covers the errors every workflow handler can see.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, policy.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Operation not allowed in the current status", err, http.StatusConflict)
	case errors.Is(err, policy.ErrProgressRegression):
		return pkg.NewDomainError("PROGRESS_REGRESSION", "Project progress cannot decrease", err, http.StatusConflict)
	case errors.Is(err, policy.ErrInvalidProgress):
		return pkg.NewDomainErrorSimple("INVALID_PROGRESS", "Progress must be 20, 50, 70 or 100", http.StatusBadRequest)
	case errors.Is(err, policy.ErrProjectRequired):
		return pkg.NewDomainErrorSimple("PROJECT_REQUIRED", "Budget has not been converted into a project", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFinalValueRequired):
		return pkg.NewDomainErrorSimple("FINAL_VALUE_REQUIRED", "Budget final value is not set", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
