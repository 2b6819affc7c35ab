package pkg

import (
	"fmt"
	"net/http"
)

// AppError is the error shape rendered by HTTP handlers.
//
// Err keeps the underlying cause for logs; it is never serialized to clients.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

// HTTPError is the JSON body returned to API consumers.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	status := e.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return HTTPError{Code: e.Code, Message: e.Message, Status: status}
}
