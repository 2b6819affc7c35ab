package request

import (
	"reflect"

	"agency_backoffice/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the back-office binding tags to v:
//
//	document: the field is a valid document for the sibling DocumentType field
//	progress: the field is one of the project progress steps (20, 50, 70, 100)
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("document", validDocument); err != nil {
		return err
	}
	return v.RegisterValidation("progress", validProgress)
}

func validDocument(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	docType := parent.FieldByName("DocumentType")
	if !docType.IsValid() || docType.Kind() != reflect.String {
		return false
	}
	_, ok := entities.NormalizeDocument(docType.String(), fl.Field().String())
	return ok
}

func validProgress(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return entities.IsValidProgressStep(int(fl.Field().Int()))
	}
	return false
}
