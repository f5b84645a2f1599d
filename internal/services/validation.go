package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

type createInput struct {
	UID          string `json:"uid" validate:"required,max=64"`
	Name         string `json:"name" validate:"required,max=100"`
	ResourceLink string `json:"resourceLink" validate:"required,max=2048"`
}

type updateInput struct {
	Name         *string `json:"name" validate:"omitnil,min=1,max=100"`
	ResourceLink *string `json:"resourceLink" validate:"omitnil,min=1,max=2048"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct converts validator failures into a *models.ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "required", "min":
			fields[e.Field()] = "must not be empty"
		case "max":
			fields[e.Field()] = fmt.Sprintf("must be at most %s characters", e.Param())
		default:
			fields[e.Field()] = "invalid value"
		}
	}
	return &models.ValidationError{Fields: fields}
}
