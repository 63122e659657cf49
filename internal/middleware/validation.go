package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/floshq/flos-admin-api/internal/model"
)

// RegisterValidations wires the domain enumerations into gin's binding
// engine so request structs can declare them as tags.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("appointment_status", func(fl validator.FieldLevel) bool {
		return model.AppointmentStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("auth_code_kind", func(fl validator.FieldLevel) bool {
		return model.AuthCodeKind(fl.Field().String()).Valid()
	})
}
