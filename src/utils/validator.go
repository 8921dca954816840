package utils

import (
	"github.com/go-playground/validator/v10"

	"scholar-duty-backend/src/reconcile"
)

// Validate shared request validator with the duty tags registered:
//
//	weekday   full English weekday name
//	timerange "h:mm AM - h:mm PM" that resolves to a non-empty window
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, ok := reconcile.ParseWeekday(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("timerange", func(fl validator.FieldLevel) bool {
		return reconcile.ValidTimeRange(fl.Field().String()) == nil
	})
	return v
}
