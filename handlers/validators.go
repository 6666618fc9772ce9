package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jobpulse/gateway/matcher"
)

// RegisterValidators installs the custom binding validations used by the
// jobs view request: matchfilter and sortorder enum checks.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("matchfilter", func(fl validator.FieldLevel) bool {
		_, err := matcher.ParseFilter(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("sortorder", func(fl validator.FieldLevel) bool {
		_, err := matcher.ParseSort(fl.Field().String())
		return err == nil
	})
}
