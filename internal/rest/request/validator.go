package request

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var httpURLPattern = regexp.MustCompile(`^https?://.+`)

// RegisterCustomValidators installs the httpurl rule on gin's binding engine.
// Must be called once before the router handles requests.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
			return httpURLPattern.MatchString(fl.Field().String())
		})
	}
}
