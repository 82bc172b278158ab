package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// tickerPattern accepts the symbol shapes quote providers use, e.g. "AAPL"
// or "BRK.B". Case is normalized later in the service layer.
var tickerPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9.]{0,9}$`)

// RegisterCustomValidators installs custom binding rules on gin's validator
// engine. Must run once at startup, before any request binding.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("ticker", func(fl validator.FieldLevel) bool {
			return tickerPattern.MatchString(fl.Field().String())
		})
	}
}
