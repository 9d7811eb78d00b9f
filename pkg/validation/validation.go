package validation

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"rental-marketplace/pkg/datemath"
)

var once sync.Once

// Register installs the custom tags on gin's binding validator. Safe to call repeatedly.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("isodate", isoDate)
	})
}

// isoDate accepts strings in datemath.DateLayout.
func isoDate(fl validator.FieldLevel) bool {
	_, err := datemath.ParseISO(fl.Field().String())
	return err == nil
}
