package validation_test

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"rental-marketplace/pkg/validation"
)

type dateReq struct {
	Start string `binding:"required,isodate"`
	End   string `binding:"omitempty,isodate"`
}

func TestISODate(t *testing.T) {
	validation.Register()
	validation.Register()

	v := binding.Validator.Engine().(*validator.Validate)
	tests := []struct {
		name  string
		req   dateReq
		valid bool
	}{
		{"iso", dateReq{Start: "2024-03-01"}, true},
		{"both", dateReq{Start: "2024-03-01", End: "2024-03-05"}, true},
		{"slashes", dateReq{Start: "01/03/2024"}, false},
		{"impossible day", dateReq{Start: "2024-02-30"}, false},
		{"bad optional", dateReq{Start: "2024-03-01", End: "tomorrow"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if (err == nil) != tt.valid {
				t.Errorf("valid = %v, err = %v", tt.valid, err)
			}
		})
	}
}
