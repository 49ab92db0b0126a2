package entity

import (
	"fmt"
	"sync"

	"ironmaiden/internal/constant"

	"github.com/go-playground/validator/v10"
)

// Event is one synthetic IMSI-catcher sighting. It is created once by the
// generator and never mutated.
type Event struct {
	Imsi      string `validate:"required,len=15,number"`
	Location  string `validate:"required,landmark"`
	Timestamp string `validate:"required,datetime=2006-01-02 15:04:05"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func eventValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("landmark", func(fl validator.FieldLevel) bool {
			return constant.IsLandmark(fl.Field().String())
		})
	})
	return validate
}

// Validate checks the event invariants: a 15 digit IMSI, a known landmark and
// a second-precision timestamp.
func (e Event) Validate() error {
	if err := eventValidator().Struct(e); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	return nil
}
