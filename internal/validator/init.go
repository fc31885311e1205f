package validator

import (
	"ctchen222/console-exercises/internal/game"

	"github.com/go-playground/validator/v10"
)

// CoordinateTag validates an int lying on the board: `validate:"coordinate"`.
const CoordinateTag = "coordinate"

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation(CoordinateTag, isCoordinate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

func isCoordinate(fl validator.FieldLevel) bool {
	v := fl.Field().Int()
	return v >= game.BorderMin && v <= game.BorderMax
}
