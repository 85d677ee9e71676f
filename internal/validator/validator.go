package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// Validator bundles struct validation with the business rule validator used
// by the services layer.
type Validator struct {
	validate *playground.Validate
	business *BusinessValidator
}

func New() *Validator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	return &Validator{
		validate: validate,
		business: NewBusinessValidator(validate),
	}
}

// Struct runs tag-based validation on any request struct.
func (v *Validator) Struct(s interface{}) ValidationErrors {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

func (v *Validator) GetBusinessValidator() *BusinessValidator {
	return v.business
}
