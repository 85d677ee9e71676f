package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// BusinessValidator handles business rule validation for the record services.
type BusinessValidator struct {
	validate *playground.Validate
}

func NewBusinessValidator(validate *playground.Validate) *BusinessValidator {
	return &BusinessValidator{validate: validate}
}

// Validate validates business rules for any request struct.
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	if err := bv.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

func (bv *BusinessValidator) ValidateAssignmentCreate(req *AssignmentCreateRequest) ValidationErrors {
	return bv.Validate(req)
}

func (bv *BusinessValidator) ValidateAssignmentUpdate(req *AssignmentUpdateRequest) ValidationErrors {
	return bv.Validate(req)
}

func (bv *BusinessValidator) ValidateActivityCreate(req *ActivityCreateRequest) ValidationErrors {
	return bv.Validate(req)
}

func (bv *BusinessValidator) ValidateActivityUpdate(req *ActivityUpdateRequest) ValidationErrors {
	return bv.Validate(req)
}

func (bv *BusinessValidator) ValidateCourseCreate(req *CourseCreateRequest) ValidationErrors {
	return bv.Validate(req)
}

func (bv *BusinessValidator) ValidateCourseUpdate(req *CourseUpdateRequest) ValidationErrors {
	return bv.Validate(req)
}

func (bv *BusinessValidator) ValidateRegister(req *RegisterRequest) ValidationErrors {
	return bv.Validate(req)
}
