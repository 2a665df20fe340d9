package models

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

/*
RegisterWithValidator register with the validator this custom validation support

	@param v *validator.Validate - the validator to register against
	@return whether successful
*/
func RegisterWithValidator(v *validator.Validate) error {
	return v.RegisterValidation("care_category", validateCareCategoryType)
}

func validateCareCategoryType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	switch CareCategory(fl.Field().String()) {
	case CareCategoryMedication:
		fallthrough
	case CareCategoryMeal:
		fallthrough
	case CareCategoryToileting:
		fallthrough
	case CareCategoryMedicalVisit:
		fallthrough
	case CareCategoryBathing:
		fallthrough
	case CareCategoryVitalSigns:
		fallthrough
	case CareCategoryExercise:
		fallthrough
	case CareCategoryFreeMemo:
		return true
	}
	return false
}
