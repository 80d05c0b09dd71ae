package categorypkg

import (
	"github.com/go-playground/validator/v10"
)

// ValidKind validates whether the entry kind is supported.
var ValidKind validator.Func = func(fl validator.FieldLevel) bool {
	if k, ok := fl.Field().Interface().(string); ok {
		return IsSupportedKind(k)
	}

	return false
}

// ValidCategory validates whether the entry category is supported.
var ValidCategory validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return IsSupportedCategory(c)
	}

	return false
}
