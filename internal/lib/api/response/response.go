package response

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const MsgValidationFailed = "Validation failed"

type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

func OK(msg string) Response {
	return Response{
		Success: true,
		Message: msg,
	}
}

func Error(msg string) Response {
	return Response{
		Success: false,
		Message: msg,
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	fieldErrs := make([]FieldError, 0, len(errs))

	for _, err := range errs {
		fieldErrs = append(fieldErrs, FieldError{
			Field: err.Field(),
			Msg:   fieldMessage(err),
		})
	}

	return Response{
		Success: false,
		Message: MsgValidationFailed,
		Errors:  fieldErrs,
	}
}

func fieldMessage(err validator.FieldError) string {
	field := err.Field()

	switch err.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is required", field)
	case "email":
		return fmt.Sprintf("field %s must be a valid email address", field)
	case "min":
		if isNumber(err.Kind()) {
			return fmt.Sprintf("field %s must be at least %s", field, err.Param())
		}
		return fmt.Sprintf("field %s must contain at least %s %s", field, err.Param(), unit(err.Kind()))
	case "max":
		if isNumber(err.Kind()) {
			return fmt.Sprintf("field %s must be at most %s", field, err.Param())
		}
		return fmt.Sprintf("field %s must contain at most %s %s", field, err.Param(), unit(err.Kind()))
	case "oneof":
		return fmt.Sprintf("field %s must be one of [%s]", field, strings.Join(strings.Fields(err.Param()), ", "))
	case "phone", "github", "linkedin", "interest", "url":
		return fmt.Sprintf("field %s is not a valid %s", field, err.ActualTag())
	default:
		return fmt.Sprintf("field %s is not valid", field)
	}
}

func unit(k reflect.Kind) string {
	switch k {
	case reflect.Slice, reflect.Array, reflect.Map:
		return "items"
	default:
		return "characters"
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
