package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	templates = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"digits":   "{field} must be exactly {param} digits",
		"intrange": "{field} must be a whole number between {min} and {max}",
		"money":    "{field} must be a non-negative amount below 10000000000 with at most 2 decimals",
		"datetime": "{field} must be a date in the format {param}",
		"number":   "{field} must be a whole number",
	}
)

func render(valErr val.FieldError) string {
	tmpl := templates[valErr.Tag()]
	if tmpl == "" {
		return ""
	}

	msg := strings.ReplaceAll(tmpl, "{field}", valErr.Field())
	msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

	if bounds := strings.Fields(valErr.Param()); len(bounds) == 2 { //nolint:mnd
		msg = strings.ReplaceAll(msg, "{min}", bounds[0])
		msg = strings.ReplaceAll(msg, "{max}", bounds[1])
	}

	return msg
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if msg := render(valErr); msg != "" {
				return msg
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

func messages(err error) []string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []string{err.Error()}
	}

	result := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		msg := render(valErr)
		if msg == "" {
			msg = valErr.Error()
		}

		result = append(result, msg)
	}

	return result
}
