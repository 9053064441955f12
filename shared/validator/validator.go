package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"lodging/shared/failure"
	"reflect"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

func registerDigitsValidation(field val.FieldLevel) bool {
	value := field.Field().String()

	length, err := strconv.Atoi(field.Param())
	if err != nil || len(value) != length {
		return false
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func registerIntRangeValidation(field val.FieldLevel) bool {
	bounds := strings.Fields(field.Param())
	if len(bounds) != 2 { //nolint:mnd
		return false
	}

	minValue, errMin := strconv.Atoi(bounds[0])
	maxValue, errMax := strconv.Atoi(bounds[1])

	if errMin != nil || errMax != nil {
		return false
	}

	value, err := strconv.Atoi(strings.TrimSpace(field.Field().String()))
	if err != nil {
		return false
	}

	return value >= minValue && value <= maxValue
}

// amounts are stored as NUMERIC(12,2).
var (
	moneyLimit  = decimal.New(1, 10) //nolint:mnd
	moneyPlaces = int32(2)
)

func registerMoneyValidation(field val.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(field.Field().String()))
	if err != nil {
		return false
	}

	return !amount.IsNegative() && amount.LessThan(moneyLimit) && amount.Equal(amount.Truncate(moneyPlaces))
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("digits", registerDigitsValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("intrange", registerIntRangeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("money", registerMoneyValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads JSON from r into data without validating it.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateAll validates data and returns one message per failing field, in declaration order.
func ValidateAll[T any](data *T) []string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	return messages(err)
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
