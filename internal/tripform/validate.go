package tripform

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/diones-souza/test-snaty/internal/datefmt"
)

// Field error messages shown next to each input.
const (
	msgNotNumber = "Deve ser um número"
	msgNegative  = "Deve ser maior ou igual a zero"
	msgBadDate   = "Data inválida"
)

// startInput is the validated shape of a START submit.
type startInput struct {
	StartOdometer string `json:"kmInicial" validate:"number,nonneg"`
	StartTime     string `json:"inicioDeslocamento" validate:"omitempty,date"`
	ConductorID   *int64 `json:"idCondutor" validate:"required,gte=0"`
	VehicleID     *int64 `json:"idVeiculo" validate:"required,gte=0"`
	ClientID      *int64 `json:"idCliente" validate:"required,gte=0"`
}

// closeInput is the validated shape of a CLOSE submit.
type closeInput struct {
	EndOdometer string `json:"kmFinal" validate:"number,nonneg"`
	EndTime     string `json:"fimDeslocamento" validate:"omitempty,date"`
}

// validate is shared; validator.Validate is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	mustRegister(v, "number", func(fl validator.FieldLevel) bool {
		_, err := parseNumber(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "nonneg", func(fl validator.FieldLevel) bool {
		n, err := parseNumber(fl.Field().String())
		return err == nil && n >= 0
	})
	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		_, err := datefmt.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("tripform: register " + tag + ": " + err.Error())
	}
}

// fieldErrors validates in and returns one message per failing field, keyed
// by wire name. Every field is checked; only its first failure is kept.
func fieldErrors(in any) map[string]string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe.Tag())
	}
	return out
}

func message(tag string) string {
	switch tag {
	case "nonneg", "gte":
		return msgNegative
	case "date":
		return msgBadDate
	default:
		return msgNotNumber
	}
}

// errNotFinite rejects NaN and infinities, which ParseFloat accepts.
var errNotFinite = errors.New("not a finite number")

// parseNumber coerces draft text the way a numeric input does: surrounding
// blanks are ignored and an empty value is not a number.
func parseNumber(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errNotFinite
	}
	return n, nil
}
