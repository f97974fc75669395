package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ITINERARY_BACK-END/internal/models"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

// slotName accepts morning, afternoon or evening
var slotName validator.Func = func(fl validator.FieldLevel) bool {
	return models.SlotName(fl.Field().String()).Valid()
}

// clock accepts a 24-hour HH:MM time
var clock validator.Func = func(fl validator.FieldLevel) bool {
	return models.ValidClock(fl.Field().String())
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("timeslot", slotName)
	v.RegisterValidation("clock", clock)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSONRequest decodes and validates a JSON body. On failure it writes
// a 400 response and returns the error.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		msg := "Request body must be valid JSON"
		if errors.Is(err, io.EOF) {
			msg = "Request body is required"
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", msg)
		return err
	}
	if err := ValidateStruct(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return err
	}
	return nil
}

// ValidateStruct runs the validate tags of v and flattens failures into a
// single readable error
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "uuid":
		return field + " must be a UUID"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "timeslot":
		return field + " must be morning, afternoon, or evening"
	case "clock":
		return field + " must be HH:MM"
	case "datetime":
		return field + " must be YYYY-MM-DD"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
