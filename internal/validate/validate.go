package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/studyflow/studyflow/internal/timeutil"
)

// SessionInput is the form-layer shape of a session write. Range ordering
// (start before end) is checked here so the planner only ever sees it as a
// hardening backstop.
type SessionInput struct {
	CourseName string `validate:"required"`
	Day        string `validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime  string `validate:"required,hhmm"`
	EndTime    string `validate:"required,hhmm"`
	Type       string `validate:"required,oneof=lecture personal revision"`
	Intensity  string `validate:"required,oneof=light medium heavy"`
	Notes      string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag name.
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return timeutil.ValidTime(fl.Field().String())
	})
	return v
}

// Session validates a session input and returns one message per failing
// field, suitable for direct display.
func Session(input SessionInput) []string {
	var msgs []string

	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors, ok := err.(validator.ValidationErrors); ok {
			verrs = errors
		}
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		if len(verrs) == 0 {
			msgs = append(msgs, err.Error())
		}
	}

	// Cross-field check only when both times parse
	if timeutil.ValidTime(input.StartTime) && timeutil.ValidTime(input.EndTime) {
		start, _ := timeutil.TimeToMinutes(input.StartTime)
		end, _ := timeutil.TimeToMinutes(input.EndTime)
		if start >= end {
			msgs = append(msgs, "end time must be after start time")
		}
	}

	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "hhmm":
		return fmt.Sprintf("%s must be a valid HH:MM time", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func fieldName(structField string) string {
	switch structField {
	case "CourseName":
		return "course name"
	case "StartTime":
		return "start time"
	case "EndTime":
		return "end time"
	default:
		return strings.ToLower(structField)
	}
}
