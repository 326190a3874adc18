package httpserver

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const intParsingMessage = "Input should be a valid integer, unable to parse string as an integer"

// FieldError describes one rejected input, located by where it came from
// ("query", "path" or "body") and its name.
type FieldError struct {
	Type  string                 `json:"type"`
	Loc   []string               `json:"loc"`
	Msg   string                 `json:"msg"`
	Input interface{}            `json:"input"`
	Ctx   map[string]interface{} `json:"ctx,omitempty"`
}

// ValidationError is rendered as a 422 response.
type ValidationError struct {
	Detail []FieldError `json:"detail"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Detail))
	for _, fe := range e.Detail {
		parts = append(parts, strings.Join(fe.Loc, ".")+": "+fe.Msg)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

type CustomValidator struct {
	validate *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(fieldName)
	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Detail: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Detail = append(out.Detail, newFieldError(fe))
	}
	return out
}

// fieldName names a field "<location>.<name>" from its binding tag.
func fieldName(fld reflect.StructField) string {
	if name := fld.Tag.Get("query"); name != "" {
		return "query." + name
	}
	if name := fld.Tag.Get("param"); name != "" {
		return "path." + name
	}
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		name = fld.Name
	}
	return "body." + name
}

func newFieldError(fe validator.FieldError) FieldError {
	out := FieldError{
		Type:  fe.Tag(),
		Loc:   strings.SplitN(fe.Field(), ".", 2),
		Input: fe.Value(),
	}

	limit := limitValue(fe.Param())
	switch fe.Tag() {
	case "min", "gte":
		out.Type = "greater_than_equal"
		out.Msg = "Input should be greater than or equal to " + fe.Param()
		out.Ctx = map[string]interface{}{"ge": limit}
	case "max", "lte":
		out.Type = "less_than_equal"
		out.Msg = "Input should be less than or equal to " + fe.Param()
		out.Ctx = map[string]interface{}{"le": limit}
	case "required":
		out.Type = "missing"
		out.Msg = "Field required"
	default:
		out.Msg = fmt.Sprintf("Input failed on %s validation", fe.Tag())
	}
	return out
}

func limitValue(param string) interface{} {
	if n, err := strconv.Atoi(param); err == nil {
		return n
	}
	return param
}

// bindingError turns echo binder failures into parse errors at location in.
func bindingError(in string, bindErrs []error) error {
	out := &ValidationError{}
	for _, err := range bindErrs {
		var be *echo.BindingError
		if !errors.As(err, &be) {
			return err
		}
		var input interface{}
		if len(be.Values) > 0 {
			input = be.Values[0]
		}
		out.Detail = append(out.Detail, FieldError{
			Type:  "int_parsing",
			Loc:   []string{in, be.Field},
			Msg:   intParsingMessage,
			Input: input,
		})
	}
	return out
}
