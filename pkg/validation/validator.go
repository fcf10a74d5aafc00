package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var initOnce sync.Once

// Init makes the validator behind Gin's binding report JSON field names.
func Init() {
	initOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return ""
				}
				return name
			})
		}
	})
}

// ErrTrailingData is returned by BindJSON when the body holds more than
// one JSON value.
var ErrTrailingData = errors.New("unexpected data after json body")

// BindJSON decodes exactly one JSON value from the request body into obj
// and validates its binding tags. An empty body yields io.EOF.
func BindJSON(c *gin.Context, obj any) error {
	if c.Request == nil || c.Request.Body == nil {
		return io.EOF
	}
	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(obj); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return binding.Validator.ValidateStruct(obj)
}

// FieldError is one entry of a 422 response's detail list.
// Loc is the location path, e.g. ["body", "username"] or ["path", "id"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ToDetails converts validation/binding errors into detail items.
func ToDetails(err error) []FieldError {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTrailingData) {
		return []FieldError{{Loc: []string{"body"}, Msg: "unexpected data after json body", Type: "invalid_json"}}
	}

	if errors.Is(err, io.EOF) {
		return []FieldError{{Loc: []string{"body"}, Msg: "field required", Type: "missing"}}
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		loc := []string{"body"}
		if ute.Field != "" {
			loc = append(loc, strings.Split(ute.Field, ".")...)
		}
		return []FieldError{{Loc: loc, Msg: "must be of type " + jsonKind(ute.Type), Type: "type_error"}}
	}

	var se *json.SyntaxError
	if errors.As(err, &se) {
		return []FieldError{{Loc: []string{"body"}, Msg: "invalid json", Type: "invalid_json"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{
				Loc:  []string{"body", fe.Field()},
				Msg:  formatFieldError(fe),
				Type: fe.Tag(),
			})
		}
		return out
	}

	// Fallback
	return []FieldError{{Loc: []string{"body"}, Msg: "invalid payload", Type: "value_error"}}
}

// PathParam builds the detail for a malformed path parameter.
func PathParam(name, msg string) []FieldError {
	return []FieldError{{Loc: []string{"path", name}, Msg: msg, Type: "type_error"}}
}

func formatFieldError(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "is required"
	}
	if param := fe.Param(); param != "" {
		return fmt.Sprintf("validation failed for '%s' with parameter '%s'", fe.Tag(), param)
	}
	return fmt.Sprintf("validation failed for '%s'", fe.Tag())
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	switch {
	case t.Kind() == reflect.String:
		return "string"
	case isNumberKind(t.Kind()):
		return "number"
	case t.Kind() == reflect.Bool:
		return "boolean"
	case t.Kind() == reflect.Struct, t.Kind() == reflect.Map:
		return "object"
	case t.Kind() == reflect.Slice, t.Kind() == reflect.Array:
		return "array"
	default:
		return t.String()
	}
}

// Helper functions
func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
