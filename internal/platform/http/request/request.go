// Package request binds and validates incoming HTTP requests for the handlers.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"movie_backend/internal/shared/pagination"
)

// ErrInvalidID is returned when the :id path parameter is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

func init() {
	// バリデーションエラーのフィールド名をJSONキーに合わせる
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		// bcryptの入力上限はバイト数なので、文字数を数えるmaxとは別に検証する
		_ = v.RegisterValidation("maxbytes", maxBytes)
	}
}

// maxBytes reports whether a string field is at most param bytes long.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// ValidationError is a client input error carrying a single human readable message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// BindJSON decodes the request body into obj and validates its binding tags.
// Any failure is returned as a *ValidationError describing the first violated rule.
func BindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return &ValidationError{Message: Message(err)}
	}
	return nil
}

// Message renders a binding error as the message of its first violated rule.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldMessage(verrs[0])
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%s must be %s", typeErr.Field, kindName(typeErr.Type))
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return "invalid JSON body"
	}
	if errors.Is(err, io.EOF) {
		return "request body is required"
	}
	return "invalid request"
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_without":
		return fmt.Sprintf("%s is required when %s is absent", field, lowerFirst(fe.Param()))
	case "email":
		return field + " must be a valid email"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes long", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a valid " + t.String()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ParseID reads the :id path parameter as a positive integer.
func ParseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// ParsePagination reads the page and limit query parameters.
// It returns nil when either parameter is absent, meaning the caller wants the full list.
func ParsePagination(c *gin.Context) (*pagination.Params, error) {
	pageStr, limitStr := c.Query("page"), c.Query("limit")
	if pageStr == "" || limitStr == "" {
		return nil, nil
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return nil, &ValidationError{Message: "page must be a positive integer"}
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		return nil, &ValidationError{Message: "limit must be a positive integer"}
	}
	return &pagination.Params{Page: page, Limit: limit}, nil
}
