package pgerr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeConflict       = "CONFLICT"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a referenced resource does not exist.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrConflict is returned when a write would duplicate an existing resource.
	ErrConflict = New(fiber.StatusConflict, CodeConflict, "resource already exists with given parameters")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type PlannerError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *PlannerError {
	return &PlannerError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e PlannerError) Msg(format string, parts ...interface{}) *PlannerError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e PlannerError) WithExtras(extras Extras) *PlannerError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *PlannerError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *PlannerError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
