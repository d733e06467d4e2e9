package errors

import (
	stderrors "errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func (e *ErrorWithStatusCode) HTTPStatus() int {
	return e.StatusCode
}

// ClientError is implemented by every error kind that should reach the caller
// with its own message instead of a generic 500.
type ClientError interface {
	error
	HTTPStatus() int
}

// Validation reasons shared by every entity.
const (
	NotContainNeededProperty     = "NOT_CONTAIN_NEEDED_PROPERTY"
	NotMeetDataTypeSpecification = "NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// ValidationError reports a malformed payload. Code has the form ENTITY.REASON.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// AuthorizationError means the caller is authenticated but does not own the resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func (e *AuthorizationError) HTTPStatus() int {
	return http.StatusForbidden
}

// AuthenticationError means the credentials did not match.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func (e *AuthenticationError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// InvariantError covers state violations such as a revoked refresh token or a taken username.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return e.Message
}

func (e *InvariantError) HTTPStatus() int {
	return http.StatusBadRequest
}

// Is reports whether err (or anything it wraps) is of type T.
func Is[T error](err error) bool {
	var target T
	return stderrors.As(err, &target)
}

// StatusCode returns the transport status for err, 500 for unknown errors.
func StatusCode(err error) int {
	var ce ClientError
	if stderrors.As(err, &ce) {
		return ce.HTTPStatus()
	}
	return http.StatusInternalServerError
}
