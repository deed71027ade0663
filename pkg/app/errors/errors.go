// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryGeneralError The service failed in an unexpected way, e.g. the database rejected a statement
	// or the connection was lost. Details are logged, never returned to the caller.
	CategoryGeneralError Category = iota
	// CategoryDataError The client sends some invalid data in the request,
	// for example, malformed JSON or a value outside an allowed set.
	CategoryDataError
	// CategoryResourceNotFound The client is attempting to access a route that does not exist
	CategoryResourceNotFound
	// CategoryNotSupported The requested method is not supported on the route
	CategoryNotSupported
	// CategoryRateLimited The client exceeded its request budget
	CategoryRateLimited
)

func (c Category) String() string {
	switch c {
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryNotSupported:
		return "CategoryNotSupported"
	case CategoryRateLimited:
		return "CategoryRateLimited"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err should be treated as a server-side failure.
// Plain errors that never passed through a constructor count as internal.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category == CategoryGeneralError
	}
	return true
}

// InternalError returns an error with category GeneralError.
// the message provided is returned to the user, the err is only logged
func InternalError(err error, message string) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	if message == "" {
		message = "Internal Server Error"
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  message,
		Err:      err,
	}
}

// BadRequestError returns an error with category DataError
// the error message provided is returned to the user
// the error object provided is logged in logger
func BadRequestError(err error, message string) error {
	if err == nil {
		err = errors.New("bad request: " + message)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Message:  message,
		Err:      err,
	}
}

// ResourceNotFoundError returns an error with category ResourceNotFound
func ResourceNotFoundError(err error, message string) error {
	if err == nil {
		err = errors.New("resource not found: " + message)
	}
	return &ServiceError{
		Category: CategoryResourceNotFound,
		Message:  message,
		Err:      err,
	}
}

// NotSupportedError returns an error with category NotSupported
func NotSupportedError(err error, message string) error {
	if err == nil {
		err = errors.New("not supported: " + message)
	}
	return &ServiceError{
		Category: CategoryNotSupported,
		Message:  message,
		Err:      err,
	}
}

// RateLimitedError returns an error with category RateLimited
func RateLimitedError(err error, message string) error {
	if err == nil {
		err = errors.New("rate limited")
	}
	return &ServiceError{
		Category: CategoryRateLimited,
		Message:  message,
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryNotSupported:
		return http.StatusMethodNotAllowed
	case CategoryRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
