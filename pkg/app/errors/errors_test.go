package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError_StatusCodes(t *testing.T) {
	cause := errors.New("boom")

	cases := []struct {
		err    error
		status int
		cat    Category
	}{
		{BadRequestError(cause, "bad"), http.StatusBadRequest, CategoryDataError},
		{InternalError(cause, "oops"), http.StatusInternalServerError, CategoryGeneralError},
		{ResourceNotFoundError(nil, "missing"), http.StatusNotFound, CategoryResourceNotFound},
		{NotSupportedError(nil, "nope"), http.StatusMethodNotAllowed, CategoryNotSupported},
		{RateLimitedError(nil, "slow down"), http.StatusTooManyRequests, CategoryRateLimited},
	}

	for _, tc := range cases {
		var svcErr *ServiceError
		if assert.True(t, errors.As(tc.err, &svcErr), tc.err) {
			assert.Equal(t, tc.status, svcErr.StatusCode())
			assert.True(t, Is(tc.err, tc.cat))
			assert.Equal(t, tc.cat.String(), svcErr.Category.String())
		}
	}
}

func TestServiceError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("add points: %w", InternalError(cause, "Error updating points in database."))

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsInternalError(err))
	assert.Equal(t, "add points: connection refused", err.Error())

	var svcErr *ServiceError
	assert.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "Error updating points in database.", svcErr.Message)
}

func TestIsInternalError(t *testing.T) {
	assert.True(t, IsInternalError(errors.New("plain")))
	assert.False(t, IsInternalError(BadRequestError(nil, "bad")))
	assert.True(t, IsInternalError(InternalError(nil, "")))
	assert.False(t, Is(errors.New("plain"), CategoryDataError))
}
