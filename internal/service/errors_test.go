package serviceerrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	serviceerrors "storefront/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestStatusError_Is(t *testing.T) {
	notFound := fmt.Errorf("op: %w", &serviceerrors.StatusError{Code: http.StatusNotFound})
	assert.ErrorIs(t, notFound, serviceerrors.ErrUnavailable)
	assert.ErrorIs(t, notFound, serviceerrors.ErrNotFound)
	assert.NotErrorIs(t, notFound, serviceerrors.ErrUnauthorized)

	forbidden := &serviceerrors.StatusError{Code: http.StatusForbidden, Body: "nope"}
	assert.ErrorIs(t, forbidden, serviceerrors.ErrUnauthorized)
	assert.Equal(t, "unexpected status 403: nope", forbidden.Error())
}

func TestBusinessError(t *testing.T) {
	cause := &serviceerrors.StatusError{Code: http.StatusInternalServerError}
	err := fmt.Errorf("op: %w", serviceerrors.NewBusinessError("Failed to delete category", cause))

	var be *serviceerrors.BusinessError
	assert.True(t, errors.As(err, &be))
	assert.Equal(t, "Failed to delete category", be.Message)
	assert.ErrorIs(t, err, serviceerrors.ErrEmptyResult)
	assert.ErrorIs(t, err, serviceerrors.ErrUnavailable)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want serviceerrors.Kind
	}{
		{"Nil", nil, serviceerrors.KindNone},
		{"Status", &serviceerrors.StatusError{Code: 500}, serviceerrors.KindUnavailable},
		{"Canceled", serviceerrors.ErrContextCanceled, serviceerrors.KindUnavailable},
		{"Business", serviceerrors.NewBusinessError("x", &serviceerrors.StatusError{Code: 500}), serviceerrors.KindBusiness},
		{"Invalid", fmt.Errorf("op: %w", serviceerrors.ErrInvalidInput), serviceerrors.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serviceerrors.KindOf(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Failed to create product", serviceerrors.UserMessage(serviceerrors.NewBusinessError("Failed to create product", nil)))
	assert.Empty(t, serviceerrors.UserMessage(serviceerrors.ErrUnavailable))
}
