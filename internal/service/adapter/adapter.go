// Package adapter holds what every service adapter does around its one HTTP call.
package adapter

import (
	"errors"
	"fmt"
	"log/slog"

	serviceerrors "storefront/internal/service"
	"storefront/pkg/lib/logger/sl"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks request parameters before anything is sent.
func Validate(op string, params any) error {
	if err := validate.Struct(params); err != nil {
		return fmt.Errorf("%s: %w: %w", op, serviceerrors.ErrInvalidInput, err)
	}
	return nil
}

// LogFailure logs an adapter failure; ended contexts are expected and only warned about.
func LogFailure(log *slog.Logger, msg string, err error) {
	switch {
	case errors.Is(err, serviceerrors.ErrContextCanceled):
		log.Warn("context canceled", sl.Err(err))
	case errors.Is(err, serviceerrors.ErrDeadlineExceeded):
		log.Warn("deadline exceeded", sl.Err(err))
	case errors.Is(err, serviceerrors.ErrNotFound):
		log.Warn(msg, sl.Err(err))
	default:
		log.Error(msg, sl.Err(err))
	}
}
