package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/pennywise/internal/apperr"
	"github.com/mmynk/pennywise/internal/auth"
	"github.com/mmynk/pennywise/internal/middleware"
	"github.com/mmynk/pennywise/pkg/api"
)

var errInternal = errors.New("internal error")

// connectCode maps a domain error code to its Connect code.
func connectCode(code apperr.Code) connect.Code {
	switch code {
	case apperr.CodeValidation:
		return connect.CodeInvalidArgument
	case apperr.CodeNotFound:
		return connect.CodeNotFound
	case apperr.CodeForbidden:
		return connect.CodePermissionDenied
	default:
		return connect.CodeInternal
	}
}

// toConnectError converts a domain error into a Connect error carrying a
// {code, details} detail. Internal causes are logged, not sent.
func toConnectError(ctx context.Context, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	appErr := &apperr.Error{}
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal("internal error", err)
	}

	var cause error
	if appErr.Code == apperr.CodeInternal {
		slog.ErrorContext(ctx, "Internal error", "message", appErr.Message, "error", appErr.Err)
		cause = errInternal
	} else {
		cause = errors.New(appErr.Message)
	}

	out := connect.NewError(connectCode(appErr.Code), cause)
	detail, detailErr := api.NewErrorDetail(string(appErr.Code), appErr.Details)
	if detailErr != nil {
		slog.WarnContext(ctx, "Failed to attach error detail", "error", detailErr)
		return out
	}
	out.AddDetail(detail)
	return out
}

// callerID returns the authenticated user or an Unauthenticated error.
func callerID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}
