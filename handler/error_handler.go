package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/payloadkit/pkg/logger"
	"github.com/dmitrymomot/payloadkit/pkg/payload"
)

// ErrorHandler renders errors that are not validation rejections.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// StatusOf maps an error to the HTTP status the default handler uses.
func StatusOf(err error) int {
	var perr *payload.Error
	switch {
	case errors.As(err, &perr):
		return http.StatusBadRequest
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler returns the default ErrorHandler.
// Client errors are logged at Warn, server errors at Error. Server error
// details never reach the client.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request, err error) {
		status := StatusOf(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Error(err),
			logger.Status(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		message := "internal server error"
		var perr *payload.Error
		switch {
		case errors.As(err, &perr):
			message = perr.Error()
		case errors.Is(err, ErrBodyTooLarge):
			message = ErrBodyTooLarge.Error()
		}

		if rerr := JSONError(status, message).Render(w, r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(rerr))
		}
	}
}
