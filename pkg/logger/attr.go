package logger

import (
	"log/slog"
	"time"
)

// Error logs err under "error". Nil errors produce an empty attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names what happened.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// RequestID records the correlation id. Empty ids produce an empty attribute.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Resource records the resource a payload was sent to.
func Resource(name string) slog.Attr {
	return slog.String("resource", name)
}

// Kind records the validation error kind.
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Fields records the field names involved in a validation failure.
func Fields(names []string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", names)
}

// Status records an HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Duration records elapsed time.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
