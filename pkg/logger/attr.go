package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group returns a group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error returns an "error" attribute, or an empty attribute for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Cache(name string) slog.Attr {
	return slog.String("cache", name)
}

func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

func Workers(n int) slog.Attr {
	return slog.Int("workers", n)
}

func Ops(n uint64) slog.Attr {
	return slog.Uint64("ops", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Addr(addr string) slog.Attr {
	return slog.String("addr", addr)
}
