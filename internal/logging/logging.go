// Package logging builds the JSON line logger shared by the HTTP access log
// and start-up messages.
package logging

import (
	"io"
	"log/slog"
	"time"
)

// New returns a slog.Logger writing one JSON object per line to w.
// The record time is emitted as "ts" in RFC3339Nano, converted to loc.
func New(w io.Writer, loc *time.Location) *slog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.String("ts", a.Value.Time().In(loc).Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}
