package logging

import (
	"log/slog"
	"math"
)

func Path(path string) slog.Attr { return slog.String("path", path) }

// Seconds records a playing time rounded to the millisecond.
func Seconds(value float64) slog.Attr {
	return slog.Float64("seconds", math.Round(value*1000)/1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}
