package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Input records a checked value under the key "input".
func Input(value string) slog.Attr {
	return slog.String("input", value)
}

// Rules groups the number validator limits under the key "rules".
func Rules(precision, scale int, onlyPositive bool) slog.Attr {
	return slog.Group("rules",
		slog.Int("precision", precision),
		slog.Int("scale", scale),
		slog.Bool("only_positive", onlyPositive),
	)
}

// RunID records the run identifier under the key "run_id".
// If id is empty, it returns an empty Attr.
func RunID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("run_id", id)
}
