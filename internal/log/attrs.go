package log

import "log/slog"

func StepID(id string) slog.Attr {
	return slog.String("step_id", id)
}

func ConnID(id string) slog.Attr {
	return slog.String("conn_id", id)
}

func Outcome[T ~string](outcome T) slog.Attr {
	return slog.String("outcome", string(outcome))
}

func Error(err error) slog.Attr {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return slog.String("error", msg)
}

// Preview truncates long values such as base64 payloads to n bytes
func Preview(key, value string, n int) slog.Attr {
	if len(value) > n {
		value = value[:n] + "..."
	}
	return slog.String(key, value)
}
