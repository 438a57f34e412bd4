package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyFormat     = "format"
	KeyLocale     = "locale"
	KeyTheme      = "theme"
	KeyPreset     = "preset"
	KeyDocID      = "doc_id"
	KeyTarget     = "target"
	KeyPolicy     = "policy"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyRunID      = "run_id"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Format(f string) slog.Attr        { return slog.String(KeyFormat, f) }
func Locale(l string) slog.Attr        { return slog.String(KeyLocale, l) }
func Theme(name string) slog.Attr      { return slog.String(KeyTheme, name) }
func Preset(name string) slog.Attr     { return slog.String(KeyPreset, name) }
func DocID(id string) slog.Attr        { return slog.String(KeyDocID, id) }
func Target(t string) slog.Attr        { return slog.String(KeyTarget, t) }
func Policy(p string) slog.Attr        { return slog.String(KeyPolicy, p) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
