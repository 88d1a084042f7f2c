package logging

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/grovetools/hooks/theme"
	"github.com/sirupsen/logrus"
)

// TextFormatter renders entries as a single styled line per entry.
type TextFormatter struct {
	Config FormatConfig
}

// levelTag returns the bracketed level token, colored by severity. The
// whole token is styled so the literal stays contiguous on plain output.
func levelTag(level logrus.Level) string {
	var short string
	switch level {
	case logrus.WarnLevel:
		short = "WARN"
	default:
		short = strings.ToUpper(level.String())
	}
	tag := "[" + short + "]"

	t := theme.DefaultTheme
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return t.Error.Render(tag)
	case logrus.WarnLevel:
		return t.Warning.Render(tag)
	case logrus.InfoLevel:
		return t.Success.Render(tag)
	default:
		return t.Muted.Render(tag)
	}
}

// Format renders one log entry.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	if !f.Config.DisableTimestamp {
		b.WriteString(entry.Time.Format("2006-01-02 15:04:05"))
		b.WriteString(" ")
	}

	b.WriteString(levelTag(entry.Level))

	if !f.Config.DisableComponent {
		if component, ok := entry.Data["component"]; ok {
			b.WriteString(" [")
			b.WriteString(theme.DefaultTheme.Accent.Render(fmt.Sprintf("%v", component)))
			b.WriteString("]")
		}
	}

	if entry.HasCaller() {
		fmt.Fprintf(&b, " [%s:%d %s]",
			filepath.Base(entry.Caller.File),
			entry.Caller.Line,
			filepath.Base(entry.Caller.Function))
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	// Remaining fields in a stable order so lines diff cleanly.
	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		if key != "component" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteString(" ")
		b.WriteString(theme.DefaultTheme.Muted.Render(key + "="))
		b.WriteString(fmt.Sprintf("%v", entry.Data[key]))
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}
