package debug

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/signadot/go-pandoc/ast"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})))
}

// SetLogger directs debug output to l. A nil l restores nothing and is
// ignored.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	logger.Store(l)
}

// Logger returns the logger debug output goes to.
func Logger() *slog.Logger {
	return logger.Load()
}

// Logf formats msg with args and logs it at debug level. Tree nodes are
// rendered by kind only, generic JSON values as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		case ast.Block:
			args[i] = x.Kind().String()
		case ast.Inline:
			args[i] = x.Kind().String()
		case ast.MetaValue:
			args[i] = x.Kind().String()
		}
	}
	Logger().Debug(fmt.Sprintf(msg, args...))
}

// Log logs msg with structured attributes at debug level.
func Log(msg string, attrs ...any) {
	Logger().Debug(msg, attrs...)
}

// LogAny logs v as JSON.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		Logger().Debug(fmt.Sprintf("%v", v))
		return
	}
	Logger().Debug(string(d))
}
