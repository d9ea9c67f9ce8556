package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/signadot/go-pandoc/ast"
)

func TestFlags(t *testing.T) {
	old := Get()
	defer Set(old)

	Set(Flags{Parse: true, Query: true})
	if !Parse() || !Query() {
		t.Error("expected parse and query flags")
	}
	if Encode() || Walk() || Patch() {
		t.Error("unexpected flag set")
	}
}

func TestLogf(t *testing.T) {
	old := Logger()
	defer SetLogger(old)

	buf := bytes.NewBuffer(nil)
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logf("decoded %s with %d blocks", ast.Block(&ast.Para{Inlines: ast.Words("secret payload")}), 3)
	out := buf.String()
	if !strings.Contains(out, "decoded Para with 3 blocks") {
		t.Errorf("unexpected log output %q", out)
	}
	if strings.Contains(out, "secret") {
		t.Errorf("payload leaked into log output %q", out)
	}
}
