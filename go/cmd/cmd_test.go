package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sandlua/sandlua/go/loader"
	"github.com/sandlua/sandlua/go/models"
)

func TestPrintError(t *testing.T) {
	_, lerr := loader.DecodeElfHeader([]byte("\x7fELF\x02\x01\x01\x00\x00\x00\x00\x00\x00\x00\x00\x00"))
	if lerr == nil {
		t.Fatal("expected a truncated header error")
	}
	err := errors.WithMessage(lerr, "load failed")

	var buf bytes.Buffer
	c := NewSandluaCmd()
	c.Stderr = &buf
	c.Config = models.NewConfig()
	c.PrintError(err)
	if buf.String() != "Error: "+err.Error()+"\n" {
		t.Fatalf("got %q", buf.String())
	}

	buf.Reset()
	c.Config.Verbose = true
	c.PrintError(err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) < 2 {
		t.Fatalf("no stack printed: %q", buf.String())
	}
	if !strings.Contains(lines[1], "elf.go:") || !strings.HasSuffix(lines[1], "| decodeElf64Header()") {
		t.Fatalf("stack should start at the failing decoder: %q", lines[1])
	}
}
