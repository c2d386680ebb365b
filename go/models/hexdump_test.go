package models

import (
	"strings"
	"testing"
)

func TestHexDump(t *testing.T) {
	mem := []byte("\x7fELF\x02\x01\x01\x00hello, world!\n\x00")
	lines := HexDump(0x1000, mem, 16)
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	want := "0x00001000: 7F 45 4C 46 02 01 01 00 68 65 6C 6C 6F 2C 20 77  .ELF....hello, w"
	if lines[0] != want {
		t.Fatalf("line 0:\n got %q\nwant %q", lines[0], want)
	}
	want = "0x00001010: 6F 72 6C 64 21 0A 00" + strings.Repeat(" ", 48-20) + " orld!.."
	if lines[1] != want {
		t.Fatalf("line 1:\n got %q\nwant %q", lines[1], want)
	}
}

func TestHexDumpWidth(t *testing.T) {
	lines := HexDump(0, []byte("abcdefgh"), 4)
	if len(lines) != 2 || lines[1] != "0x00000004: 65 66 67 68  efgh" {
		t.Fatalf("got %q", lines)
	}
	if len(HexDump(0, []byte("abc"), 0)) != 1 {
		t.Fatal("width 0 should fall back to 16")
	}
	if HexDump(0, nil, 16) != nil {
		t.Fatal("empty input should produce no lines")
	}
}
