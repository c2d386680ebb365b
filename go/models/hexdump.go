package models

import (
	"fmt"
	"strings"
)

func printable(p []byte) string {
	o := make([]byte, len(p))
	for i, c := range p {
		if c >= 0x20 && c <= 0x7e {
			o[i] = c
		} else {
			o[i] = '.'
		}
	}
	return string(o)
}

// HexDump renders mem as lines of width bytes:
//
//	0x00000010: 7F 45 4C 46 02 01 01 00 ...  .ELF....
//
// Offsets start at base. A width below 1 falls back to 16.
func HexDump(base uint64, mem []byte, width int) []string {
	if width < 1 {
		width = 16
	}
	hexCol := width * 3
	var out []string
	var hexPart strings.Builder
	for i := 0; i < len(mem); i += width {
		end := i + width
		if end > len(mem) {
			end = len(mem)
		}
		chunk := mem[i:end]
		hexPart.Reset()
		for j, c := range chunk {
			if j > 0 {
				hexPart.WriteByte(' ')
			}
			fmt.Fprintf(&hexPart, "%02X", c)
		}
		out = append(out, fmt.Sprintf("0x%08X: %-*s %s", base+uint64(i), hexCol, hexPart.String(), printable(chunk)))
	}
	return out
}
