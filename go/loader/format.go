package loader

import (
	"bytes"
	"io"
)

type ContainerFormat int

const (
	FormatUnknown ContainerFormat = iota
	FormatElf
	FormatPe
	FormatMachO
)

func (f ContainerFormat) String() string {
	switch f {
	case FormatElf:
		return "elf"
	case FormatPe:
		return "pe"
	case FormatMachO:
		return "macho"
	default:
		return "unknown"
	}
}

var elfMagic = []byte{0x7f, 0x45, 0x4c, 0x46}

// "MZ", the DOS stub every PE image starts with
var peMagic = []byte{0x4d, 0x5a}

var machoMagics = [][]byte{
	{0xfe, 0xed, 0xfa, 0xce},
	{0xce, 0xfa, 0xed, 0xfe},
	{0xfe, 0xed, 0xfa, 0xcf},
	{0xcf, 0xfa, 0xed, 0xfe},
}

func matchElf(magic []byte) bool {
	return len(magic) == 4 && bytes.Equal(magic, elfMagic)
}

func matchPe(magic []byte) bool {
	return len(magic) == 4 && bytes.HasPrefix(magic, peMagic)
}

func matchMachO(magic []byte) bool {
	if len(magic) != 4 {
		return false
	}
	for _, check := range machoMagics {
		if bytes.Equal(magic, check) {
			return true
		}
	}
	return false
}

func MatchElf(r io.ReaderAt) bool {
	return matchElf(getMagic(r))
}

func MatchPe(r io.ReaderAt) bool {
	return matchPe(getMagic(r))
}

func MatchMachO(r io.ReaderAt) bool {
	return matchMachO(getMagic(r))
}

// Classify identifies the container format from the first four bytes of p.
// Inputs shorter than four bytes are always FormatUnknown.
func Classify(p []byte) ContainerFormat {
	if len(p) < 4 {
		return FormatUnknown
	}
	return classifyMagic(p[:4])
}

// ClassifyReader is Classify for callers holding an io.ReaderAt.
func ClassifyReader(r io.ReaderAt) ContainerFormat {
	return classifyMagic(getMagic(r))
}

func classifyMagic(magic []byte) ContainerFormat {
	switch {
	case matchElf(magic):
		return FormatElf
	case matchPe(magic):
		return FormatPe
	case matchMachO(magic):
		return FormatMachO
	default:
		return FormatUnknown
	}
}
