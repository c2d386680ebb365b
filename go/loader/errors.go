package loader

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownFormat          = errors.New("unknown or unsupported binary format")
	ErrInvalidMagic           = errors.New("invalid ELF magic number")
	ErrUnsupportedClass       = errors.New("unsupported ELF class")
	ErrUnsupportedEndianness  = errors.New("unsupported ELF data encoding")
	ErrTruncatedHeader        = errors.New("truncated ELF header")
	ErrTruncatedSectionHeader = errors.New("truncated ELF section header")
	ErrTruncatedProgramHeader = errors.New("truncated ELF program header")
)

type UnsupportedClassError struct {
	Class uint8
}

func (e *UnsupportedClassError) Error() string {
	return fmt.Sprintf("%s: EI_CLASS %#x", ErrUnsupportedClass, e.Class)
}

func (e *UnsupportedClassError) Is(target error) bool { return target == ErrUnsupportedClass }

type UnsupportedEndiannessError struct {
	Data uint8
}

func (e *UnsupportedEndiannessError) Error() string {
	return fmt.Sprintf("%s: EI_DATA %#x", ErrUnsupportedEndianness, e.Data)
}

func (e *UnsupportedEndiannessError) Is(target error) bool { return target == ErrUnsupportedEndianness }

// TruncatedHeaderError reports a buffer shorter than the header its ident
// class calls for. Streaming callers may retry once Expected bytes are available.
type TruncatedHeaderError struct {
	Expected int
	Actual   int
}

func (e *TruncatedHeaderError) Error() string {
	return fmt.Sprintf("%s: expected %d bytes, got %d", ErrTruncatedHeader, e.Expected, e.Actual)
}

func (e *TruncatedHeaderError) Is(target error) bool { return target == ErrTruncatedHeader }

// TruncatedSectionHeaderError names the first section-table entry that does
// not fit inside the buffer.
type TruncatedSectionHeaderError struct {
	Index  int
	Offset uint64
	Len    int
}

func (e *TruncatedSectionHeaderError) Error() string {
	return fmt.Sprintf("%s %d at offset %#x (buffer is %d bytes)", ErrTruncatedSectionHeader, e.Index, e.Offset, e.Len)
}

func (e *TruncatedSectionHeaderError) Is(target error) bool { return target == ErrTruncatedSectionHeader }

type TruncatedProgramHeaderError struct {
	Index  int
	Offset uint64
	Len    int
}

func (e *TruncatedProgramHeaderError) Error() string {
	return fmt.Sprintf("%s %d at offset %#x (buffer is %d bytes)", ErrTruncatedProgramHeader, e.Index, e.Offset, e.Len)
}

func (e *TruncatedProgramHeaderError) Is(target error) bool { return target == ErrTruncatedProgramHeader }
