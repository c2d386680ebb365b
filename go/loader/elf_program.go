package loader

import (
	"github.com/pkg/errors"
)

const (
	elf32ProgramSize = 32
	elf64ProgramSize = 56
)

const (
	PT_NULL    = 0
	PT_LOAD    = 1
	PT_DYNAMIC = 2
	PT_INTERP  = 3
	PT_NOTE    = 4
	PT_PHDR    = 6

	PF_X = 0x1
	PF_W = 0x2
	PF_R = 0x4
)

type ElfProgramHeader struct {
	Type   uint32
	Flags  uint32
	Offset uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Align  uint64
}

// the 32-bit layout keeps p_flags after p_memsz
type elf32Program struct {
	Type   uint32 // 0x00
	Offset uint32 // 0x04
	Vaddr  uint32 // 0x08
	Paddr  uint32 // 0x0c
	Filesz uint32 // 0x10
	Memsz  uint32 // 0x14
	Flags  uint32 // 0x18
	Align  uint32 // 0x1c
}

type elf64Program struct {
	Type   uint32 // 0x00
	Flags  uint32 // 0x04
	Offset uint64 // 0x08
	Vaddr  uint64 // 0x10
	Paddr  uint64 // 0x18
	Filesz uint64 // 0x20
	Memsz  uint64 // 0x28
	Align  uint64 // 0x30
}

func programEntrySize(class ElfClass) uint64 {
	if class == ElfClass64 {
		return elf64ProgramSize
	}
	return elf32ProgramSize
}

// DecodeElfPrograms walks the program header table with the same rules as
// DecodeElfSections.
func DecodeElfPrograms(p []byte, h *ElfHeader) ([]ElfProgramHeader, error) {
	if h.Phoff == 0 || h.Phnum == 0 {
		return []ElfProgramHeader{}, nil
	}
	order := h.ByteOrder()
	size := programEntrySize(h.Ident.Class)
	progs := make([]ElfProgramHeader, 0, h.Phnum)
	for i := 0; i < int(h.Phnum); i++ {
		start, ok := tableEntryFits(h.Phoff, uint64(h.Phentsize), size, i, len(p))
		if !ok {
			return nil, errors.WithStack(&TruncatedProgramHeaderError{Index: i, Offset: start, Len: len(p)})
		}
		var ph ElfProgramHeader
		if h.Ident.Class == ElfClass64 {
			var raw elf64Program
			if err := unpackAt(p, &raw, start, order); err != nil {
				return nil, err
			}
			ph = ElfProgramHeader(raw)
		} else {
			var raw elf32Program
			if err := unpackAt(p, &raw, start, order); err != nil {
				return nil, err
			}
			ph = ElfProgramHeader{
				Type:   raw.Type,
				Flags:  raw.Flags,
				Offset: uint64(raw.Offset),
				Vaddr:  uint64(raw.Vaddr),
				Paddr:  uint64(raw.Paddr),
				Filesz: uint64(raw.Filesz),
				Memsz:  uint64(raw.Memsz),
				Align:  uint64(raw.Align),
			}
		}
		progs = append(progs, ph)
	}
	return progs, nil
}
