package loader

import (
	"github.com/pkg/errors"
)

const (
	elf32SectionSize = 40
	elf64SectionSize = 64
)

// Section types and flags used when rendering tables.
const (
	SHT_NULL     = 0
	SHT_PROGBITS = 1
	SHT_SYMTAB   = 2
	SHT_STRTAB   = 3
	SHT_RELA     = 4
	SHT_HASH     = 5
	SHT_DYNAMIC  = 6
	SHT_NOTE     = 7
	SHT_NOBITS   = 8
	SHT_REL      = 9
	SHT_DYNSYM   = 11

	SHF_WRITE     = 0x1
	SHF_ALLOC     = 0x2
	SHF_EXECINSTR = 0x4
)

type ElfSectionHeader struct {
	Name      uint32 // offset into the section name string table
	Type      uint32
	Flags     uint64
	Addr      uint64
	Offset    uint64
	Size      uint64
	Link      uint32
	Info      uint32
	Addralign uint64
	Entsize   uint64
}

type elf32Section struct {
	Name      uint32 // 0x00
	Type      uint32 // 0x04
	Flags     uint32 // 0x08
	Addr      uint32 // 0x0c
	Offset    uint32 // 0x10
	Size      uint32 // 0x14
	Link      uint32 // 0x18
	Info      uint32 // 0x1c
	Addralign uint32 // 0x20
	Entsize   uint32 // 0x24
}

type elf64Section struct {
	Name      uint32 // 0x00
	Type      uint32 // 0x04
	Flags     uint64 // 0x08
	Addr      uint64 // 0x10
	Offset    uint64 // 0x18
	Size      uint64 // 0x20
	Link      uint32 // 0x28
	Info      uint32 // 0x2c
	Addralign uint64 // 0x30
	Entsize   uint64 // 0x38
}

func sectionEntrySize(class ElfClass) uint64 {
	if class == ElfClass64 {
		return elf64SectionSize
	}
	return elf32SectionSize
}

// tableEntryFits reports whether entry i of a table at off with the given
// stride holds a full size-byte record inside a buffer of length n.
func tableEntryFits(off, stride, size uint64, i, n int) (uint64, bool) {
	length := uint64(n)
	start := off + uint64(i)*stride
	if start < off {
		return off, false
	}
	if stride < size || start > length || length-start < size {
		return start, false
	}
	return start, true
}

// DecodeElfSections walks the section header table described by h. A missing
// table (Shoff or Shnum zero) decodes to an empty slice. Any entry falling
// outside p fails the whole table.
func DecodeElfSections(p []byte, h *ElfHeader) ([]ElfSectionHeader, error) {
	if h.Shoff == 0 || h.Shnum == 0 {
		return []ElfSectionHeader{}, nil
	}
	order := h.ByteOrder()
	size := sectionEntrySize(h.Ident.Class)
	sections := make([]ElfSectionHeader, 0, h.Shnum)
	for i := 0; i < int(h.Shnum); i++ {
		start, ok := tableEntryFits(h.Shoff, uint64(h.Shentsize), size, i, len(p))
		if !ok {
			return nil, errors.WithStack(&TruncatedSectionHeaderError{Index: i, Offset: start, Len: len(p)})
		}
		var sh ElfSectionHeader
		if h.Ident.Class == ElfClass64 {
			var raw elf64Section
			if err := unpackAt(p, &raw, start, order); err != nil {
				return nil, err
			}
			sh = ElfSectionHeader(raw)
		} else {
			var raw elf32Section
			if err := unpackAt(p, &raw, start, order); err != nil {
				return nil, err
			}
			sh = ElfSectionHeader{
				Name:      raw.Name,
				Type:      raw.Type,
				Flags:     uint64(raw.Flags),
				Addr:      uint64(raw.Addr),
				Offset:    uint64(raw.Offset),
				Size:      uint64(raw.Size),
				Link:      raw.Link,
				Info:      raw.Info,
				Addralign: uint64(raw.Addralign),
				Entsize:   uint64(raw.Entsize),
			}
		}
		sections = append(sections, sh)
	}
	return sections, nil
}
