package loader

import (
	"encoding/binary"
)

// Fixture encoders. They write fields at hard-coded ELF offsets with
// encoding/binary so the decoders are checked against an independent layout.

func testOrder(data ElfData) binary.ByteOrder {
	if data == ElfDataMSB {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func testIdent(class ElfClass, data ElfData) ElfIdent {
	ident := ElfIdent{Class: class, Data: data, Version: 1}
	copy(ident.Magic[:], elfMagic)
	return ident
}

func encodeHeader(h *ElfHeader) []byte {
	order := testOrder(h.Ident.Data)
	var p []byte
	var off int
	if h.Ident.Class == ElfClass64 {
		p = make([]byte, 64)
	} else {
		p = make([]byte, 52)
	}
	copy(p, h.Ident.Bytes())
	order.PutUint16(p[0x10:], h.Type)
	order.PutUint16(p[0x12:], h.Machine)
	order.PutUint32(p[0x14:], h.Version)
	if h.Ident.Class == ElfClass64 {
		order.PutUint64(p[0x18:], h.Entry)
		order.PutUint64(p[0x20:], h.Phoff)
		order.PutUint64(p[0x28:], h.Shoff)
		order.PutUint32(p[0x30:], h.Flags)
		off = 0x34
	} else {
		order.PutUint32(p[0x18:], uint32(h.Entry))
		order.PutUint32(p[0x1c:], uint32(h.Phoff))
		order.PutUint32(p[0x20:], uint32(h.Shoff))
		order.PutUint32(p[0x24:], h.Flags)
		off = 0x28
	}
	for i, v := range []uint16{h.Ehsize, h.Phentsize, h.Phnum, h.Shentsize, h.Shnum, h.Shstrndx} {
		order.PutUint16(p[off+2*i:], v)
	}
	return p
}

func encodeSection(class ElfClass, order binary.ByteOrder, sh ElfSectionHeader) []byte {
	if class == ElfClass64 {
		p := make([]byte, 64)
		order.PutUint32(p[0x00:], sh.Name)
		order.PutUint32(p[0x04:], sh.Type)
		order.PutUint64(p[0x08:], sh.Flags)
		order.PutUint64(p[0x10:], sh.Addr)
		order.PutUint64(p[0x18:], sh.Offset)
		order.PutUint64(p[0x20:], sh.Size)
		order.PutUint32(p[0x28:], sh.Link)
		order.PutUint32(p[0x2c:], sh.Info)
		order.PutUint64(p[0x30:], sh.Addralign)
		order.PutUint64(p[0x38:], sh.Entsize)
		return p
	}
	p := make([]byte, 40)
	fields := []uint32{
		sh.Name, sh.Type, uint32(sh.Flags), uint32(sh.Addr), uint32(sh.Offset),
		uint32(sh.Size), sh.Link, sh.Info, uint32(sh.Addralign), uint32(sh.Entsize),
	}
	for i, v := range fields {
		order.PutUint32(p[4*i:], v)
	}
	return p
}

func encodeProgram(class ElfClass, order binary.ByteOrder, ph ElfProgramHeader) []byte {
	if class == ElfClass64 {
		p := make([]byte, 56)
		order.PutUint32(p[0x00:], ph.Type)
		order.PutUint32(p[0x04:], ph.Flags)
		order.PutUint64(p[0x08:], ph.Offset)
		order.PutUint64(p[0x10:], ph.Vaddr)
		order.PutUint64(p[0x18:], ph.Paddr)
		order.PutUint64(p[0x20:], ph.Filesz)
		order.PutUint64(p[0x28:], ph.Memsz)
		order.PutUint64(p[0x30:], ph.Align)
		return p
	}
	p := make([]byte, 32)
	fields := []uint32{
		ph.Type, uint32(ph.Offset), uint32(ph.Vaddr), uint32(ph.Paddr),
		uint32(ph.Filesz), uint32(ph.Memsz), ph.Flags, uint32(ph.Align),
	}
	for i, v := range fields {
		order.PutUint32(p[4*i:], v)
	}
	return p
}

func sampleHeader(class ElfClass, data ElfData) *ElfHeader {
	h := &ElfHeader{
		Ident:    testIdent(class, data),
		Type:     2,
		Machine:  0x3e,
		Version:  1,
		Entry:    0x401000,
		Flags:    0x5000000,
		Shstrndx: 0,
	}
	if class == ElfClass64 {
		h.Ehsize = 64
		h.Phentsize = 56
		h.Shentsize = 64
	} else {
		h.Machine = 3
		h.Entry = 0x8048000
		h.Ehsize = 52
		h.Phentsize = 32
		h.Shentsize = 40
	}
	return h
}

// buildElf lays out header, program headers, then section headers and
// points the header at them.
func buildElf(h *ElfHeader, progs []ElfProgramHeader, sections []ElfSectionHeader) []byte {
	order := testOrder(h.Ident.Data)
	hdr := *h
	off := uint64(hdr.Ehsize)
	if len(progs) > 0 {
		hdr.Phoff = off
		hdr.Phnum = uint16(len(progs))
		off += uint64(len(progs)) * uint64(hdr.Phentsize)
	}
	if len(sections) > 0 {
		hdr.Shoff = off
		hdr.Shnum = uint16(len(sections))
	}
	p := encodeHeader(&hdr)
	for _, ph := range progs {
		p = append(p, encodeProgram(hdr.Ident.Class, order, ph)...)
	}
	for _, sh := range sections {
		p = append(p, encodeSection(hdr.Ident.Class, order, sh)...)
	}
	*h = hdr
	return p
}

func sampleSections() []ElfSectionHeader {
	return []ElfSectionHeader{
		{},
		{Name: 1, Type: SHT_PROGBITS, Flags: SHF_ALLOC | SHF_EXECINSTR, Addr: 0x401000, Offset: 0x1000, Size: 0x234, Addralign: 16},
		{Name: 7, Type: SHT_STRTAB, Offset: 0x2000, Size: 0x11, Addralign: 1},
		{Name: 17, Type: SHT_SYMTAB, Offset: 0x2100, Size: 0x60, Link: 2, Info: 3, Addralign: 8, Entsize: 24},
	}
}

func samplePrograms() []ElfProgramHeader {
	return []ElfProgramHeader{
		{Type: PT_LOAD, Flags: PF_R | PF_X, Offset: 0, Vaddr: 0x400000, Paddr: 0x400000, Filesz: 0x1234, Memsz: 0x1234, Align: 0x1000},
		{Type: PT_LOAD, Flags: PF_R | PF_W, Offset: 0x2000, Vaddr: 0x602000, Paddr: 0x602000, Filesz: 0x100, Memsz: 0x180, Align: 0x1000},
	}
}
