package shell

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sandlua/sandlua/go/loader"
)

// describe maps loader failures to the message shown to the user.
func describe(err error) string {
	var (
		class   *loader.UnsupportedClassError
		data    *loader.UnsupportedEndiannessError
		header  *loader.TruncatedHeaderError
		section *loader.TruncatedSectionHeaderError
		program *loader.TruncatedProgramHeaderError
	)
	switch {
	case errors.Is(err, loader.ErrUnknownFormat):
		return "Unknown or unsupported binary format."
	case errors.Is(err, loader.ErrInvalidMagic):
		return "Invalid ELF magic number."
	case errors.As(err, &class):
		return fmt.Sprintf("Unsupported ELF class %#x (expected 1 for 32-bit or 2 for 64-bit).", class.Class)
	case errors.As(err, &data):
		return fmt.Sprintf("Unknown ELF data encoding %#x.", data.Data)
	case errors.As(err, &header):
		return fmt.Sprintf("Invalid ELF header: not enough data (expected %d bytes, got %d).", header.Expected, header.Actual)
	case errors.As(err, &section):
		return fmt.Sprintf("Error parsing section header %d: entry at offset %#x runs past end of file (%d bytes).", section.Index, section.Offset, section.Len)
	case errors.As(err, &program):
		return fmt.Sprintf("Error parsing program header %d: entry at offset %#x runs past end of file (%d bytes).", program.Index, program.Offset, program.Len)
	default:
		return err.Error()
	}
}

// sectionName resolves sh.Name through the section name string table. It
// returns "" when the table or the name lies outside data.
func sectionName(data []byte, r *loader.LoadResult, sh loader.ElfSectionHeader) string {
	idx := int(r.Elf.Shstrndx)
	if idx == 0 || idx >= len(r.Sections) {
		return ""
	}
	strtab := r.Sections[idx]
	if strtab.Type != loader.SHT_STRTAB || strtab.Offset > uint64(len(data)) {
		return ""
	}
	end := strtab.Offset + strtab.Size
	if end > uint64(len(data)) || end < strtab.Offset {
		end = uint64(len(data))
	}
	table := data[strtab.Offset:end]
	if uint64(sh.Name) >= uint64(len(table)) {
		return ""
	}
	name := table[sh.Name:]
	if n := bytes.IndexByte(name, 0); n >= 0 {
		name = name[:n]
	}
	return string(name)
}

var elfTypeNames = map[uint16]string{
	0: "NONE",
	1: "REL",
	2: "EXEC",
	3: "DYN",
	4: "CORE",
}

var sectionTypeNames = map[uint32]string{
	loader.SHT_NULL:     "NULL",
	loader.SHT_PROGBITS: "PROGBITS",
	loader.SHT_SYMTAB:   "SYMTAB",
	loader.SHT_STRTAB:   "STRTAB",
	loader.SHT_RELA:     "RELA",
	loader.SHT_HASH:     "HASH",
	loader.SHT_DYNAMIC:  "DYNAMIC",
	loader.SHT_NOTE:     "NOTE",
	loader.SHT_NOBITS:   "NOBITS",
	loader.SHT_REL:      "REL",
	loader.SHT_DYNSYM:   "DYNSYM",
}

var programTypeNames = map[uint32]string{
	loader.PT_NULL:    "NULL",
	loader.PT_LOAD:    "LOAD",
	loader.PT_DYNAMIC: "DYNAMIC",
	loader.PT_INTERP:  "INTERP",
	loader.PT_NOTE:    "NOTE",
	loader.PT_PHDR:    "PHDR",
}

func typeName(names map[uint32]string, t uint32) string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%X", t)
}

func sectionFlags(flags uint64) string {
	var out []byte
	if flags&loader.SHF_WRITE != 0 {
		out = append(out, 'W')
	}
	if flags&loader.SHF_ALLOC != 0 {
		out = append(out, 'A')
	}
	if flags&loader.SHF_EXECINSTR != 0 {
		out = append(out, 'X')
	}
	return string(out)
}

func programFlags(flags uint32) string {
	out := []byte("---")
	if flags&loader.PF_R != 0 {
		out[0] = 'r'
	}
	if flags&loader.PF_W != 0 {
		out[1] = 'w'
	}
	if flags&loader.PF_X != 0 {
		out[2] = 'x'
	}
	return string(out)
}

func printElfHeader(c *Context, h *loader.ElfHeader) {
	c.Printf("%s\n", c.Color(fmt.Sprintf("--- ELF Header (%d-bit) ---", h.Bits()), "cyan+b"))
	order := "little-endian"
	if h.Ident.Data == loader.ElfDataMSB {
		order = "big-endian"
	}
	c.Printf("%-12s: %x (%s)\n", "e_ident", h.Ident.Bytes(), order)
	etype, ok := elfTypeNames[h.Type]
	if !ok {
		etype = "?"
	}
	c.Printf("%-12s: 0x%X (%s)\n", "e_type", h.Type, etype)
	rows := []struct {
		name string
		val  uint64
	}{
		{"e_machine", uint64(h.Machine)},
		{"e_version", uint64(h.Version)},
		{"e_entry", h.Entry},
		{"e_phoff", h.Phoff},
		{"e_shoff", h.Shoff},
		{"e_flags", uint64(h.Flags)},
		{"e_ehsize", uint64(h.Ehsize)},
		{"e_phentsize", uint64(h.Phentsize)},
		{"e_phnum", uint64(h.Phnum)},
		{"e_shentsize", uint64(h.Shentsize)},
		{"e_shnum", uint64(h.Shnum)},
		{"e_shstrndx", uint64(h.Shstrndx)},
	}
	for _, row := range rows {
		c.Printf("%-12s: 0x%X\n", row.name, row.val)
	}
	c.Printf("--- End of ELF Header ---\n")
}

func printElfSections(c *Context, data []byte, r *loader.LoadResult) {
	if len(r.Sections) == 0 {
		c.Printf("No section headers.\n")
		return
	}
	c.Printf("%s\n", c.Color("--- ELF Section Headers ---", "cyan+b"))
	for i, sh := range r.Sections {
		c.Printf("  [%2d] %-18s %-9s %-3s Addr: 0x%-16X Offset: 0x%-8X Size: 0x%-8X\n",
			i, sectionName(data, r, sh), typeName(sectionTypeNames, sh.Type), sectionFlags(sh.Flags),
			sh.Addr, sh.Offset, sh.Size)
	}
	c.Printf("--- End of ELF Section Headers ---\n")
}

func printElfPrograms(c *Context, r *loader.LoadResult) {
	if len(r.Programs) == 0 {
		c.Printf("No program headers.\n")
		return
	}
	c.Printf("%s\n", c.Color("--- ELF Program Headers ---", "cyan+b"))
	for i, ph := range r.Programs {
		c.Printf("  [%2d] %-8s %s Offset: 0x%-8X Vaddr: 0x%-16X Filesz: 0x%-8X Memsz: 0x%-8X\n",
			i, typeName(programTypeNames, ph.Type), programFlags(ph.Flags), ph.Offset, ph.Vaddr, ph.Filesz, ph.Memsz)
	}
	c.Printf("--- End of ELF Program Headers ---\n")
}

func printPe(c *Context, info *loader.PeInfo) {
	c.Printf("%s\n", c.Color("--- PE Image ---", "cyan+b"))
	c.Printf("%-12s: %s (%s)\n", "arch", info.Arch, info.Mode)
	c.Printf("%-12s: 0x%X\n", "image base", info.ImageBase)
	c.Printf("%-12s: 0x%X (rva 0x%X)\n", "entry", info.Entry(), info.EntryRVA)
	for i, s := range info.Sections {
		mark := " "
		if i == info.TextSection {
			mark = "*"
		}
		c.Printf(" %s[%2d] %-8s VA: 0x%-8X VSize: 0x%-8X Raw: 0x%-8X RawSize: 0x%-8X Flags: 0x%08X\n",
			mark, i, s.Name, s.VirtualAddress, s.VirtualSize, s.PointerToRaw, s.SizeOfRawData, s.Characteristics)
	}
	if info.TextSection < 0 {
		c.Warnf("Could not find executable code section in PE file.\n")
	}
}

func printMachO(c *Context, info *loader.MachOInfo) {
	c.Printf("%s\n", c.Color(fmt.Sprintf("--- Mach-O Image (%d-bit) ---", info.Bits), "cyan+b"))
	c.Printf("%-12s: %s (%v)\n", "cpu", info.Arch, info.Cpu)
	c.Printf("%-12s: %v\n", "type", info.Type)
	for i, s := range info.Segments {
		c.Printf("  [%2d] %-16s Addr: 0x%-16X Memsz: 0x%-8X Offset: 0x%-8X Filesz: 0x%-8X\n",
			i, s.Name, s.Addr, s.Memsz, s.Offset, s.Filesz)
	}
}
