package loader

import (
	"bytes"
	"debug/pe"

	"github.com/pkg/errors"
)

type PeSection struct {
	Name            string
	VirtualAddress  uint32
	VirtualSize     uint32
	PointerToRaw    uint32
	SizeOfRawData   uint32
	Characteristics uint32
}

func (s *PeSection) Executable() bool {
	return s.Characteristics&(pe.IMAGE_SCN_CNT_CODE|pe.IMAGE_SCN_MEM_EXECUTE) != 0
}

type PeInfo struct {
	Machine   uint16
	Arch      string
	Mode      string
	ImageBase uint64
	EntryRVA  uint32
	Sections  []PeSection
	// index into Sections of the code section, or -1
	TextSection int
}

func (p *PeInfo) Entry() uint64 {
	return p.ImageBase + uint64(p.EntryRVA)
}

func peArch(machine uint16) (arch, mode string) {
	switch machine {
	case pe.IMAGE_FILE_MACHINE_I386:
		return "x86", "32"
	case pe.IMAGE_FILE_MACHINE_AMD64:
		return "x86", "64"
	case pe.IMAGE_FILE_MACHINE_ARM:
		return "arm", "arm"
	case pe.IMAGE_FILE_MACHINE_ARM64:
		return "arm64", "default"
	default:
		return "unknown", "unknown"
	}
}

// LoadPe summarises a PE image.
func LoadPe(p []byte) (*PeInfo, error) {
	file, err := pe.NewFile(bytes.NewReader(p))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PE file")
	}
	defer file.Close()

	info := &PeInfo{Machine: file.Machine, TextSection: -1}
	info.Arch, info.Mode = peArch(file.Machine)
	switch oh := file.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		info.ImageBase = uint64(oh.ImageBase)
		info.EntryRVA = oh.AddressOfEntryPoint
		info.Mode = "32"
	case *pe.OptionalHeader64:
		info.ImageBase = oh.ImageBase
		info.EntryRVA = oh.AddressOfEntryPoint
		info.Mode = "64"
	}
	for i, s := range file.Sections {
		sec := PeSection{
			Name:            s.Name,
			VirtualAddress:  s.VirtualAddress,
			VirtualSize:     s.VirtualSize,
			PointerToRaw:    s.Offset,
			SizeOfRawData:   s.Size,
			Characteristics: s.Characteristics,
		}
		if sec.Name == ".text" || sec.Executable() {
			info.TextSection = i
		}
		info.Sections = append(info.Sections, sec)
	}
	return info, nil
}
