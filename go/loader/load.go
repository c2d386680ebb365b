package loader

import (
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/sandlua/sandlua/go/models"
)

// LoadResult is built once per successful load and not modified afterwards.
// Exactly one of Elf, Pe and MachO is set, matching Format.
type LoadResult struct {
	Format   ContainerFormat
	Elf      *ElfHeader
	Sections []ElfSectionHeader
	Programs []ElfProgramHeader
	Pe       *PeInfo
	MachO    *MachOInfo
	// reserved for symbol data, always empty for now
	Symbols map[string]models.Symbol
}

func LoadFile(path string) (*LoadResult, error) {
	p, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading file")
	}
	return Load(p)
}

func Load(p []byte) (*LoadResult, error) {
	switch Classify(p) {
	case FormatElf:
		return LoadElf(p)
	case FormatPe:
		info, err := LoadPe(p)
		if err != nil {
			return nil, err
		}
		return &LoadResult{Format: FormatPe, Pe: info, Symbols: map[string]models.Symbol{}}, nil
	case FormatMachO:
		info, err := LoadMachO(p)
		if err != nil {
			return nil, err
		}
		return &LoadResult{Format: FormatMachO, MachO: info, Symbols: map[string]models.Symbol{}}, nil
	default:
		return nil, errors.WithStack(ErrUnknownFormat)
	}
}

// LoadElf decodes the file header, then the section and program header
// tables, stopping at the first failure.
func LoadElf(p []byte) (*LoadResult, error) {
	header, err := DecodeElfHeader(p)
	if err != nil {
		return nil, err
	}
	sections, err := DecodeElfSections(p, header)
	if err != nil {
		return nil, err
	}
	progs, err := DecodeElfPrograms(p, header)
	if err != nil {
		return nil, err
	}
	return &LoadResult{
		Format:   FormatElf,
		Elf:      header,
		Sections: sections,
		Programs: progs,
		Symbols:  map[string]models.Symbol{},
	}, nil
}
