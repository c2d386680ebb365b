package loader

import (
	"bytes"
	"debug/macho"

	"github.com/pkg/errors"
)

var machoCpuMap = map[macho.Cpu]string{
	macho.Cpu386:   "x86",
	macho.CpuAmd64: "x86_64",
	macho.CpuArm:   "arm",
	macho.CpuArm64: "arm64",
	macho.CpuPpc:   "ppc",
	macho.CpuPpc64: "ppc64",
}

type MachOSegment struct {
	Name   string
	Addr   uint64
	Memsz  uint64
	Offset uint64
	Filesz uint64
	Prot   uint32
}

type MachOInfo struct {
	Cpu      macho.Cpu
	Arch     string
	Bits     int
	Type     macho.Type
	Segments []MachOSegment
}

// LoadMachO summarises a thin Mach-O image.
func LoadMachO(p []byte) (*MachOInfo, error) {
	file, err := macho.NewFile(bytes.NewReader(p))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open MachO file")
	}
	defer file.Close()

	var bits int
	switch file.Magic {
	case macho.Magic32:
		bits = 32
	case macho.Magic64:
		bits = 64
	default:
		return nil, errors.Errorf("unknown MachO magic %#x", file.Magic)
	}
	arch, ok := machoCpuMap[file.Cpu]
	if !ok {
		arch = "unknown"
	}
	info := &MachOInfo{
		Cpu:  file.Cpu,
		Arch: arch,
		Bits: bits,
		Type: file.Type,
	}
	for _, l := range file.Loads {
		if s, ok := l.(*macho.Segment); ok {
			switch s.Cmd {
			case macho.LoadCmdSegment, macho.LoadCmdSegment64:
				info.Segments = append(info.Segments, MachOSegment{
					Name:   s.Name,
					Addr:   s.Addr,
					Memsz:  s.Memsz,
					Offset: s.Offset,
					Filesz: s.Filesz,
					Prot:   s.Prot,
				})
			}
		}
	}
	return info, nil
}
