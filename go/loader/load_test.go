package loader

import (
	"debug/macho"
	"encoding/binary"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestLoadUnknown(t *testing.T) {
	for _, p := range [][]byte{nil, []byte(""), []byte("abc"), []byte("#!/bin/sh\necho\n")} {
		r, err := Load(p)
		if r != nil || !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("Load(%q) = %v, %v", p, r, err)
		}
	}
}

func TestLoadElf(t *testing.T) {
	h := sampleHeader(ElfClass64, ElfDataLSB)
	p := buildElf(h, samplePrograms(), sampleSections())
	r, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if r.Format != FormatElf || r.Pe != nil || r.MachO != nil {
		t.Fatalf("got %+v", r)
	}
	if !reflect.DeepEqual(r.Elf, h) {
		t.Fatalf("header %+v, want %+v", r.Elf, h)
	}
	if !reflect.DeepEqual(r.Sections, sampleSections()) || !reflect.DeepEqual(r.Programs, samplePrograms()) {
		t.Fatal("tables did not round trip")
	}
}

func TestLoadElfShortCircuits(t *testing.T) {
	h := sampleHeader(ElfClass32, ElfDataMSB)
	p := buildElf(h, samplePrograms(), sampleSections())
	r, err := Load(p[:len(p)-4])
	if r != nil || !errors.Is(err, ErrTruncatedSectionHeader) {
		t.Fatalf("got %v, %v", r, err)
	}
	r, err = Load(p[:40])
	if r != nil || !errors.Is(err, ErrTruncatedHeader) {
		t.Fatalf("got %v, %v", r, err)
	}
}

func TestLoadBadPe(t *testing.T) {
	p := append([]byte("MZ"), make([]byte, 30)...)
	r, err := Load(p)
	if r != nil || err == nil {
		t.Fatalf("got %v, %v", r, err)
	}
	if errors.Is(err, ErrUnknownFormat) {
		t.Fatal("PE parse failure reported as unknown format")
	}
}

func machoFixture() []byte {
	be := binary.BigEndian
	p := make([]byte, 28+56)
	copy(p, []byte{0xfe, 0xed, 0xfa, 0xce})
	be.PutUint32(p[4:], uint32(macho.Cpu386))
	be.PutUint32(p[8:], 3)
	be.PutUint32(p[12:], uint32(macho.TypeExec))
	be.PutUint32(p[16:], 1)  // ncmd
	be.PutUint32(p[20:], 56) // cmdsz
	// LC_SEGMENT __TEXT
	seg := p[28:]
	be.PutUint32(seg[0:], uint32(macho.LoadCmdSegment))
	be.PutUint32(seg[4:], 56)
	copy(seg[8:24], "__TEXT")
	be.PutUint32(seg[24:], 0x1000) // vmaddr
	be.PutUint32(seg[28:], 0x2000) // vmsize
	be.PutUint32(seg[40:], 7)      // maxprot
	be.PutUint32(seg[44:], 5)      // initprot
	return p
}

func TestLoadMachO(t *testing.T) {
	r, err := Load(machoFixture())
	if err != nil {
		t.Fatal(err)
	}
	if r.Format != FormatMachO || r.Elf != nil {
		t.Fatalf("got %+v", r)
	}
	info := r.MachO
	if info.Arch != "x86" || info.Bits != 32 || info.Type != macho.TypeExec {
		t.Fatalf("got %+v", info)
	}
	if len(info.Segments) != 1 || info.Segments[0].Name != "__TEXT" || info.Segments[0].Addr != 0x1000 || info.Segments[0].Memsz != 0x2000 {
		t.Fatalf("got segments %+v", info.Segments)
	}
}

func TestLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "sandlua")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "a.out")
	h := sampleHeader(ElfClass32, ElfDataLSB)
	if err := ioutil.WriteFile(path, buildElf(h, nil, sampleSections()), 0644); err != nil {
		t.Fatal(err)
	}
	r, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Sections) != len(sampleSections()) {
		t.Fatalf("got %d sections", len(r.Sections))
	}
	if _, err := LoadFile(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("Failed to error on missing file.")
	}
}
