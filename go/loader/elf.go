package loader

import (
	"bytes"
	"encoding/binary"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"

	"github.com/sandlua/sandlua/go/models"
)

type ElfClass uint8

const (
	ElfClass32 ElfClass = 1
	ElfClass64 ElfClass = 2
)

func (c ElfClass) Bits() int {
	if c == ElfClass64 {
		return 64
	}
	return 32
}

type ElfData uint8

const (
	ElfDataLSB ElfData = 1
	ElfDataMSB ElfData = 2
)

const (
	elfIdentSize    = 16
	elf32HeaderSize = 52
	elf64HeaderSize = 64
)

// ElfIdent is e_ident. Version, OSABI, ABIVersion and Pad are carried
// verbatim and never interpreted.
type ElfIdent struct {
	Magic      [4]byte
	Class      ElfClass
	Data       ElfData
	Version    uint8
	OSABI      uint8
	ABIVersion uint8
	Pad        [7]byte
}

func (i *ElfIdent) ByteOrder() binary.ByteOrder {
	if i.Data == ElfDataMSB {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (i *ElfIdent) Bytes() []byte {
	p := make([]byte, elfIdentSize)
	copy(p, i.Magic[:])
	p[4] = byte(i.Class)
	p[5] = byte(i.Data)
	p[6] = i.Version
	p[7] = i.OSABI
	p[8] = i.ABIVersion
	copy(p[9:], i.Pad[:])
	return p
}

// ElfHeader is the decoded file header. Address and offset fields are widened
// to 64 bits for both classes; Ident.Class says which layout they came from.
type ElfHeader struct {
	Ident     ElfIdent
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint64
	Phoff     uint64
	Shoff     uint64
	Flags     uint32
	Ehsize    uint16
	Phentsize uint16
	Phnum     uint16
	Shentsize uint16
	Shnum     uint16
	Shstrndx  uint16
}

func (h *ElfHeader) Bits() int {
	return h.Ident.Class.Bits()
}

func (h *ElfHeader) ByteOrder() binary.ByteOrder {
	return h.Ident.ByteOrder()
}

// On-disk layouts. Field order is the offset table; the trailing comment on
// each field is its byte offset.
type elf32Header struct {
	Ident     [16]byte // 0x00
	Type      uint16   // 0x10
	Machine   uint16   // 0x12
	Version   uint32   // 0x14
	Entry     uint32   // 0x18
	Phoff     uint32   // 0x1c
	Shoff     uint32   // 0x20
	Flags     uint32   // 0x24
	Ehsize    uint16   // 0x28
	Phentsize uint16   // 0x2a
	Phnum     uint16   // 0x2c
	Shentsize uint16   // 0x2e
	Shnum     uint16   // 0x30
	Shstrndx  uint16   // 0x32
}

type elf64Header struct {
	Ident     [16]byte // 0x00
	Type      uint16   // 0x10
	Machine   uint16   // 0x12
	Version   uint32   // 0x14
	Entry     uint64   // 0x18
	Phoff     uint64   // 0x20
	Shoff     uint64   // 0x28
	Flags     uint32   // 0x30
	Ehsize    uint16   // 0x34
	Phentsize uint16   // 0x36
	Phnum     uint16   // 0x38
	Shentsize uint16   // 0x3a
	Shnum     uint16   // 0x3c
	Shstrndx  uint16   // 0x3e
}

// unpackAt decodes the fixed-size struct i from p[at:] in the given order.
// The caller has already checked that p holds enough bytes.
func unpackAt(p []byte, i interface{}, at uint64, order binary.ByteOrder) error {
	size, err := struc.Sizeof(i)
	if err != nil {
		return errors.WithStack(err)
	}
	s := &models.StrucStream{
		Stream: bytes.NewBuffer(p[at : at+uint64(size)]),
		Order:  order,
	}
	return errors.WithStack(s.Unpack(i))
}

func decodeElfIdent(p []byte) (ElfIdent, error) {
	var ident ElfIdent
	if len(p) < elfIdentSize {
		return ident, errors.WithStack(&TruncatedHeaderError{Expected: elfIdentSize, Actual: len(p)})
	}
	if !bytes.Equal(p[:4], elfMagic) {
		return ident, errors.WithStack(ErrInvalidMagic)
	}
	copy(ident.Magic[:], p[:4])
	ident.Class = ElfClass(p[4])
	ident.Data = ElfData(p[5])
	ident.Version = p[6]
	ident.OSABI = p[7]
	ident.ABIVersion = p[8]
	copy(ident.Pad[:], p[9:elfIdentSize])

	switch ident.Data {
	case ElfDataLSB, ElfDataMSB:
	default:
		return ident, errors.WithStack(&UnsupportedEndiannessError{Data: p[5]})
	}
	switch ident.Class {
	case ElfClass32, ElfClass64:
	default:
		return ident, errors.WithStack(&UnsupportedClassError{Class: p[4]})
	}
	return ident, nil
}

// DecodeElfHeader decodes the ELF file header at the start of p. The header
// is never returned alongside an error.
func DecodeElfHeader(p []byte) (*ElfHeader, error) {
	ident, err := decodeElfIdent(p)
	if err != nil {
		return nil, err
	}
	order := ident.ByteOrder()
	switch ident.Class {
	case ElfClass32:
		return decodeElf32Header(p, ident, order)
	default:
		return decodeElf64Header(p, ident, order)
	}
}

func decodeElf32Header(p []byte, ident ElfIdent, order binary.ByteOrder) (*ElfHeader, error) {
	if len(p) < elf32HeaderSize {
		return nil, errors.WithStack(&TruncatedHeaderError{Expected: elf32HeaderSize, Actual: len(p)})
	}
	var raw elf32Header
	if err := unpackAt(p, &raw, 0, order); err != nil {
		return nil, err
	}
	return &ElfHeader{
		Ident:     ident,
		Type:      raw.Type,
		Machine:   raw.Machine,
		Version:   raw.Version,
		Entry:     uint64(raw.Entry),
		Phoff:     uint64(raw.Phoff),
		Shoff:     uint64(raw.Shoff),
		Flags:     raw.Flags,
		Ehsize:    raw.Ehsize,
		Phentsize: raw.Phentsize,
		Phnum:     raw.Phnum,
		Shentsize: raw.Shentsize,
		Shnum:     raw.Shnum,
		Shstrndx:  raw.Shstrndx,
	}, nil
}

func decodeElf64Header(p []byte, ident ElfIdent, order binary.ByteOrder) (*ElfHeader, error) {
	if len(p) < elf64HeaderSize {
		return nil, errors.WithStack(&TruncatedHeaderError{Expected: elf64HeaderSize, Actual: len(p)})
	}
	var raw elf64Header
	if err := unpackAt(p, &raw, 0, order); err != nil {
		return nil, err
	}
	return &ElfHeader{
		Ident:     ident,
		Type:      raw.Type,
		Machine:   raw.Machine,
		Version:   raw.Version,
		Entry:     raw.Entry,
		Phoff:     raw.Phoff,
		Shoff:     raw.Shoff,
		Flags:     raw.Flags,
		Ehsize:    raw.Ehsize,
		Phentsize: raw.Phentsize,
		Phnum:     raw.Phnum,
		Shentsize: raw.Shentsize,
		Shnum:     raw.Shnum,
		Shstrndx:  raw.Shstrndx,
	}, nil
}
