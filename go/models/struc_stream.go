package models

import (
	"encoding/binary"
	"io"

	"github.com/lunixbochs/struc"
)

// StrucStream unpacks struc-tagged values with a fixed byte order.
// Loaders pick Order from the file they are reading, never from the host.
type StrucStream struct {
	Stream io.Reader
	Order  binary.ByteOrder
}

func (s *StrucStream) Unpack(i interface{}) error {
	return struc.UnpackWithOrder(s.Stream, i, s.Order)
}
