package pfm

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// ByteOrder is the byte order of a binary pixel payload.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// HostByteOrder reports the native byte order of the running host.
func HostByteOrder() ByteOrder {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}

// OrderFromScale decodes the byte order carried by the sign of a header scale.
// Negative scale means little-endian.
func OrderFromScale(scale float32) ByteOrder {
	if scale < 0 {
		return LittleEndian
	}
	return BigEndian
}

// Sign returns the scale sign that announces this order in a header.
func (o ByteOrder) Sign() float32 {
	if o == LittleEndian {
		return -1
	}
	return 1
}

func (o ByteOrder) binary() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}
