package storage

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// Magic bytes to identify our snapshot file format
	MagicBytes = "DOCD"
	// Current version
	FormatVersion = 1
	// File extension for snapshot files
	FileExtension = ".docdb"
	// FlagUncompressed marks a payload stored raw because LZ4 could not
	// shrink it.
	FlagUncompressed = 1 << 0
)

// FileHeader represents the header of a snapshot file
type FileHeader struct {
	Magic    [4]byte // "DOCD"
	Version  uint8   // Format version
	Flags    uint8   // Reserved for future use
	Reserved [2]byte // Reserved for future use
}

// WriteHeader writes the file header to the given writer
func WriteHeader(w io.Writer, flags uint8) error {
	header := FileHeader{
		Magic:    [4]byte{'D', 'O', 'C', 'D'},
		Version:  FormatVersion,
		Flags:    flags,
		Reserved: [2]byte{0, 0},
	}
	return binary.Write(w, binary.LittleEndian, header)
}

// binaryWriteLen writes the uncompressed payload length after the header.
func binaryWriteLen(w io.Writer, n int) error {
	return binary.Write(w, binary.LittleEndian, uint32(n))
}

// binaryReadLen reads the uncompressed payload length.
func binaryReadLen(r io.Reader) (int, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// ReadHeader reads and validates the file header
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if string(header.Magic[:]) != MagicBytes {
		return nil, fmt.Errorf("invalid magic bytes: %q", header.Magic[:])
	}
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported format version: %d", header.Version)
	}
	return &header, nil
}
