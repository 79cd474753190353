// Package storage implements whole-store snapshots: every collection in a
// key-value store serialized into a single compressed file.
package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/localstore/docdb/pkg/domain"
)

// SnapshotData is the on-disk payload: raw collection values keyed by
// collection name. Values are kept as stored bytes so a snapshot round-trips
// the store exactly, valid JSON or not.
type SnapshotData struct {
	Collections map[string][]byte `msgpack:"collections"`
}

// Save serializes every key in the store into a single snapshot file,
// MessagePack-encoded and LZ4-compressed behind a format header.
func Save(store domain.Store, filename string) error {
	keys, err := store.Keys()
	if err != nil {
		return fmt.Errorf("failed to list store keys: %w", err)
	}
	data := SnapshotData{Collections: make(map[string][]byte, len(keys))}
	for _, key := range keys {
		value, err := store.Get(key)
		if err != nil {
			return fmt.Errorf("failed to read key %s: %w", key, err)
		}
		if value == nil {
			continue
		}
		data.Collections[key] = value
	}

	msgpackData, err := msgpack.Marshal(&data)
	if err != nil {
		return fmt.Errorf("failed to encode MessagePack: %w", err)
	}
	compressedData := make([]byte, lz4.CompressBlockBound(len(msgpackData)))
	var hashTable [1 << 16]int
	n, err := lz4.CompressBlock(msgpackData, compressedData, hashTable[:])
	if err != nil {
		return fmt.Errorf("failed to compress data: %w", err)
	}
	compressedData = compressedData[:n]

	// CompressBlock returns 0 for incompressible input; store raw then.
	var flags uint8
	if n == 0 {
		flags = FlagUncompressed
		compressedData = msgpackData
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()
	if err := WriteHeader(file, flags); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binaryWriteLen(file, len(msgpackData)); err != nil {
		return fmt.Errorf("failed to write length: %w", err)
	}
	if _, err := file.Write(compressedData); err != nil {
		return fmt.Errorf("failed to write compressed data: %w", err)
	}
	return nil
}

// Load reads a snapshot file and writes every collection it contains back
// into the store. Keys not present in the snapshot are left untouched.
// A missing file is not an error; the store simply starts empty.
func Load(store domain.Store, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	header, err := ReadHeader(file)
	if err != nil {
		return fmt.Errorf("invalid snapshot header: %w", err)
	}
	uncompressedLen, err := binaryReadLen(file)
	if err != nil {
		return fmt.Errorf("failed to read length: %w", err)
	}
	compressedData, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read compressed data: %w", err)
	}

	msgpackData := compressedData
	if header.Flags&FlagUncompressed == 0 {
		decompressedData := make([]byte, uncompressedLen)
		n, err := lz4.UncompressBlock(compressedData, decompressedData)
		if err != nil {
			return fmt.Errorf("failed to decompress data: %w", err)
		}
		msgpackData = decompressedData[:n]
	}

	var data SnapshotData
	if err := msgpack.Unmarshal(msgpackData, &data); err != nil {
		return fmt.Errorf("failed to decode MessagePack: %w", err)
	}
	for key, value := range data.Collections {
		if err := store.Set(key, value); err != nil {
			return fmt.Errorf("failed to restore key %s: %w", key, err)
		}
	}
	return nil
}
