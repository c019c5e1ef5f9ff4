// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// NonceSize is the length of the nonce slot in the header.
	NonceSize = 12
	// TagSize is the length of the authentication tag slot in the header.
	TagSize = 16
	// MaxExtensionLen is the largest extension the length prefix can describe.
	MaxExtensionLen = 255
	// MinSize is the smallest valid container: empty extension, empty body.
	MinSize = 1 + NonceSize + TagSize
)

// Header is the parsed prefix of a container file.
type Header struct {
	// Extension is the original file extension, empty for diary text.
	Extension string
	// Nonce is the 12-byte GCM nonce used for this payload.
	Nonce []byte
	// Tag is the 16-byte GCM authentication tag.
	Tag []byte
	// Size is the header length in bytes; the ciphertext starts at this offset.
	Size int64
}

// WriteResult describes a container persisted by [Write].
type WriteResult struct {
	// Path is the final destination of the file.
	Path string
	// FileHash is the hex SHA-256 of the complete container bytes.
	FileHash string
	// Size is the total container size in bytes.
	Size int64
}

// Write frames nonce, the tag and ciphertext taken from sealed
// (ciphertext || tag, as produced by AES-GCM Seal) and extension into a
// container at destPath.
//
// The file is written to a temporary sibling and renamed into place, so a
// failure never leaves a partial file at destPath. Parent directories are
// created as needed.
func Write(destPath string, nonce, sealed []byte, extension string) (WriteResult, error) {
	if len(extension) > MaxExtensionLen {
		return WriteResult{}, fmt.Errorf("%w: %d bytes", ErrExtensionTooLong, len(extension))
	}
	if len(nonce) != NonceSize {
		return WriteResult{}, fmt.Errorf("%w: %d bytes", ErrInvalidNonce, len(nonce))
	}
	if len(sealed) < TagSize {
		return WriteResult{}, fmt.Errorf("%w: %d bytes", ErrInvalidBlob, len(sealed))
	}

	split := len(sealed) - TagSize
	ciphertext, tag := sealed[:split], sealed[split:]

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return WriteResult{}, fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(destPath)+".tmp-*")
	if err != nil {
		return WriteResult{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	hasher := sha256.New()
	w := bufio.NewWriter(io.MultiWriter(tmp, hasher))

	header := make([]byte, 0, 1+len(extension)+NonceSize+TagSize)
	header = append(header, byte(len(extension)))
	header = append(header, extension...)
	header = append(header, nonce...)
	header = append(header, tag...)

	if _, err = w.Write(header); err != nil {
		return WriteResult{}, fmt.Errorf("write header: %w", err)
	}
	if _, err = w.Write(ciphertext); err != nil {
		return WriteResult{}, fmt.Errorf("write ciphertext: %w", err)
	}
	if err = w.Flush(); err != nil {
		return WriteResult{}, fmt.Errorf("flush container: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return WriteResult{}, fmt.Errorf("sync container: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return WriteResult{}, fmt.Errorf("close container: %w", err)
	}
	if err = os.Rename(tmpPath, destPath); err != nil {
		return WriteResult{}, fmt.Errorf("rename container into place: %w", err)
	}
	committed = true

	return WriteResult{
		Path:     destPath,
		FileHash: hex.EncodeToString(hasher.Sum(nil)),
		Size:     int64(len(header) + len(ciphertext)),
	}, nil
}

// ReadHeader parses the header of the container at path. Filesystem errors
// are returned wrapped, so callers can match fs.ErrNotExist and
// fs.ErrPermission.
func ReadHeader(path string) (Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, fmt.Errorf("open container: %w", err)
	}
	defer f.Close()

	return readHeader(f)
}

// Open parses the header of the container at path and returns the file
// positioned at the first ciphertext byte, so the body can be streamed
// without reading the file twice. The caller must close the file.
func Open(path string) (Header, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, fmt.Errorf("open container: %w", err)
	}

	h, err := readHeader(f)
	if err != nil {
		_ = f.Close()
		return Header{}, nil, err
	}

	return h, f, nil
}

// ReadFile returns the header and the whole ciphertext body of the
// container at path.
func ReadFile(path string) (Header, []byte, error) {
	h, f, err := Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		return Header{}, nil, fmt.Errorf("read ciphertext: %w", err)
	}

	return h, body, nil
}

// HashFile returns the hex SHA-256 of the file at path, the same digest
// [Write] reports as FileHash.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open container: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err = io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash container: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// readHeader parses a header from f, which must be positioned at offset 0.
// On success f is left at the start of the ciphertext.
func readHeader(f *os.File) (Header, error) {
	info, err := f.Stat()
	if err != nil {
		return Header{}, fmt.Errorf("stat container: %w", err)
	}

	return parseHeader(f, info.Size())
}

// parseHeader reads a header from r given the total container size.
func parseHeader(r io.Reader, size int64) (Header, error) {
	if size < MinSize {
		return Header{}, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidContainer, size, MinSize)
	}

	var extLen [1]byte
	if _, err := io.ReadFull(r, extLen[:]); err != nil {
		return Header{}, fmt.Errorf("%w: read extension length: %w", ErrInvalidContainer, err)
	}

	headerSize := int64(1 + int(extLen[0]) + NonceSize + TagSize)
	if headerSize > size {
		return Header{}, fmt.Errorf("%w: header of %d bytes exceeds file size %d", ErrInvalidContainer, headerSize, size)
	}

	rest := make([]byte, int(extLen[0])+NonceSize+TagSize)
	if _, err := io.ReadFull(r, rest); err != nil {
		return Header{}, fmt.Errorf("%w: read header: %w", ErrInvalidContainer, err)
	}

	ext := int(extLen[0])

	return Header{
		Extension: string(rest[:ext]),
		Nonce:     rest[ext : ext+NonceSize : ext+NonceSize],
		Tag:       rest[ext+NonceSize:],
		Size:      headerSize,
	}, nil
}
