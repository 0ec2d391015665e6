// Package signature matches the leading bytes of a file against known
// magic numbers.
package signature

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Signature is a named sequence of bytes expected at the start of a file.
type Signature struct {
	// Name identifies the signature in logs (e.g. "shell").
	Name string

	// Magic is the exact byte sequence expected at offset zero.
	Magic []byte
}

// Built-in signatures. These values must stay bit-exact.
var (
	// Shell matches interpreter scripts starting with "#!".
	Shell = Signature{Name: "shell", Magic: []byte{0x23, 0x21}}

	// Executable matches ELF binaries (0x7F 'E' 'L' 'F').
	Executable = Signature{Name: "executable", Magic: []byte{0x7f, 0x45, 0x4c, 0x46}}
)

var (
	// ErrEmptySignature is returned when a signature has no bytes to match.
	ErrEmptySignature = errors.New("signature has no magic bytes")

	// ErrUnreadable is returned when the file cannot be opened or read.
	ErrUnreadable = errors.New("file unreadable")
)

// Len returns the number of leading bytes the signature inspects.
func (s Signature) Len() int {
	return len(s.Magic)
}

// MatchReader reads exactly Len() bytes from r and reports whether they equal
// the signature. A reader that ends early is a non-match, not an error.
func (s Signature) MatchReader(r io.Reader) (bool, error) {
	if s.Len() == 0 {
		return false, ErrEmptySignature
	}

	buf := make([]byte, s.Len())
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	for i, b := range s.Magic {
		if buf[i] != b {
			return false, nil
		}
	}
	return true, nil
}

// Matches opens path and reports whether its leading bytes equal sig.
// Open and read failures are returned wrapped in ErrUnreadable; callers that
// only care about the verdict can treat any error as a non-match.
func Matches(sig Signature, path string) (bool, error) {
	if sig.Len() == 0 {
		return false, ErrEmptySignature
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer f.Close()

	ok, err := sig.MatchReader(f)
	if err != nil {
		return false, fmt.Errorf("matching %s signature against %s: %w", sig.Name, path, err)
	}
	return ok, nil
}
