package signature

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file with the given content in a temp directory.
func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestBuiltinSignatures(t *testing.T) {
	assert.Equal(t, []byte("#!"), Shell.Magic)
	assert.Equal(t, 2, Shell.Len())
	assert.Equal(t, []byte("\x7fELF"), Executable.Magic)
	assert.Equal(t, 4, Executable.Len())
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		sig     Signature
		want    bool
	}{
		{name: "shell script", content: []byte("#!/bin/sh\necho hi\n"), sig: Shell, want: true},
		{name: "exact length shell", content: []byte("#!"), sig: Shell, want: true},
		{name: "reversed shell bytes", content: []byte("!#/bin/sh"), sig: Shell, want: false},
		{name: "elf binary", content: []byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0}, sig: Executable, want: true},
		{name: "elf mismatch in last byte", content: []byte{0x7f, 'E', 'L', 'X'}, sig: Executable, want: false},
		{name: "elf mismatch in first byte", content: []byte{0x7e, 'E', 'L', 'F'}, sig: Executable, want: false},
		{name: "text file", content: []byte("hello world"), sig: Shell, want: false},
		{name: "zero-length file", content: []byte{}, sig: Shell, want: false},
		{name: "zero-length file exec", content: []byte{}, sig: Executable, want: false},
		{name: "shorter than signature", content: []byte{0x7f, 'E'}, sig: Executable, want: false},
		{name: "single matching byte", content: []byte("#"), sig: Shell, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "input", tt.content)

			got, err := Matches(tt.sig, path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatches_DoesNotModifyFile(t *testing.T) {
	content := []byte("#!/bin/bash\n")
	path := writeFile(t, "script", content)

	_, err := Matches(Shell, path)
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, after)
}

func TestMatches_Idempotent(t *testing.T) {
	path := writeFile(t, "script", []byte("#!/bin/sh\n"))

	for i := 0; i < 3; i++ {
		got, err := Matches(Shell, path)
		require.NoError(t, err)
		assert.True(t, got)
	}
}

func TestMatches_MissingFile(t *testing.T) {
	got, err := Matches(Shell, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.False(t, got)
	assert.True(t, errors.Is(err, ErrUnreadable))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMatches_Directory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("opening directories differs on windows")
	}

	got, err := Matches(Executable, t.TempDir())
	assert.False(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadable))
}

func TestMatches_UnreadableFile(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	path := writeFile(t, "secret", []byte("#!/bin/sh\n"))
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

	got, err := Matches(Shell, path)
	assert.False(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadable))
}

func TestMatches_EmptySignature(t *testing.T) {
	path := writeFile(t, "input", []byte("anything"))

	got, err := Matches(Signature{Name: "empty"}, path)
	assert.False(t, got)
	assert.ErrorIs(t, err, ErrEmptySignature)
}

func TestMatchReader(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		got, err := Shell.MatchReader(bytes.NewReader([]byte("#!/usr/bin/env python")))
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("one byte at a time", func(t *testing.T) {
		r := iotest.OneByteReader(bytes.NewReader([]byte{0x7f, 'E', 'L', 'F'}))
		got, err := Executable.MatchReader(r)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("short reader is non-match", func(t *testing.T) {
		got, err := Executable.MatchReader(bytes.NewReader([]byte{0x7f}))
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("read error", func(t *testing.T) {
		boom := errors.New("boom")
		got, err := Shell.MatchReader(iotest.ErrReader(boom))
		assert.False(t, got)
		assert.ErrorIs(t, err, ErrUnreadable)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty signature", func(t *testing.T) {
		got, err := Signature{}.MatchReader(bytes.NewReader([]byte("x")))
		assert.False(t, got)
		assert.ErrorIs(t, err, ErrEmptySignature)
	})
}
