package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var namedModuleBin = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x00,               // custom section id
	0x0d,               // section size
	0x04,               // custom section name length
	'n', 'a', 'm', 'e', // custom section name
	0x00,                    // module-name subsection id
	0x06,                    // subsection size
	0x05,                    // module name length
	'h', 'e', 'l', 'l', 'o', // module name
}

func TestRunWasm2Wat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.wasm")
	require.NoError(t, os.WriteFile(path, namedModuleBin, 0o600))

	var out bytes.Buffer
	require.NoError(t, runWasm2Wat(&out, path))
	require.Equal(t, "(module $hello)\n", out.String())
}

func TestRunWasm2Wat_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := runWasm2Wat(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.wasm"))
		require.ErrorContains(t, err, "could not open file")
	})

	t.Run("invalid module", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.wasm")
		require.NoError(t, os.WriteFile(path, []byte{0x00, 0x61, 0x73, 0x6d}, 0o600))
		err := runWasm2Wat(&bytes.Buffer{}, path)
		require.ErrorContains(t, err, "end of file")
	})
}
