package binary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/patvarilly/wasmtoolbox/wasm"
)

// customSection frames contents as a custom section with the given name.
// Only valid for payloads shorter than 128 bytes.
func customSection(name string, contents ...byte) []byte {
	payload := append([]byte{byte(len(name))}, name...)
	payload = append(payload, contents...)
	return section(wasm.SectionIDCustom, payload...)
}

func TestDecodeNameSection(t *testing.T) {
	tests := []struct {
		name     string
		contents []byte
		expected *wasm.NameSection
	}{
		{
			name:     "module name",
			contents: []byte{0x00, 0x06, 0x05, 'h', 'e', 'l', 'l', 'o'},
			expected: &wasm.NameSection{ModuleName: "hello", HasModuleName: true},
		},
		{
			name:     "empty module name",
			contents: []byte{0x00, 0x01, 0x00},
			expected: &wasm.NameSection{ModuleName: "", HasModuleName: true},
		},
		{
			name: "function names",
			contents: []byte{
				0x01, 0x09, // subsection id, size
				0x02,           // two entries
				0x00, 0x02, 'f', '0',
				0x02, 0x02, 'f', '2',
			},
			expected: &wasm.NameSection{
				FunctionNames: map[wasm.Index]string{0: "f0", 2: "f2"},
			},
		},
		{
			name: "local names",
			contents: []byte{
				0x02, 0x09, // subsection id, size
				0x01,       // one function
				0x01,       // function index
				0x02,       // two locals
				0x00, 0x01, 'x',
				0x01, 0x01, 'y',
			},
			expected: &wasm.NameSection{
				LocalNames: map[wasm.Index]map[wasm.Index]string{
					1: {0: "x", 1: "y"},
				},
			},
		},
		{
			name: "global and data segment names",
			contents: []byte{
				0x07, 0x05, 0x01, 0x00, 0x02, 'g', '0',
				0x09, 0x05, 0x01, 0x01, 0x02, 'd', '1',
			},
			expected: &wasm.NameSection{
				GlobalNames: map[wasm.Index]string{0: "g0"},
				DataNames:   map[wasm.Index]string{1: "d1"},
			},
		},
		{
			name: "unknown subsection skipped",
			contents: []byte{
				0x04, 0x03, 0xaa, 0xbb, 0xcc, // unrecognized id, skipped by size
				0x00, 0x02, 0x01, 'm',
			},
			expected: &wasm.NameSection{ModuleName: "m", HasModuleName: true},
		},
		{
			name: "module then function names",
			contents: []byte{
				0x00, 0x02, 0x01, 'm',
				0x01, 0x05, 0x01, 0x00, 0x02, 'f', '0',
			},
			expected: &wasm.NameSection{
				ModuleName:    "m",
				HasModuleName: true,
				FunctionNames: map[wasm.Index]string{0: "f0"},
			},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			input := concat(header, customSection("name", tc.contents...))
			m, err := DecodeModule(bytes.NewReader(input))
			require.NoError(t, err)
			require.Equal(t, tc.expected, m.NameSection)
		})
	}
}

func TestDecodeCustomSection_SourceMappingURL(t *testing.T) {
	input := concat(header,
		customSection("sourceMappingURL", 0x07, 'a', '.', 'w', 'a', 's', 'm', '?'))
	m, err := DecodeModule(bytes.NewReader(input))
	require.NoError(t, err)
	require.Nil(t, m.NameSection)
}

func TestDecodeCustomSection_SourceMappingURLTrailingBytes(t *testing.T) {
	// Trailing garbage after the URL is skipped with a warning.
	input := concat(header,
		customSection("sourceMappingURL", 0x01, 'a', 0xde, 0xad))
	_, err := DecodeModule(bytes.NewReader(input))
	require.NoError(t, err)
}

func TestDecodeNameSection_Truncated(t *testing.T) {
	// The subsection declares more bytes than the custom section holds.
	input := concat(header, customSection("name", 0x00, 0x7f))
	_, err := DecodeModule(bytes.NewReader(input))
	require.Error(t, err)
}
