package text

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patvarilly/wasmtoolbox/wasm"
)

func writeModule(t *testing.T, m *wasm.Module) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteModule(m))
	return buf.String()
}

func TestWriteModule(t *testing.T) {
	i32, i64, f32, f64 := wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64

	tests := []struct {
		name     string
		input    *wasm.Module
		expected string
	}{
		{
			name:     "min module",
			input:    &wasm.Module{},
			expected: "(module)",
		},
		{
			name: "module with name",
			input: &wasm.Module{
				NameSection: &wasm.NameSection{ModuleName: "hello", HasModuleName: true},
			},
			expected: "(module $hello)",
		},
		{
			name: "module with two types",
			input: &wasm.Module{
				TypeSection: []wasm.FunctionType{
					{
						Params:  []wasm.ValueType{i32, i64, wasm.ValueTypeV128},
						Results: []wasm.ValueType{f32, f64},
					},
					{
						Results: []wasm.ValueType{wasm.ValueTypeFuncref, wasm.ValueTypeExternref},
					},
				},
			},
			expected: "(module\n" +
				"  (type (;0;) (func (param i32 i64 v128) (result f32 f64)))\n" +
				"  (type (;1;) (func (result funcref externref))))",
		},
		{
			name: "module with imports",
			input: &wasm.Module{
				ImportSection: []wasm.Import{
					{Module: "Math", Name: "Mul", Kind: wasm.ImportKindFunc, DescFunc: 1},
					{Module: "Math", Name: "Add", Kind: wasm.ImportKindFunc, DescFunc: 0},
				},
			},
			expected: "(module\n" +
				"  (import \"Math\" \"Mul\")\n" +
				"  (import \"Math\" \"Add\"))",
		},
		{
			name: "import names are escaped",
			input: &wasm.Module{
				ImportSection: []wasm.Import{
					{Module: "we\tird", Name: "na\xffme", Kind: wasm.ImportKindFunc},
				},
			},
			expected: "(module\n" +
				"  (import \"we\\tird\" \"na\\ffme\"))",
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			actual := writeModule(t, tc.input)
			require.Equal(t, tc.expected, actual)

			// Structural invariants: parentheses balance and `)(`
			// never appears glued together.
			assert.NotContains(t, actual, ")(")
			assert.Equal(t, strings.Count(actual, "("), strings.Count(actual, ")"))
			assert.False(t, strings.HasSuffix(actual, "\n"))
		})
	}
}

func TestWriteModule_InvalidName(t *testing.T) {
	m := &wasm.Module{
		NameSection: &wasm.NameSection{ModuleName: "bad bad", HasModuleName: true},
	}
	err := NewWriter(&bytes.Buffer{}).WriteModule(m)
	require.ErrorIs(t, err, ErrInvalidIdentifier)

	m.NameSection.ModuleName = ""
	err = NewWriter(&bytes.Buffer{}).WriteModule(m)
	require.ErrorIs(t, err, ErrInvalidIdentifier)
}
