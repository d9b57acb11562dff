package wasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleName(t *testing.T) {
	m := &Module{}
	_, ok := m.Name()
	assert.False(t, ok)

	m.NameSection = &NameSection{}
	_, ok = m.Name()
	assert.False(t, ok)

	// The empty string is a legal module name, distinct from no name.
	m.NameSection.HasModuleName = true
	name, ok := m.Name()
	assert.True(t, ok)
	assert.Equal(t, "", name)

	m.NameSection.ModuleName = "hello"
	name, ok = m.Name()
	assert.True(t, ok)
	assert.Equal(t, "hello", name)
}

func TestValueTypeName(t *testing.T) {
	for vt, exp := range map[ValueType]string{
		ValueTypeI32:       "i32",
		ValueTypeI64:       "i64",
		ValueTypeF32:       "f32",
		ValueTypeF64:       "f64",
		ValueTypeV128:      "v128",
		ValueTypeFuncref:   "funcref",
		ValueTypeExternref: "externref",
	} {
		assert.Equal(t, exp, ValueTypeName(vt))
	}
	assert.Equal(t, "unknown (0x00)", ValueTypeName(0))
}
