// Package binary decodes the WebAssembly binary format into a
// wasm.Module.
//
// The decoder is a strict, position-tracking byte-level parser: it holds
// one byte of lookahead over the input stream and reports the byte offset
// of every failure. Input is consumed strictly forward; a decode either
// runs to completion or returns an error wrapping one of the sentinel
// values in the wasm package.
package binary

import (
	"fmt"
	"io"

	"github.com/patvarilly/wasmtoolbox/wasm"
)

// decoder is the cursor over the input stream. cur is valid only while
// eof is false; offset counts bytes consumed from the start of the
// stream. Lifetime is a single DecodeModule call.
type decoder struct {
	r      io.Reader
	cur    byte
	eof    bool
	offset int64
	buf    [1]byte
}

// DecodeModule decodes one complete module from r.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#binary-module
func DecodeModule(r io.Reader) (*wasm.Module, error) {
	d := &decoder{r: r}
	d.prime()
	return d.decodeModule()
}

// prime establishes the one-byte lookahead.
func (d *decoder) prime() {
	if _, err := io.ReadFull(d.r, d.buf[:]); err != nil {
		d.eof = true
		return
	}
	d.cur = d.buf[0]
}

// readByte returns the current lookahead and advances the cursor.
func (d *decoder) readByte() (byte, error) {
	if d.eof {
		return 0, fmt.Errorf("%w at offset %d", wasm.ErrUnexpectedEOF, d.offset)
	}
	b := d.cur
	if _, err := io.ReadFull(d.r, d.buf[:]); err != nil {
		d.eof = true
	} else {
		d.cur = d.buf[0]
	}
	d.offset++
	return b, nil
}

// matchByte consumes one byte and fails unless it equals expected.
func (d *decoder) matchByte(expected byte) error {
	offset := d.offset
	actual, err := d.readByte()
	if err != nil {
		return err
	}
	if actual != expected {
		return fmt.Errorf("%w: expected 0x%02x at offset %d, found 0x%02x",
			wasm.ErrInvalidByte, expected, offset, actual)
	}
	return nil
}

// maybeMatchByte consumes one byte only if it equals probe.
func (d *decoder) maybeMatchByte(probe byte) (bool, error) {
	if d.eof || d.cur != probe {
		return false, nil
	}
	if _, err := d.readByte(); err != nil {
		return false, err
	}
	return true, nil
}

// skipBytes advances the cursor by count bytes.
func (d *decoder) skipBytes(count int64) error {
	for i := int64(0); i < count; i++ {
		if _, err := d.readByte(); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) decodeMagic() error {
	for _, b := range []byte{0x00, 0x61, 0x73, 0x6d} {
		if err := d.matchByte(b); err != nil {
			return fmt.Errorf("magic: %w", err)
		}
	}
	return nil
}

func (d *decoder) decodeVersion() error {
	for _, b := range []byte{0x01, 0x00, 0x00, 0x00} {
		if err := d.matchByte(b); err != nil {
			return fmt.Errorf("version: %w", err)
		}
	}
	return nil
}

// decodeModule reads the magic header and then the sections in their
// mandated order, with zero or more custom sections allowed between every
// pair of non-custom sections and after the last one. The tag section
// slots between memory and global per the exception-handling draft.
func (d *decoder) decodeModule() (*wasm.Module, error) {
	m := &wasm.Module{}

	if err := d.decodeMagic(); err != nil {
		return nil, err
	}
	if err := d.decodeVersion(); err != nil {
		return nil, err
	}

	sections := []struct {
		id   wasm.SectionID
		body func() error
	}{
		{wasm.SectionIDType, func() error { return d.decodeTypeSection(m) }},
		{wasm.SectionIDImport, func() error { return d.decodeImportSection(m) }},
		{wasm.SectionIDFunction, d.decodeFunctionSection},
		{wasm.SectionIDTable, d.decodeTableSection},
		{wasm.SectionIDMemory, d.decodeMemorySection},
		{wasm.SectionIDTag, d.decodeTagSection},
		{wasm.SectionIDGlobal, d.decodeGlobalSection},
		{wasm.SectionIDExport, d.decodeExportSection},
		{wasm.SectionIDStart, d.decodeStartSection},
		{wasm.SectionIDElement, d.decodeElementSection},
		{wasm.SectionIDDataCount, d.decodeDataCountSection},
		{wasm.SectionIDCode, d.decodeCodeSection},
		{wasm.SectionIDData, d.decodeDataSection},
	}
	for _, s := range sections {
		if err := d.decodeCustomSections(m); err != nil {
			return nil, err
		}
		if !d.eof && d.cur == s.id {
			if err := s.body(); err != nil {
				return nil, err
			}
		}
	}
	if err := d.decodeCustomSections(m); err != nil {
		return nil, err
	}

	if !d.eof {
		return nil, fmt.Errorf("%w: expected end of file at offset %d, but the data continues: 0x%02x...",
			wasm.ErrTrailingBytes, d.offset, d.cur)
	}
	return m, nil
}
