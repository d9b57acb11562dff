package binary

import (
	"fmt"

	"github.com/patvarilly/wasmtoolbox/wasm"
)

// decodeSection reads a section's id byte and declared u32 size, invokes
// body with that size, and then verifies that body consumed exactly the
// declared number of bytes.
func (d *decoder) decodeSection(id wasm.SectionID, body func(size uint32) error) error {
	if err := d.matchByte(id); err != nil {
		return fmt.Errorf("section id: %w", err)
	}
	declaredSize, err := d.decodeU32()
	if err != nil {
		return fmt.Errorf("size of section id=%d: %w", id, err)
	}
	startOffset := d.offset

	if err := body(declaredSize); err != nil {
		return fmt.Errorf("section id=%d: %w", id, err)
	}

	if actualSize := d.offset - startOffset; actualSize != int64(declaredSize) {
		return fmt.Errorf("%w: section id=%d in byte range [%d,%d): declared size %d, actual size %d",
			wasm.ErrSectionSizeMismatch, id, startOffset, d.offset, declaredSize, actualSize)
	}
	return nil
}

func (d *decoder) decodeTypeSection(m *wasm.Module) error {
	return d.decodeSection(wasm.SectionIDType, func(uint32) error {
		return d.decodeVec(func(i uint32) error {
			ft, err := d.decodeFuncType()
			if err != nil {
				return fmt.Errorf("type[%d]: %w", i, err)
			}
			m.TypeSection = append(m.TypeSection, ft)
			return nil
		})
	})
}

func (d *decoder) decodeImportSection(m *wasm.Module) error {
	return d.decodeSection(wasm.SectionIDImport, func(uint32) error {
		return d.decodeVec(func(i uint32) error {
			imp, err := d.decodeImport()
			if err != nil {
				return fmt.Errorf("import[%d]: %w", i, err)
			}
			m.ImportSection = append(m.ImportSection, imp)
			return nil
		})
	})
}

func (d *decoder) decodeFunctionSection() error {
	return d.decodeSection(wasm.SectionIDFunction, func(uint32) error {
		return d.decodeVec(func(uint32) error {
			_, err := d.decodeU32() // typeidx
			return err
		})
	})
}

func (d *decoder) decodeTableSection() error {
	return d.decodeSection(wasm.SectionIDTable, func(uint32) error {
		return d.decodeVec(func(uint32) error {
			return d.decodeTableType()
		})
	})
}

func (d *decoder) decodeMemorySection() error {
	return d.decodeSection(wasm.SectionIDMemory, func(uint32) error {
		return d.decodeVec(func(uint32) error {
			return d.decodeMemType()
		})
	})
}

func (d *decoder) decodeGlobalSection() error {
	return d.decodeSection(wasm.SectionIDGlobal, func(uint32) error {
		return d.decodeVec(func(uint32) error {
			if err := d.decodeGlobalType(); err != nil {
				return err
			}
			return d.decodeExpr()
		})
	})
}

func (d *decoder) decodeExportSection() error {
	return d.decodeSection(wasm.SectionIDExport, func(uint32) error {
		return d.decodeVec(func(i uint32) error {
			if _, err := d.decodeName(); err != nil {
				return fmt.Errorf("export[%d] name: %w", i, err)
			}
			return d.decodeExportDesc()
		})
	})
}

// decodeExportDesc validates the descriptor tag (including tag exports
// from the exception-handling extension) and its index.
func (d *decoder) decodeExportDesc() error {
	offset := d.offset
	b, err := d.readByte()
	if err != nil {
		return err
	}
	switch b {
	case 0x00, 0x01, 0x02, 0x03, 0x04: // func, table, mem, global, tag
		_, err := d.decodeU32()
		return err
	}
	return fmt.Errorf("%w: exportdesc 0x%02x at offset %d", wasm.ErrUnknownTag, b, offset)
}

func (d *decoder) decodeStartSection() error {
	return d.decodeSection(wasm.SectionIDStart, func(uint32) error {
		_, err := d.decodeU32() // funcidx
		return err
	})
}

func (d *decoder) decodeElementSection() error {
	return d.decodeSection(wasm.SectionIDElement, func(uint32) error {
		return d.decodeVec(func(uint32) error {
			return d.decodeElement()
		})
	})
}

func (d *decoder) decodeElement() error {
	offset := d.offset
	discriminant, err := d.decodeU32()
	if err != nil {
		return err
	}
	switch discriminant {
	case 0: // active, table 0, funcidx vector
		if err := d.decodeExpr(); err != nil {
			return err
		}
		return d.decodeVec(func(uint32) error {
			_, err := d.decodeU32() // funcidx
			return err
		})
	}
	return fmt.Errorf("%w: element discriminant %d at offset %d", wasm.ErrUnknownTag, discriminant, offset)
}

func (d *decoder) decodeCodeSection() error {
	return d.decodeSection(wasm.SectionIDCode, func(uint32) error {
		return d.decodeVec(func(i uint32) error {
			if err := d.decodeCode(); err != nil {
				return fmt.Errorf("code[%d]: %w", i, err)
			}
			return nil
		})
	})
}

// decodeCode reads one code entry: the declared size, then the locals and
// body. The per-entry size is read but not compared with the bytes the
// entry occupies; only the section's total size is verified.
func (d *decoder) decodeCode() error {
	if _, err := d.decodeU32(); err != nil { // size
		return err
	}
	if err := d.decodeVec(func(uint32) error {
		if _, err := d.decodeU32(); err != nil { // repeat count
			return err
		}
		_, err := d.decodeValType()
		return err
	}); err != nil {
		return fmt.Errorf("locals: %w", err)
	}
	return d.decodeExpr()
}

func (d *decoder) decodeDataSection() error {
	return d.decodeSection(wasm.SectionIDData, func(uint32) error {
		return d.decodeVec(func(uint32) error {
			return d.decodeData()
		})
	})
}

func (d *decoder) decodeData() error {
	offset := d.offset
	discriminant, err := d.decodeU32()
	if err != nil {
		return err
	}
	switch discriminant {
	case 0: // active, implicit memory index 0
		if err := d.decodeExpr(); err != nil {
			return err
		}
		return d.skipDataBytes()
	case 1: // passive
		return d.skipDataBytes()
	case 2: // active, explicit memory index
		if _, err := d.decodeU32(); err != nil { // memidx
			return err
		}
		if err := d.decodeExpr(); err != nil {
			return err
		}
		return d.skipDataBytes()
	}
	return fmt.Errorf("%w: data discriminant %d at offset %d", wasm.ErrUnknownTag, discriminant, offset)
}

func (d *decoder) skipDataBytes() error {
	n, err := d.decodeU32()
	if err != nil {
		return err
	}
	return d.skipBytes(int64(n))
}

func (d *decoder) decodeDataCountSection() error {
	return d.decodeSection(wasm.SectionIDDataCount, func(uint32) error {
		_, err := d.decodeU32() // n
		return err
	})
}

func (d *decoder) decodeTagSection() error {
	return d.decodeSection(wasm.SectionIDTag, func(uint32) error {
		return d.decodeVec(func(uint32) error {
			return d.decodeTag()
		})
	})
}
