package wasm

import "errors"

// Decode failures wrap one of these sentinel values so that callers can
// distinguish the reason with errors.Is; the wrapping message carries the
// byte offset where the failure was detected.
var (
	ErrUnexpectedEOF       = errors.New("unexpected end of file")
	ErrInvalidByte         = errors.New("invalid byte")
	ErrInvalidLEB128       = errors.New("invalid leb128 encoding")
	ErrUnknownTag          = errors.New("unknown tag")
	ErrUnknownOpcode       = errors.New("unknown opcode")
	ErrSectionSizeMismatch = errors.New("section size mismatch")
	ErrTrailingBytes       = errors.New("trailing bytes after last section")
)
