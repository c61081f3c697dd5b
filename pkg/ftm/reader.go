package ftm

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
)

// ScanRecords streams record objects from r and calls fn for each one,
// stopping early when fn returns false.
//
// Two input shapes are supported without ever buffering the whole stream:
// a single top-level JSON array of objects, or a sequence of concatenated
// top-level JSON values (JSON lines). Only a fixed-size prefix is inspected
// to pick the mode. Elements that are not objects are skipped, and malformed
// trailing bytes end the scan without an error.
func ScanRecords(r io.Reader, fn func(rec map[string]any) bool) error {
	br := bufio.NewReaderSize(r, 64*1024)

	first, err := firstNonSpace(br)
	if err != nil {
		// Empty input, or an I/O failure before any data.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	dec := json.NewDecoder(br)
	if first == '[' {
		return scanArray(dec, fn)
	}
	return scanConcatenated(dec, fn)
}

// firstNonSpace peeks past leading JSON whitespace and reports the first
// payload byte without consuming it.
func firstNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			if err := br.UnreadByte(); err != nil {
				return 0, err
			}
			return b, nil
		}
	}
}

func scanArray(dec *json.Decoder, fn func(rec map[string]any) bool) error {
	if _, err := dec.Token(); err != nil {
		return eosOrErr(err)
	}
	for dec.More() {
		var v any
		if err := dec.Decode(&v); err != nil {
			return eosOrErr(err)
		}
		rec, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if !fn(rec) {
			return nil
		}
	}
	// Closing bracket; anything after it is ignored.
	if _, err := dec.Token(); err != nil {
		return eosOrErr(err)
	}
	return nil
}

func scanConcatenated(dec *json.Decoder, fn func(rec map[string]any) bool) error {
	for {
		var v any
		if err := dec.Decode(&v); err != nil {
			return eosOrErr(err)
		}
		rec, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if !fn(rec) {
			return nil
		}
	}
}

// eosOrErr maps end-of-stream conditions, including a malformed tail after
// the last complete value, to a clean termination.
func eosOrErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return nil
	}
	return err
}
