// ============================================================================
// smallstring - Small String Optimization for Go
// ============================================================================
//
// Package:     smallstr
// Description: Rendering through fmt and io
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package smallstr

import (
	"fmt"
	"io"
)

// String returns a copy of the contents
func (s *String[B]) String() string {
	s.copyCheck()
	if s.length == 0 {
		return ""
	}
	return string(s.bytes())
}

// WriteTo writes exactly Size() bytes to w
func (s *String[B]) WriteTo(w io.Writer) (int64, error) {
	s.copyCheck()
	if s.length == 0 {
		return 0, nil
	}
	n, err := w.Write(s.bytes())
	return int64(n), err
}

// Format implements fmt.Formatter for %s, %v, %q, %x and %X
func (s *String[B]) Format(f fmt.State, verb rune) {
	s.copyCheck()
	var data []byte
	if s.length > 0 {
		data = s.bytes()
	}

	switch verb {
	case 's', 'q', 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), data)
	case 'v':
		fmt.Fprintf(f, fmt.FormatString(f, 's'), data)
	default:
		fmt.Fprintf(f, "%%!%c(smallstr.String=%s)", verb, data)
	}
}
