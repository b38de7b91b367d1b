// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package graphviz

import (
	"bufio"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Attributes maps Graphviz attribute names to values.
type Attributes = map[string]Value

// Value is a Graphviz attribute value ready to be written.
type Value interface {
	attributeValue() string
}

// Val converts a plain string or int into a Value. Strings are quoted and
// escaped when they are not valid bare identifiers.
func Val[T string | int](from T) Value {
	switch from := any(from).(type) {
	case string:
		return stringValue(from)
	case int:
		return stringValue(strconv.Itoa(from))
	default:
		panic("unreachable")
	}
}

type stringValue string

func (s stringValue) attributeValue() string {
	return quote(string(s))
}

// EscString is a Graphviz escString. Backslash sequences such as \l, \r and
// \n are directives to the renderer and are written verbatim; only double
// quotes are escaped.
type EscString string

func (s EscString) attributeValue() string {
	var buf strings.Builder
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			// Keep the escape pair intact so an escaped quote is not doubled.
			buf.WriteByte(c)
			buf.WriteByte(s[i+1])
			i++
		case c == '\\':
			// A lone trailing backslash would escape the closing quote.
			buf.WriteString(`\\`)
		case c == '"':
			buf.WriteString(`\"`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

func writeAttrList(a Attributes, w *bufio.Writer) error {
	// Sorted for deterministic output.
	names := slices.Collect(maps.Keys(a))
	slices.Sort(names)
	for i, name := range names {
		if i != 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := writeAttr(name, a[name], w); err != nil {
			return err
		}
	}
	return nil
}

func writeAttr(name string, val Value, w *bufio.Writer) error {
	if _, err := w.WriteString(quote(name)); err != nil {
		return err
	}
	if err := w.WriteByte('='); err != nil {
		return err
	}
	_, err := w.WriteString(val.attributeValue())
	return err
}

func quote(s string) string {
	// Bare identifiers and numerals stay unquoted for readability. The
	// keywords are forced into quotes since Graphviz treats them specially.
	if (validUnquotedID.MatchString(s) || validNumeral.MatchString(s)) && !isKeyword(s) {
		return s
	}
	var buf strings.Builder
	buf.WriteByte('"')
	for _, c := range s {
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			buf.WriteRune(c)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}

func isKeyword(s string) bool {
	switch strings.ToLower(s) {
	case "node", "edge", "graph", "digraph", "subgraph", "strict":
		return true
	}
	return false
}

var (
	validUnquotedID = regexp.MustCompile(`^[a-zA-Z\200-\377_][a-zA-Z0-9\200-\377_]*$`)
	validNumeral    = regexp.MustCompile(`^-?(\.[0-9]+|[0-9]+(\.[0-9]*)?)$`)
)
