package diagram

import "strings"

// LineBreak is the Graphviz escape that ends a line and left-justifies it.
// It must reach the renderer literally.
const LineBreak = `\l`

// compartment joins lines into one record field, each followed by LineBreak.
// An empty list yields an empty field.
func compartment(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(escapeRecordText(line))
		b.WriteString(LineBreak)
	}
	return b.String()
}

// escapeRecordText protects characters that would otherwise be read as record
// structure (fields, ports), end the quoted label or swallow the LineBreak
// that follows the line. A backslash always stands for itself.
func escapeRecordText(s string) string {
	if !strings.ContainsAny(s, `{}|<>"\`) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '{', '}', '|', '<', '>', '"', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// recordLabel assembles the compartments into a vertical record label.
func recordLabel(compartments []string) string {
	return "{" + strings.Join(compartments, "|") + "}"
}
