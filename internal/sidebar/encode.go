// internal/sidebar/encode.go
package sidebar

import (
	"bytes"
	"encoding/json"
)

// Encode serializes the Index to its canonical single-line JSON object:
// sections ordered by the fixed category order (unknown categories after the
// known ones, alphabetically), entries exactly as authored. The output is
// stable: encoding the result of parsing it yields the same bytes.
func (x *Index) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range x.sortedSections() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(&buf, string(s.Category))
		buf.WriteString(":[")
		for j, e := range s.Entries {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('[')
			writeJSONString(&buf, e.Name)
			buf.WriteByte(',')
			writeJSONString(&buf, e.Description)
			buf.WriteByte(']')
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// EncodeWrapped serializes the Index as the full call literal the generator
// emits, including the trailing semicolon.
func (x *Index) EncodeWrapped() []byte {
	var buf bytes.Buffer
	buf.WriteString(callPrefix)
	buf.Write(x.Encode())
	buf.WriteString(");")
	return buf.Bytes()
}

// writeJSONString appends the JSON encoding of s without the default HTML
// escaping, so markup in descriptions survives as written. Keeping the
// escaping rules in one place guarantees the canonical form stays
// byte-stable.
func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encode on a string cannot fail; it appends a newline we do not want.
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1)
}
