package rowan

import "strings"

// ParseRecords scans a text blob into its sequence of Records in a single
// forward pass, one byte at a time, with no backtracking.
//
// The scanner keeps a field name buffer, a payload buffer, an
// assigning-value flag, a pending type tag (unset until the first payload
// byte, which is consumed as the tag rather than as data), and an escape
// flag. Per byte the rules apply in this precedence order: a pending
// escape wins over everything and appends the byte literally; an escape
// character arms the escape flag; an awaited tag consumes the byte; the
// key/value separator switches to value assignment; the field separator
// closes the open field; the record separator closes the open field and
// pushes the record (even when empty, to preserve record count); anything
// else accumulates into the active buffer.
func ParseRecords(text string) []Record {
	var out []Record
	var rec Record
	var name, payload strings.Builder
	var assigning, escaped, tagSet bool
	var tag byte

	// closeField decodes and stores the open field, if any, and resets
	// per-field state. A field is open once a name byte has accumulated or
	// the key/value separator was seen.
	closeField := func() {
		if !assigning && name.Len() == 0 {
			return
		}
		t := byte(TagAbsent)
		if tagSet {
			t = tag
		}
		rec.Set(name.String(), DecodeValue(t, payload.String()))
		name.Reset()
		payload.Reset()
		assigning = false
		tagSet = false
		tag = 0
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			if assigning {
				payload.WriteByte(c)
			} else {
				name.WriteByte(c)
			}
			escaped = false
		case c == escapeChar:
			escaped = true
		case assigning && !tagSet:
			tag = c
			tagSet = true
		case c == kvSep && !assigning:
			assigning = true
		case c == fieldSep:
			closeField()
		case c == recordSep:
			closeField()
			out = append(out, rec)
			rec = Record{}
		default:
			if assigning {
				payload.WriteByte(c)
			} else {
				name.WriteByte(c)
			}
		}
	}

	// An escape character at the very end of input escapes nothing; it is
	// discarded and the open field closes with what accumulated before it.
	closeField()
	if rec.Len() > 0 {
		out = append(out, rec)
	}
	return out
}
