package rowan

import "strings"

// Record is an ordered mapping from field name to Value. Field names are
// unique within a record; setting an existing name overwrites the value
// in place so re-serialization is stable. The zero value is an empty
// record ready for use.
type Record struct {
	names  []string
	values map[string]Value
}

// Set stores a field value, appending the name on first write and
// overwriting in place on subsequent writes (last write wins).
func (r *Record) Set(name string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = v
}

// Get returns the value stored under name and whether the field exists.
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.names)
}

// Names returns the field names in insertion order. The slice is a copy.
func (r *Record) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Each calls fn for every field in insertion order.
func (r *Record) Each(fn func(name string, v Value)) {
	for _, name := range r.names {
		fn(name, r.values[name])
	}
}

// Equal reports whether two records hold the same fields with the same
// values in the same order.
func (r *Record) Equal(other *Record) bool {
	if len(r.names) != len(other.names) {
		return false
	}
	for i, name := range r.names {
		if other.names[i] != name {
			return false
		}
		if r.values[name] != other.values[name] {
			return false
		}
	}
	return true
}

// Encode serializes the record as a single line: for each field in
// insertion order, name=Tpayload; with the field separator, record
// separator, and escape character escaped inside names and string
// payloads. The trailing field separator is always emitted.
func (r *Record) Encode() string {
	var b strings.Builder
	for _, name := range r.names {
		writeEscaped(&b, name)
		b.WriteByte(kvSep)
		v := r.values[name]
		if v.Kind() == KindString {
			b.WriteByte(TagString)
			writeEscaped(&b, v.Str())
		} else {
			b.WriteString(EncodeValue(v))
		}
		b.WriteByte(fieldSep)
	}
	return b.String()
}

// DecodeRecord parses one encoded line back into a Record. Unknown field
// names are preserved as ordinary entries and duplicate names keep the
// last value seen. Input past the first record separator is ignored.
func DecodeRecord(line string) Record {
	recs := ParseRecords(line)
	if len(recs) == 0 {
		return Record{}
	}
	return recs[0]
}

// writeEscaped appends s to b, prefixing the escape character before any
// literal field separator, record separator, or escape character.
func writeEscaped(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == fieldSep || c == recordSep || c == escapeChar {
			b.WriteByte(escapeChar)
		}
		b.WriteByte(c)
	}
}
