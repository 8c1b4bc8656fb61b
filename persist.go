package rowan

import (
	"errors"
	"strings"
)

// EncodeScene serializes entities as one record line each, in order, each
// line terminated by the record separator. The result is the full text
// blob the surrounding application writes out; rowan itself performs no
// file I/O.
func EncodeScene(entities []Entity) string {
	var b strings.Builder
	for _, e := range entities {
		rec := e.Fields()
		b.WriteString(rec.Encode())
		b.WriteByte(recordSep)
	}
	return b.String()
}

// ApplyRecord applies every field of rec to e in record order. Fields
// whose setter reports ErrUnsupported are skipped and their names
// returned; one unsupported or malformed field never aborts the rest of
// the record.
func ApplyRecord(rec Record, e Entity) (skipped []string) {
	rec.Each(func(name string, v Value) {
		if err := e.SetField(name, v); errors.Is(err, ErrUnsupported) {
			skipped = append(skipped, name)
		}
	})
	return skipped
}

// RestoreScene parses a scene blob and rebuilds its entities. For each
// record, build is called to supply the target entity (typically a fresh
// [Sprite], or a [BoundSprite] looked up by the record's tag); returning
// nil skips that record. Every non-nil entity has the record's fields
// applied and is included in the result. A bad record never discards the
// rest of the scene.
func RestoreScene(text string, build func(rec Record) Entity) []Entity {
	recs := ParseRecords(text)
	out := make([]Entity, 0, len(recs))
	for _, rec := range recs {
		e := build(rec)
		if e == nil {
			continue
		}
		ApplyRecord(rec, e)
		out = append(out, e)
	}
	return out
}
