package rowan

import "strconv"

// EncodeValue serializes a Value as its one-character type tag followed by
// the canonical text form of the payload. Absent encodes as the tag alone.
// The result contains no escaping; [Record.Encode] escapes structural
// characters when a value is embedded in a field.
func EncodeValue(v Value) string {
	switch v.kind {
	case KindString:
		return string(TagString) + v.str
	case KindNumber:
		return string(TagNumber) + strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBoolean:
		if v.bval {
			return string(TagBoolean) + "true"
		}
		return string(TagBoolean) + "false"
	default:
		return string(TagAbsent)
	}
}

// DecodeValue interprets payload under the given type tag. Decoding never
// fails: a malformed number degrades to Absent, a boolean payload other
// than "true" or "1" decodes to false, and an unrecognized tag decodes to
// Absent. This keeps the format tolerant of partially written or
// hand-edited input.
func DecodeValue(tag byte, payload string) Value {
	switch tag {
	case TagString:
		return String(payload)
	case TagNumber:
		f, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			return Absent()
		}
		return Number(f)
	case TagBoolean:
		return Boolean(payload == "true" || payload == "1")
	default:
		return Absent()
	}
}
