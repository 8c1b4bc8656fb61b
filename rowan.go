package rowan

// --- Wire format constants ---

// The flat text format uses one line per record. Fields are written as
// name=Tpayload; where T is a single-character type tag. A literal
// occurrence of the field separator, the record separator, or the escape
// character inside a name or string payload is escaped with escapeChar.
const (
	fieldSep   = ';'
	kvSep      = '='
	recordSep  = '\n'
	escapeChar = '\\'
)

// Type tags. Exactly one tag prefixes every encoded field payload; the
// tag alone decides how the payload decodes, independent of its content.
const (
	TagString  = 's' // payload is the string verbatim
	TagNumber  = 'n' // payload is a decimal float
	TagBoolean = 'b' // payload is "true"/"false" ("1" also decodes true)
	TagAbsent  = 'x' // no payload
)

// --- Value ---

// ValueKind identifies which variant a Value holds.
type ValueKind uint8

const (
	KindAbsent  ValueKind = iota // no value
	KindString                   // text
	KindNumber                   // float64
	KindBoolean                  // bool
)

// Value is a tagged union over the four scalar variants the wire format
// carries. The zero value is Absent.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	bval bool
}

// String returns a Value holding text.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a Value holding a float64.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Boolean returns a Value holding a bool.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, bval: b}
}

// Absent returns the Value representing no value. Source values with no
// representable variant encode as Absent.
func Absent() Value {
	return Value{}
}

// Kind returns which variant v holds.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsAbsent reports whether v holds no value.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Str returns the text payload, or "" for non-string variants.
func (v Value) Str() string {
	return v.str
}

// Num returns the numeric payload, or 0 for non-number variants.
func (v Value) Num() float64 {
	return v.num
}

// Bool returns the boolean payload, or false for non-boolean variants.
func (v Value) Bool() bool {
	return v.bval
}

// Equal reports whether two Values hold the same variant and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}
