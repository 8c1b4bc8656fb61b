package rowan

import "testing"

func TestRecordEncodeConcrete(t *testing.T) {
	var r Record
	r.Set("tag", String("foo"))
	r.Set("x position", Number(5))
	r.Set("antialiasing", Boolean(true))

	want := "tag=sfoo;x position=n5;antialiasing=btrue;"
	if got := r.Encode(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}

	back := DecodeRecord(want)
	if !back.Equal(&r) {
		t.Errorf("DecodeRecord(%q) does not match the original record", want)
	}
	if v, _ := back.Get("x position"); v.Num() != 5 {
		t.Errorf("x position = %v, want 5", v)
	}
}

func TestRecordEscapingIdempotence(t *testing.T) {
	payloads := []string{
		"semi;colon",
		"back\\slash",
		"new\nline",
		";;\\\\\n\n",
		"mixed; \\ and \n together",
		"equals = are fine in payloads",
		"trailing;",
	}
	for _, s := range payloads {
		var r Record
		r.Set("k", String(s))
		line := r.Encode()
		back := DecodeRecord(line)
		if !back.Equal(&r) {
			t.Errorf("round trip of payload %q via %q failed: got %v", s, line, back)
		}
	}
}

func TestRecordEscapedNames(t *testing.T) {
	var r Record
	r.Set("odd;name\\with\nstuff", Number(1))
	back := DecodeRecord(r.Encode())
	if v, ok := back.Get("odd;name\\with\nstuff"); !ok || v.Num() != 1 {
		t.Errorf("escaped field name did not round trip: %v", back.Names())
	}
}

func TestRecordDuplicateLastWins(t *testing.T) {
	back := DecodeRecord("k=sone;k=stwo;")
	if back.Len() != 1 {
		t.Fatalf("expected 1 field, got %d", back.Len())
	}
	if v, _ := back.Get("k"); v.Str() != "two" {
		t.Errorf("duplicate field should keep the last value, got %q", v.Str())
	}
}

func TestRecordSetOverwritePreservesOrder(t *testing.T) {
	var r Record
	r.Set("a", Number(1))
	r.Set("b", Number(2))
	r.Set("a", Number(3))

	names := r.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names() = %v, want [a b]", names)
	}
	if v, _ := r.Get("a"); v.Num() != 3 {
		t.Errorf("overwrite should win: a = %v", v)
	}
}

func TestRecordEach(t *testing.T) {
	var r Record
	r.Set("x", Number(1))
	r.Set("y", Number(2))

	var visited []string
	r.Each(func(name string, v Value) {
		visited = append(visited, name)
	})
	if len(visited) != 2 || visited[0] != "x" || visited[1] != "y" {
		t.Errorf("Each visited %v, want [x y]", visited)
	}
}

func TestDecodeRecordEmpty(t *testing.T) {
	if r := DecodeRecord(""); r.Len() != 0 {
		t.Errorf("empty input should decode to an empty record, got %d fields", r.Len())
	}
}

func TestRecordUnknownFieldPreserved(t *testing.T) {
	back := DecodeRecord("made up field=s42;tag=sfoo;")
	if v, ok := back.Get("made up field"); !ok || v.Str() != "42" {
		t.Error("unknown field names should be preserved as ordinary entries")
	}
}
