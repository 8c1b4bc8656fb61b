package rowan

import (
	"strings"
	"testing"
)

func TestSceneRoundTrip(t *testing.T) {
	a := NewSprite("player1")
	a.X, a.Y = 1000, 0
	a.Overlap = true

	b := NewSprite("door")
	b.X = 64
	b.Animation = "open"
	b.FPS = 12

	blob := EncodeScene([]Entity{a, b})
	if got := strings.Count(blob, "\n"); got != 2 {
		t.Fatalf("blob has %d record separators, want 2:\n%s", got, blob)
	}

	restored := RestoreScene(blob, func(rec Record) Entity {
		tag, _ := rec.Get(FieldTag)
		return NewSprite(tag.Str())
	})
	if len(restored) != 2 {
		t.Fatalf("restored %d entities, want 2", len(restored))
	}

	for i, orig := range []*Sprite{a, b} {
		origRec := orig.Fields()
		gotRec := restored[i].Fields()
		if !gotRec.Equal(&origRec) {
			t.Errorf("entity %d did not round trip:\n got %v\nwant %v",
				i, gotRec.Names(), origRec.Names())
		}
	}
}

func TestEncodeSceneConcreteLine(t *testing.T) {
	s := NewSprite("player1")
	s.X = 1000
	s.Overlap = true

	blob := EncodeScene([]Entity{s})
	want := "tag=splayer1;x position=n1000;y position=n0;" +
		"scroll factor x=n1;scroll factor y=n1;scale x=n1;scale y=n1;" +
		"antialiasing=bfalse;animation=s;fps=n30;" +
		"character overlap=btrue;finalized=bfalse;\n"
	if blob != want {
		t.Errorf("EncodeScene =\n%q\nwant\n%q", blob, want)
	}
}

func TestApplyRecordSkipsUnsupported(t *testing.T) {
	actor := &fakeActor{sx: 1, sy: 1}
	b := Bind("hero", actor)

	var rec Record
	rec.Set(FieldX, Number(30))
	rec.Set(FieldFPS, Number(60))
	rec.Set(FieldY, Number(40))
	rec.Set(FieldOverlap, Boolean(true))

	skipped := ApplyRecord(rec, b)

	if actor.x != 30 || actor.y != 40 {
		t.Errorf("supported fields around skipped ones not applied: (%v, %v)", actor.x, actor.y)
	}
	if len(skipped) != 2 || skipped[0] != FieldFPS || skipped[1] != FieldOverlap {
		t.Errorf("skipped = %v, want [fps, character overlap]", skipped)
	}
}

func TestRestoreSceneToleratesBadFields(t *testing.T) {
	blob := "tag=sfoo;x position=nBAD;y position=n12;\n" +
		"tag=sbar;x position=n7;\n"

	restored := RestoreScene(blob, func(rec Record) Entity {
		tag, _ := rec.Get(FieldTag)
		return NewSprite(tag.Str())
	})
	if len(restored) != 2 {
		t.Fatalf("restored %d entities, want 2", len(restored))
	}

	foo := restored[0].(*Sprite)
	if foo.X != 0 {
		t.Errorf("malformed x should leave the default, got %v", foo.X)
	}
	if foo.Y != 12 {
		t.Errorf("fields after a malformed one should apply, got y=%v", foo.Y)
	}
	bar := restored[1].(*Sprite)
	if bar.X != 7 {
		t.Errorf("record after a bad field should restore, got x=%v", bar.X)
	}
}

func TestRestoreSceneSkipsNilEntities(t *testing.T) {
	blob := "tag=skeep;\ntag=sdrop;\n"
	restored := RestoreScene(blob, func(rec Record) Entity {
		tag, _ := rec.Get(FieldTag)
		if tag.Str() == "drop" {
			return nil
		}
		return NewSprite(tag.Str())
	})
	if len(restored) != 1 {
		t.Fatalf("restored %d entities, want 1", len(restored))
	}
	if restored[0].(*Sprite).Tag != "keep" {
		t.Errorf("wrong entity kept: %v", restored[0])
	}
}
