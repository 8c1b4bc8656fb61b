package rowan

import (
	"errors"
	"fmt"
)

// Scene record field names. These are the wire format and must not change.
const (
	FieldTag       = "tag"
	FieldX         = "x position"
	FieldY         = "y position"
	FieldScrollX   = "scroll factor x"
	FieldScrollY   = "scroll factor y"
	FieldScaleX    = "scale x"
	FieldScaleY    = "scale y"
	FieldAntialias = "antialiasing"
	FieldAnimation = "animation"
	FieldFPS       = "fps"
	FieldOverlap   = "character overlap"
	FieldFinalized = "finalized"
)

// ErrUnsupported is reported by an entity setter whose field lies outside
// the entity's capability set. Callers branch on it with errors.Is to
// skip the field during restore instead of corrupting entity state.
var ErrUnsupported = errors.New("unsupported operation")

// Entity is a positioned visual element the codec can persist and
// restore. Rowan ships two variants: [Sprite] supports the full field
// set, [BoundSprite] a strict subset.
type Entity interface {
	// SetField applies one decoded field value. Setters for fields
	// outside the entity's capability set fail with an error wrapping
	// ErrUnsupported. A value whose kind does not match the field (for
	// example an Absent from a malformed payload) leaves the field
	// unchanged without error.
	SetField(name string, v Value) error
	// Fields snapshots the entity's persistable state as a Record in
	// canonical field order.
	Fields() Record
}

// unsupportedField wraps ErrUnsupported with the entity variant and field
// name for diagnostics.
func unsupportedField(entity, field string) error {
	return fmt.Errorf("%s: set %q: %w", entity, field, ErrUnsupported)
}

// --- Sprite ---

// Sprite is the generic scene entity with the full capability set. A
// single flat struct with exported fields; mutate directly or through
// SetField.
type Sprite struct {
	Tag           string
	X, Y          float64
	ScrollFactorX float64
	ScrollFactorY float64
	ScaleX        float64
	ScaleY        float64
	Antialias     bool
	Animation     string
	FPS           float64
	Overlap       bool
	Finalized     bool
}

// NewSprite creates a Sprite with neutral transform defaults.
func NewSprite(tag string) *Sprite {
	return &Sprite{
		Tag:           tag,
		ScrollFactorX: 1,
		ScrollFactorY: 1,
		ScaleX:        1,
		ScaleY:        1,
		FPS:           30,
	}
}

// SetField applies one decoded field value. Every scene field is in the
// Sprite capability set; unknown names fail with ErrUnsupported.
func (s *Sprite) SetField(name string, v Value) error {
	switch name {
	case FieldTag:
		setStr(&s.Tag, v)
	case FieldX:
		setNum(&s.X, v)
	case FieldY:
		setNum(&s.Y, v)
	case FieldScrollX:
		setNum(&s.ScrollFactorX, v)
	case FieldScrollY:
		setNum(&s.ScrollFactorY, v)
	case FieldScaleX:
		setNum(&s.ScaleX, v)
	case FieldScaleY:
		setNum(&s.ScaleY, v)
	case FieldAntialias:
		setBool(&s.Antialias, v)
	case FieldAnimation:
		setStr(&s.Animation, v)
	case FieldFPS:
		setNum(&s.FPS, v)
	case FieldOverlap:
		setBool(&s.Overlap, v)
	case FieldFinalized:
		setBool(&s.Finalized, v)
	default:
		return unsupportedField("sprite", name)
	}
	return nil
}

// Fields snapshots the sprite as a Record in canonical field order.
func (s *Sprite) Fields() Record {
	var r Record
	r.Set(FieldTag, String(s.Tag))
	r.Set(FieldX, Number(s.X))
	r.Set(FieldY, Number(s.Y))
	r.Set(FieldScrollX, Number(s.ScrollFactorX))
	r.Set(FieldScrollY, Number(s.ScrollFactorY))
	r.Set(FieldScaleX, Number(s.ScaleX))
	r.Set(FieldScaleY, Number(s.ScaleY))
	r.Set(FieldAntialias, Boolean(s.Antialias))
	r.Set(FieldAnimation, String(s.Animation))
	r.Set(FieldFPS, Number(s.FPS))
	r.Set(FieldOverlap, Boolean(s.Overlap))
	r.Set(FieldFinalized, Boolean(s.Finalized))
	return r
}

// --- BoundSprite ---

// Actor is the surface a BoundSprite needs from a pre-existing engine
// object: position, scale, and antialiasing are mutable; everything else
// about the actor is owned by the engine.
type Actor interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Scale() (sx, sy float64)
	SetScale(sx, sy float64)
	Antialias() bool
	SetAntialias(on bool)
}

// BoundSprite persists an actor that already exists in the engine. Only
// position, scale, and antialiasing are settable; the tag is the actor's
// fixed identity and image, scroll factor, fps, overlap, and finalized
// state belong to the engine. Setters outside this subset fail with
// ErrUnsupported rather than silently succeeding.
type BoundSprite struct {
	tag   string
	actor Actor
}

// Bind wraps an existing actor for persistence under the given tag.
func Bind(tag string, actor Actor) *BoundSprite {
	return &BoundSprite{tag: tag, actor: actor}
}

// Tag returns the fixed identity of the bound actor.
func (b *BoundSprite) Tag() string {
	return b.tag
}

// SetField applies one decoded field value to the underlying actor.
func (b *BoundSprite) SetField(name string, v Value) error {
	switch name {
	case FieldX:
		x, y := b.actor.Position()
		if setNum(&x, v) {
			b.actor.SetPosition(x, y)
		}
	case FieldY:
		x, y := b.actor.Position()
		if setNum(&y, v) {
			b.actor.SetPosition(x, y)
		}
	case FieldScaleX:
		sx, sy := b.actor.Scale()
		if setNum(&sx, v) {
			b.actor.SetScale(sx, sy)
		}
	case FieldScaleY:
		sx, sy := b.actor.Scale()
		if setNum(&sy, v) {
			b.actor.SetScale(sx, sy)
		}
	case FieldAntialias:
		on := b.actor.Antialias()
		if setBool(&on, v) {
			b.actor.SetAntialias(on)
		}
	default:
		return unsupportedField("bound sprite", name)
	}
	return nil
}

// Fields snapshots the settable subset plus the tag.
func (b *BoundSprite) Fields() Record {
	var r Record
	x, y := b.actor.Position()
	sx, sy := b.actor.Scale()
	r.Set(FieldTag, String(b.tag))
	r.Set(FieldX, Number(x))
	r.Set(FieldY, Number(y))
	r.Set(FieldScaleX, Number(sx))
	r.Set(FieldScaleY, Number(sy))
	r.Set(FieldAntialias, Boolean(b.actor.Antialias()))
	return r
}

// --- Field coercion ---

// setNum stores a Number value and reports whether it applied. Any other
// kind leaves the destination unchanged.
func setNum(dst *float64, v Value) bool {
	if v.Kind() != KindNumber {
		return false
	}
	*dst = v.Num()
	return true
}

// setStr stores a String value, leaving the destination unchanged for
// other kinds.
func setStr(dst *string, v Value) bool {
	if v.Kind() != KindString {
		return false
	}
	*dst = v.Str()
	return true
}

// setBool stores a Boolean value, leaving the destination unchanged for
// other kinds.
func setBool(dst *bool, v Value) bool {
	if v.Kind() != KindBoolean {
		return false
	}
	*dst = v.Bool()
	return true
}
