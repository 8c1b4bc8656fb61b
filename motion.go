package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Glide animates a Sprite's position to a target over a fixed duration.
// Editors use it to snap entities smoothly after a load or a large nudge.
// Create with [NewGlide] and call Update once per tick.
type Glide struct {
	sprite *Sprite
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// NewGlide starts a glide from the sprite's current position to (x, y)
// over duration seconds using the given ease function.
func NewGlide(s *Sprite, x, y float64, duration float32, easeFn ease.TweenFunc) *Glide {
	return &Glide{
		sprite: s,
		tweenX: gween.New(float32(s.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(s.Y), float32(y), duration, easeFn),
	}
}

// Update advances the glide by dt seconds, writing the interpolated
// position onto the sprite. It reports whether the glide has finished;
// further calls after that are no-ops.
func (g *Glide) Update(dt float32) bool {
	if !g.doneX {
		val, done := g.tweenX.Update(dt)
		g.sprite.X = float64(val)
		g.doneX = done
	}
	if !g.doneY {
		val, done := g.tweenY.Update(dt)
		g.sprite.Y = float64(val)
		g.doneY = done
	}
	return g.doneX && g.doneY
}
