package lwgl

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates up to 2 float64 transform fields on an Entity
// simultaneously. Create one via the convenience constructors
// (TweenPosition, TweenScale, TweenRotation, TweenSkew), attach it with
// Entity.AddComponent, and the stage's component pass advances it every
// frame. If the target entity is disposed, the tween stops immediately.
//
// A finished tween sets Done and becomes a no-op; detach it with
// Entity.RemoveComponent when convenient.
type Tween struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Entity
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. The written values take effect in the next frame's transform pass.
// If the target entity has been disposed, Done is set and no writes occur.
func (g *Tween) Update(dt float64) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a Tween that animates the entity's local X and Y to
// the given target coordinates over the specified duration using the easing
// function.
func TweenPosition(e *Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *Tween {
	g := &Tween{count: 2, target: e}
	g.tweens[0] = gween.New(float32(e.Transform.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(e.Transform.Y), float32(toY), duration, fn)
	g.fields[0] = &e.Transform.X
	g.fields[1] = &e.Transform.Y
	return g
}

// TweenScale creates a Tween that animates the entity's ScaleX and ScaleY to
// the given target values over the specified duration using the easing
// function.
func TweenScale(e *Entity, toSX, toSY float64, duration float32, fn ease.TweenFunc) *Tween {
	g := &Tween{count: 2, target: e}
	g.tweens[0] = gween.New(float32(e.Transform.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(e.Transform.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &e.Transform.ScaleX
	g.fields[1] = &e.Transform.ScaleY
	return g
}

// TweenRotation creates a Tween that animates the entity's Rotation to the
// target value (radians) over the specified duration using the easing
// function.
func TweenRotation(e *Entity, to float64, duration float32, fn ease.TweenFunc) *Tween {
	g := &Tween{count: 1, target: e}
	g.tweens[0] = gween.New(float32(e.Transform.Rotation), float32(to), duration, fn)
	g.fields[0] = &e.Transform.Rotation
	return g
}

// TweenSkew creates a Tween that animates the entity's SkewX and SkewY to
// the given target values over the specified duration using the easing
// function.
func TweenSkew(e *Entity, toSX, toSY float64, duration float32, fn ease.TweenFunc) *Tween {
	g := &Tween{count: 2, target: e}
	g.tweens[0] = gween.New(float32(e.Transform.SkewX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(e.Transform.SkewY), float32(toSY), duration, fn)
	g.fields[0] = &e.Transform.SkewX
	g.fields[1] = &e.Transform.SkewY
	return g
}
