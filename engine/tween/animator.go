package tween

import (
	"github.com/spaghettifunk/kinema/engine/core"
	"github.com/spaghettifunk/kinema/engine/math"
)

// Animator moves a transform from one pose to another. Position follows a
// spring while rotation and scale progress linearly over a fixed number of
// frames.
type Animator struct {
	from, to math.Transform
	current  math.Transform

	spring *SpringVec3
	frame  int
	frames int

	// Epsilon bounds the remaining distance and speed for the animation to
	// count as settled.
	Epsilon float32
}

func NewAnimator(from, to math.Transform, cfg core.TweenConfig) *Animator {
	return &Animator{
		from:    from,
		to:      to,
		current: from,
		spring:  NewSpringVec3(cfg.FPS, cfg.Frequency, cfg.Damping),
		frames:  cfg.Frames,
		Epsilon: math.LargeEpsilon,
	}
}

// Current returns the last computed frame, or the start pose before the
// first Step.
func (a *Animator) Current() math.Transform {
	return a.current
}

// Progress returns the linear progress of rotation and scale in [0, 1].
func (a *Animator) Progress() float32 {
	if a.frames <= 0 {
		return 1
	}
	return math.Min(float32(a.frame)/float32(a.frames), 1)
}

// Step computes the next frame. The second result reports whether the
// animation has settled on the target; once settled the target is returned
// exactly.
func (a *Animator) Step() (math.Transform, bool) {
	if a.frame < a.frames {
		a.frame++
	}
	t := a.Progress()

	position := a.spring.Update(a.current.Position, a.to.Position)
	a.current.Rotation.SetSlerp(a.from.Rotation, a.to.Rotation, t)
	a.current.Scale = a.from.Scale.Lerp(a.to.Scale, t)
	a.current.Position = position

	if t >= 1 &&
		position.IsEqual(a.to.Position, a.Epsilon) &&
		a.spring.Velocity().Length() <= a.Epsilon {
		a.current = a.to
		a.spring.Reset()
		return a.current, true
	}
	return a.current, false
}

// Frames returns the next n frames, stopping early once settled. It returns
// no frames for n <= 0.
func (a *Animator) Frames(n int) []math.Transform {
	if n <= 0 {
		return nil
	}
	out := make([]math.Transform, 0, n)
	for i := 0; i < n; i++ {
		frame, settled := a.Step()
		out = append(out, frame)
		if settled {
			break
		}
	}
	return out
}
