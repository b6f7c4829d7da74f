package tween

import (
	"github.com/charmbracelet/harmonica"
	"github.com/spaghettifunk/kinema/engine/math"
)

// SpringVec3 drives a vector towards a target with one damped spring per
// axis. All axes share the same frame delta, frequency and damping.
type SpringVec3 struct {
	spring   harmonica.Spring
	velocity [3]float64
}

// NewSpringVec3 creates a spring stepped fps times per second. A damping
// below 1 overshoots the target, 1 is critically damped.
func NewSpringVec3(fps int, frequency, damping float64) *SpringVec3 {
	return &SpringVec3{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances one frame and returns the new position.
func (s *SpringVec3) Update(current, target math.Vec3) math.Vec3 {
	pos := [3]float64{float64(current.X), float64(current.Y), float64(current.Z)}
	dst := [3]float64{float64(target.X), float64(target.Y), float64(target.Z)}
	for i := range pos {
		pos[i], s.velocity[i] = s.spring.Update(pos[i], s.velocity[i], dst[i])
	}
	return math.NewVec3(float32(pos[0]), float32(pos[1]), float32(pos[2]))
}

// Velocity returns the velocity after the last update, in units per second.
func (s *SpringVec3) Velocity() math.Vec3 {
	return math.NewVec3(float32(s.velocity[0]), float32(s.velocity[1]), float32(s.velocity[2]))
}

// Reset stops the spring.
func (s *SpringVec3) Reset() {
	s.velocity = [3]float64{}
}
