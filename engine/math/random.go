package math

import (
	"golang.org/x/exp/rand"
)

// randomFloat returns a value in [-1, 1). A nil source falls back to the
// package-level generator of x/exp/rand, which is safe for concurrent use.
func randomFloat(r *rand.Rand) float32 {
	if r == nil {
		return rand.Float32()*2.0 - 1.0
	}
	return r.Float32()*2.0 - 1.0
}

/**
 * @brief Returns a uniformly distributed random point inside the unit circle.
 * Uses rejection sampling over the enclosing square.
 *
 * @param r The random source to draw from. Pass nil to use the shared source.
 * @return A point with a length of at most 1.
 */
func NewVec2RandomPointInCircle(r *rand.Rand) Vec2 {
	for {
		p := Vec2{X: randomFloat(r), Y: randomFloat(r)}
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

/**
 * @brief Returns a random direction of unit length in 2D.
 *
 * @param r The random source to draw from. Pass nil to use the shared source.
 */
func NewVec2RandomDirection(r *rand.Rand) Vec2 {
	for {
		p := NewVec2RandomPointInCircle(r)
		if p.NormalizeIfNotZero(NewVec2Right(), SmallEpsilon) {
			return p
		}
	}
}

/**
 * @brief Returns a uniformly distributed random point inside the unit sphere.
 * Uses rejection sampling over the enclosing cube.
 *
 * @param r The random source to draw from. Pass nil to use the shared source.
 * @return A point with a length of at most 1.
 */
func NewVec3RandomPointInSphere(r *rand.Rand) Vec3 {
	for {
		p := Vec3{X: randomFloat(r), Y: randomFloat(r), Z: randomFloat(r)}
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

/**
 * @brief Returns a random direction of unit length in 3D. The result is
 * uniformly distributed over the sphere surface.
 *
 * @param r The random source to draw from. Pass nil to use the shared source.
 */
func NewVec3RandomDirection(r *rand.Rand) Vec3 {
	for {
		p := NewVec3RandomPointInSphere(r)
		if p.NormalizeIfNotZero(NewVec3Right(), SmallEpsilon) {
			return p
		}
	}
}
