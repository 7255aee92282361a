// Package renderer draws the procedural scrolling background.
package renderer

import (
	"math"

	"github.com/aquilax/go-perlin"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// perlinIterations is the octave count passed to the noise generator.
const perlinIterations = 3

// Background renders layered hill silhouettes generated from 1D perlin
// noise. Each layer scrolls at a different speed for a parallax effect.
// Deterministic for a given seed.
type Background struct {
	noise  *perlin.Perlin
	layers int
	scale  float64
	speed  float64 // scroll speed of the nearest layer, pixels per tick

	width, height int

	offset float64 // accumulated scroll of the nearest layer
}

// NewBackground creates a background generator.
func NewBackground(width, height, layers int, alpha, beta, scale, speed float64, seed int64) *Background {
	if layers < 1 {
		layers = 1
	}
	return &Background{
		noise:  perlin.NewPerlin(alpha, beta, perlinIterations, seed),
		layers: layers,
		scale:  scale,
		speed:  speed,
		width:  width,
		height: height,
	}
}

// Scroll advances the background by one tick.
func (b *Background) Scroll() {
	b.offset += b.speed
}

// Reset rewinds the scroll position.
func (b *Background) Reset() {
	b.offset = 0
}

// HillHeight returns the silhouette height in pixels at screen column x for
// the given layer (0 = farthest). Farther layers sit higher and scroll
// slower.
func (b *Background) HillHeight(x int, layer int) float64 {
	// Layer 0 moves at 1/layers of the base speed, the nearest at full speed.
	layerSpeed := float64(layer+1) / float64(b.layers)
	worldX := (float64(x) + b.offset*layerSpeed) * b.scale

	// Use a distinct noise row per layer
	n := b.noise.Noise2D(worldX, float64(layer)*13.7)

	// Base height grows for nearer layers; noise modulates around it.
	base := float64(b.height) * (0.12 + 0.08*float64(layer))
	amp := float64(b.height) * 0.06
	h := base + n*amp
	return math.Max(0, h)
}

// Draw renders the sky and all hill layers.
func (b *Background) Draw() {
	rl.ClearBackground(rl.SkyBlue)

	for layer := 0; layer < b.layers; layer++ {
		shade := uint8(90 + layer*40)
		color := rl.Color{R: 40, G: shade, B: 60, A: 255}

		for x := 0; x < b.width; x++ {
			h := int32(b.HillHeight(x, layer))
			rl.DrawLine(int32(x), int32(b.height)-h, int32(x), int32(b.height), color)
		}
	}
}
