package physics

import (
	opensimplex "github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r2"
)

// Wind is a horizontal gust field sampled from 3D simplex noise, with the
// third axis used as time so gusts drift smoothly between frames.
type Wind struct {
	Strength float64 // peak acceleration in world units/s²
	Scale    float64 // spatial frequency of gusts
	Speed    float64 // how fast the field evolves

	noise opensimplex.Noise
	time  float64
}

// NewWind creates a wind field from seed.
func NewWind(seed int64, strength, scale, speed float64) *Wind {
	return &Wind{
		Strength: strength,
		Scale:    scale,
		Speed:    speed,
		noise:    opensimplex.New(seed),
	}
}

// Enabled reports whether the field contributes any acceleration.
func (w *Wind) Enabled() bool {
	return w != nil && w.Strength != 0
}

// Acceleration returns the wind acceleration at p for the current time.
func (w *Wind) Acceleration(p r2.Vec) r2.Vec {
	if !w.Enabled() {
		return r2.Vec{}
	}
	n := w.noise.Eval3(p.X*w.Scale, p.Y*w.Scale, w.time)
	return r2.Vec{X: n * w.Strength}
}

// Advance moves the field forward by dt seconds.
func (w *Wind) Advance(dt float64) {
	if w == nil {
		return
	}
	w.time += dt * w.Speed
}
