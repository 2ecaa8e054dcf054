package plot

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"math"
	"math/rand/v2"
)

// Color is an opaque RGB display color.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ColorAssigner maps each distinct project name to a display color.
type ColorAssigner interface {
	Assign(projects []string) map[string]Color
}

// RandomColors draws an independent random RGB triple for every project on
// every call. Repeated calls do not reuse colors.
type RandomColors struct {
	rng *rand.Rand
}

// NewRandomColors uses src when given, otherwise a randomly seeded PCG.
func NewRandomColors(src rand.Source) *RandomColors {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &RandomColors{rng: rand.New(src)}
}

func (rc *RandomColors) Assign(projects []string) map[string]Color {
	out := make(map[string]Color, len(projects))
	for _, p := range projects {
		out[p] = Color{
			R: uint8(rc.rng.IntN(256)),
			G: uint8(rc.rng.IntN(256)),
			B: uint8(rc.rng.IntN(256)),
		}
	}
	return out
}

// StableColors derives the color from a hash of the project name, so a
// project keeps its color across renders and sessions.
type StableColors struct{}

func (StableColors) Assign(projects []string) map[string]Color {
	out := make(map[string]Color, len(projects))
	for _, p := range projects {
		h := fnv.New32a()
		_, _ = h.Write([]byte(p))
		sum := h.Sum32()
		hue := float64(sum%360) / 360
		sat := 0.55 + float64((sum>>9)%30)/100
		val := 0.70 + float64((sum>>17)%20)/100
		out[p] = hsv(hue, sat, val)
	}
	return out
}

func hsv(h, s, v float64) Color {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return Color{R: uint8(math.Round(r * 255)), G: uint8(math.Round(g * 255)), B: uint8(math.Round(b * 255))}
}

// AssignerFor returns the assigner for a configured color mode.
func AssignerFor(mode string) (ColorAssigner, error) {
	switch mode {
	case "", ColorModeRandom:
		return NewRandomColors(nil), nil
	case ColorModeStable:
		return StableColors{}, nil
	default:
		return nil, fmt.Errorf("unknown color mode %q", mode)
	}
}

const (
	ColorModeRandom = "random"
	ColorModeStable = "stable"
)
