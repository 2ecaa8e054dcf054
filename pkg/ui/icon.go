package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"fyne.io/fyne/v2"
)

const iconSize = 512

// IconPNG draws the application icon: a scatter of seat points over a
// gradient, one of them ringed as the highlighted entry.
func IconPNG() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))

	// Teal to blue, top to bottom.
	top := color.RGBA{13, 148, 136, 255}
	bottom := color.RGBA{37, 99, 235, 255}
	for y := 0; y < iconSize; y++ {
		ratio := float64(y) / iconSize
		c := color.RGBA{
			R: uint8(float64(top.R)*(1-ratio) + float64(bottom.R)*ratio),
			G: uint8(float64(top.G)*(1-ratio) + float64(bottom.G)*ratio),
			B: uint8(float64(top.B)*(1-ratio) + float64(bottom.B)*ratio),
			A: 255,
		}
		draw.Draw(img, image.Rect(0, y, iconSize, y+1), &image.Uniform{c}, image.Point{}, draw.Src)
	}

	white := color.RGBA{255, 255, 255, 255}
	amber := color.RGBA{251, 191, 36, 255}

	// Axes.
	drawThickLine(img, 96, 416, 440, 416, white, 10)
	drawThickLine(img, 96, 416, 96, 80, white, 10)

	points := [][2]int{{150, 360}, {200, 320}, {240, 340}, {290, 270}, {330, 250}, {390, 190}}
	for _, p := range points {
		fillDisc(img, p[0], p[1], 18, white)
	}
	fillDisc(img, 360, 140, 26, amber)
	drawCircle(img, 360, 140, 40, white, 8)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IconResource wraps IconPNG for use as a window icon.
func IconResource() (fyne.Resource, error) {
	data, err := IconPNG()
	if err != nil {
		return nil, err
	}
	return fyne.NewStaticResource("seatbench.png", data), nil
}

// GenerateIcon writes the icon to filename.
func GenerateIcon(filename string) error {
	data, err := IconPNG()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func fillDisc(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r*r && image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// drawCircle draws a circle outline
func drawCircle(img *image.RGBA, cx, cy, r int, c color.RGBA, thickness int) {
	for angle := 0.0; angle < 360.0; angle += 0.5 {
		rad := angle * math.Pi / 180.0
		for t := -thickness / 2; t < thickness/2; t++ {
			x := cx + int(float64(r+t)*math.Cos(rad))
			y := cy + int(float64(r+t)*math.Sin(rad))
			if image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// drawThickLine draws a square-brush line
func drawThickLine(img *image.RGBA, x1, y1, x2, y2 int, c color.RGBA, thickness int) {
	dx := x2 - x1
	dy := y2 - y1
	steps := max(absInt(dx), absInt(dy), 1)

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x1 + int(float64(dx)*t)
		y := y1 + int(float64(dy)*t)
		for tx := -thickness / 2; tx < thickness/2; tx++ {
			for ty := -thickness / 2; ty < thickness/2; ty++ {
				if p := image.Pt(x+tx, y+ty); p.In(img.Bounds()) {
					img.SetRGBA(p.X, p.Y, c)
				}
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
