//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"gravfield/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const arrowSpacing = 8

// Overlay draws force arrows sampled from the sim's current field.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool

	pixel   *ebiten.Image
	samples []forceSample
}

// NewOverlay constructs a new overlay instance. Arrows start visible.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	o.samples = sampleGrid(sim.Size(), arrowSpacing, scale)
	return o
}

// Update toggles the arrows with the F key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(fieldProvider)
	if !ok {
		return
	}
	f := provider.Field()

	span := float64(arrowSpacing * o.scale)
	minLength, maxLength := span*0.3, span*0.8
	const headAngle = math.Pi / 6

	for _, s := range o.samples {
		a, ok := arrowFor(f.At(s.gx, s.gy))
		if !ok {
			o.drawPoint(screen, s.sx, s.sy, float64(o.scale), color.RGBA{R: 70, G: 90, B: 120, A: 120})
			continue
		}
		length := minLength + (maxLength-minLength)*a.strength
		head := length * 0.3
		tailX, tailY := s.sx-a.nx*length*0.5, s.sy-a.ny*length*0.5
		tipX, tipY := s.sx+a.nx*length*0.5, s.sy+a.ny*length*0.5
		col := color.RGBA{R: 255, G: uint8(230 - 150*a.strength), B: 90, A: 220}
		thickness := math.Max(1, float64(o.scale)*0.6)

		o.drawLine(screen, tailX, tailY, tipX, tipY, thickness, col)
		angle := math.Atan2(a.ny, a.nx)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*head, tipY-math.Sin(angle+headAngle)*head, thickness, col)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*head, tipY-math.Sin(angle-headAngle)*head, thickness, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
