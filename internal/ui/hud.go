//go:build ebiten

package ui

import (
	"image/color"

	"gravfield/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 14

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	lines    []string
	panelCol color.RGBA
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{sim: sim, width: width, panelCol: color.RGBA{R: 18, G: 20, B: 30, A: 255}}
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached text from the sim's parameter snapshot.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.lines = []string{h.sim.Name()}
		return
	}
	h.lines = snapshotLines(h.sim.Name(), provider.Parameters())
}

// Draw paints the panel at x offset panelX.
func (h *HUD) Draw(screen *ebiten.Image, panelX, height int) {
	if h == nil {
		return
	}
	panel := screen.SubImage(rectFor(panelX, 0, h.width, height)).(*ebiten.Image)
	panel.Fill(h.panelCol)
	for i, line := range h.lines {
		text.Draw(screen, line, basicfont.Face7x13, panelX+8, 16+i*lineHeight, color.White)
	}
}
