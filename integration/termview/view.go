// Package termview presents a mosaic surface in a terminal.
//
// The surface is downscaled to the terminal cell grid and drawn with
// upper-half-block runes, packing two pixel rows into each cell row
// (foreground = top pixel, background = bottom pixel). The view owns
// the frame loop: it advances the procedural pattern at a fixed rate
// and falls back to the solid background fill while paused.
package termview

import (
	"context"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/mosaicgrid/mosaic"
)

// View drives a surface onto a tcell screen.
//
// View is not safe for concurrent use; Run and all mutating methods
// must be called from the same goroutine.
type View struct {
	screen  tcell.Screen
	surface *mosaic.Surface
	fps     int

	paused bool
	flat   bool // background fill instead of the animated pattern
	frame  int

	scaled *image.NRGBA // reused downscale target

	// OnRune, if set, receives key runes the view does not handle
	// itself. It runs on the view's goroutine, so it may safely mutate
	// or swap the surface.
	OnRune func(r rune)
}

// New creates a view for an initialized screen. fps values below 1 are
// clamped to 1.
func New(screen tcell.Screen, surface *mosaic.Surface, fps int) *View {
	if fps < 1 {
		fps = 1
	}
	return &View{screen: screen, surface: surface, fps: fps}
}

// SetSurface swaps the presented surface. Used by drivers that
// regenerate the grid: they build a new surface, migrate tiles, then
// hand it to the view.
func (v *View) SetSurface(s *mosaic.Surface) {
	v.surface = s
	v.scaled = nil
}

// Run drives the frame loop until the context is canceled, the user
// quits (q, ESC or Ctrl-C) or the screen is finalized.
//
// Keys: q/ESC quit, space pauses and resumes the animation, b toggles
// between the animated pattern and the plain background fill.
func (v *View) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(v.fps))
	defer ticker.Stop()

	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	v.step()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventCh:
			if !ok {
				return nil
			}
			if !v.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			v.step()
		}
	}
}

// handleEvent processes one screen event. It returns false when the
// loop should stop.
func (v *View) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'b':
				v.flat = !v.flat
				v.draw()
			default:
				if v.OnRune != nil {
					v.OnRune(ev.Rune())
					v.draw()
				}
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.draw()
	}
	return true
}

// step advances the animation by one frame and redraws.
func (v *View) step() {
	if !v.paused {
		if v.flat {
			v.surface.FillBackground()
		} else {
			v.surface.GeneratePattern(v.frame)
			v.frame++
		}
	}
	v.draw()
}

// draw downscales the surface to fit the terminal, preserving aspect
// ratio, and renders it as half-block cells.
func (v *View) draw() {
	cw, ch := v.screen.Size()
	if cw < 1 || ch < 1 {
		return
	}
	// Two pixel rows per cell row.
	pw, ph := cw, ch*2

	sw, sh := v.surface.Width(), v.surface.Height()
	scale := float64(pw) / float64(sw)
	if s := float64(ph) / float64(sh); s < scale {
		scale = s
	}
	dw := int(float64(sw) * scale)
	dh := int(float64(sh) * scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	if v.scaled == nil || v.scaled.Rect.Dx() != dw || v.scaled.Rect.Dy() != dh {
		v.scaled = image.NewNRGBA(image.Rect(0, 0, dw, dh))
	}
	xdraw.ApproxBiLinear.Scale(v.scaled, v.scaled.Rect, v.surface.ToImage(),
		image.Rect(0, 0, sw, sh), xdraw.Src, nil)

	// Center the fitted image on the cell grid.
	offX := (pw - dw) / 2
	offY := (ph - dh) / 2

	v.screen.Clear()
	for cy := 0; cy < ch; cy++ {
		for cx := 0; cx < cw; cx++ {
			top, topOK := v.pixelAt(cx-offX, cy*2-offY)
			bot, botOK := v.pixelAt(cx-offX, cy*2+1-offY)
			if !topOK && !botOK {
				continue
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			v.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	v.screen.Show()
}

// pixelAt reads a pixel from the scaled image, reporting whether the
// coordinate lies inside it.
func (v *View) pixelAt(x, y int) (mosaic.Color, bool) {
	if x < 0 || y < 0 || x >= v.scaled.Rect.Dx() || y >= v.scaled.Rect.Dy() {
		return mosaic.Color{}, false
	}
	i := y*v.scaled.Stride + x*4
	return mosaic.Color{
		R: v.scaled.Pix[i+0],
		G: v.scaled.Pix[i+1],
		B: v.scaled.Pix[i+2],
		A: v.scaled.Pix[i+3],
	}, true
}
