//go:build !headless

// display_ebiten.go - Ebiten overlay window and graphics context

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type EbitenDisplay struct {
	width     int // device-independent
	height    int
	x, y      int
	antialias bool
	handler   frameHandler
	surface   ebitenSurface
	loopErr   error
	running   bool

	// screenWidth and screenHeight are the physical surface size from the
	// last LayoutF.
	screenWidth  int
	screenHeight int

	whiteImage *ebiten.Image
	// whitePixel is the source texture for untextured triangles.
	whitePixel *ebiten.Image
}

func newDisplay() display {
	return &EbitenDisplay{}
}

func (ed *EbitenDisplay) open(cfg Config) error {
	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		sw, sh := ebiten.ScreenSizeInFullscreen()
		if width <= 0 {
			width = sw
		}
		if height <= 0 {
			height = sh
		}
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid overlay size %dx%d", width, height)
	}
	ed.width = width
	ed.height = height
	ed.x, ed.y = cfg.X, cfg.Y
	ed.antialias = cfg.Antialias

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowPosition(cfg.X, cfg.Y)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetScreenClearedEveryFrame(true)

	ed.whiteImage = ebiten.NewImage(3, 3)
	ed.whiteImage.Fill(color.White)
	ed.whitePixel = ed.whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	return nil
}

func (ed *EbitenDisplay) run(h frameHandler) error {
	ed.handler = h
	ed.running = true
	defer func() {
		ed.handler = nil
		ed.running = false
	}()

	err := ebiten.RunGameWithOptions(ed, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	})
	if ed.loopErr != nil {
		return ed.loopErr
	}
	return err
}

func (ed *EbitenDisplay) close() error {
	if ed.whiteImage != nil {
		ed.whiteImage.Deallocate()
		ed.whiteImage = nil
		ed.whitePixel = nil
	}
	return nil
}

func (ed *EbitenDisplay) size() (int, int) {
	if ed.screenWidth > 0 && ed.screenHeight > 0 {
		return ed.screenWidth, ed.screenHeight
	}
	s := deviceScale()
	return physicalPixels(ed.width, s), physicalPixels(ed.height, s)
}

// origin scales the window position, which Ebiten reports relative to the
// current monitor. Target rectangles are relative to the virtual screen, so
// the two agree when the overlay sits on the primary monitor.
func (ed *EbitenDisplay) origin() Point {
	x, y := ed.x, ed.y
	if ed.running {
		x, y = ebiten.WindowPosition()
	}
	s := deviceScale()
	return Point{X: physicalPixels(x, s), Y: physicalPixels(y, s)}
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

// Update runs once per presented frame because TPS is synced to FPS.
func (ed *EbitenDisplay) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if err := ed.handler.beginFrame(); err != nil {
		if !errors.Is(err, errStopRequested) {
			ed.loopErr = err
		}
		return ebiten.Termination
	}
	return nil
}

func (ed *EbitenDisplay) Draw(screen *ebiten.Image) {
	ed.surface.dst = screen
	ed.surface.white = ed.whitePixel
	ed.surface.antialias = ed.antialias
	ed.handler.renderFrame(&ed.surface)
	ed.surface.dst = nil
}

// LayoutF makes one logical pixel one physical screen pixel, the unit window
// rectangles are measured in.
func (ed *EbitenDisplay) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	s := deviceScale()
	w, h := outsideWidth*s, outsideHeight*s
	ed.screenWidth = int(math.Ceil(w))
	ed.screenHeight = int(math.Ceil(h))
	return w, h
}

// Layout is unused while LayoutF is implemented.
func (ed *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := ed.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(math.Ceil(w)), int(math.Ceil(h))
}

type ebitenSurface struct {
	dst       *ebiten.Image
	white     *ebiten.Image
	antialias bool
	vertices  []ebiten.Vertex
	indices   []uint16
}

func (s *ebitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ebitenSurface) StrokeLine(from, to Vec2, width float32, c RGBA) {
	vector.StrokeLine(s.dst, from.X, from.Y, to.X, to.Y, width, c.NRGBA(), s.antialias)
}

func (s *ebitenSurface) StrokePolygon(pts []Vec2, width float32, c RGBA) {
	if len(pts) < 2 {
		return
	}
	clr := c.NRGBA()
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(s.dst, p.X, p.Y, q.X, q.Y, width, clr, s.antialias)
	}
}

// FillPolygon emits a triangle fan around the first vertex.
func (s *ebitenSurface) FillPolygon(pts []Vec2, c RGBA) {
	if len(pts) < 3 {
		return
	}
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.alpha8()) / 255

	s.vertices = s.vertices[:0]
	for _, p := range pts {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: p.X, DstY: p.Y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	s.indices = s.indices[:0]
	for i := 1; i+1 < len(pts); i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: s.antialias}
	s.dst.DrawTriangles(s.vertices, s.indices, s.white, op)
}

func (s *ebitenSurface) FillDot(at Vec2, size float32, c RGBA) {
	if size <= 0 {
		size = 1
	}
	vector.DrawFilledRect(s.dst, at.X-size/2, at.Y-size/2, size, size, c.NRGBA(), s.antialias)
}

func (s *ebitenSurface) DrawGlyphs(str string, origin Point, c RGBA) {
	text.Draw(s.dst, str, basicfont.Face7x13, origin.X, origin.Y, c.NRGBA())
}
