package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/render"
)

// Number of rings used to fake blur and radial gradients.
const (
	glowRings     = 6
	gradientRings = 8
)

// whitePixel is the source texture for DrawTriangles fills.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// ImageSurface is a render.Surface drawing into an ebiten image with
// vector paths. Shadows are drawn as translucent rings behind each shape.
type ImageSurface struct {
	dst    *ebiten.Image
	size   float64
	shadow colorful.Color
	alpha  float64
	blur   float64
	path   vector.Path
	verts  []ebiten.Vertex
	idx    []uint16
}

var _ render.Surface = (*ImageSurface)(nil)

// NewImageSurface wraps dst, whose drawable area is size x size pixels.
func NewImageSurface(dst *ebiten.Image, size float64) *ImageSurface {
	return &ImageSurface{dst: dst, size: size}
}

func (s *ImageSurface) Size() float64 { return s.size }

func (s *ImageSurface) Clear() {
	s.dst.Fill(render.Background)
}

// SetShadow sets the glow used by later fills. A nil color or zero blur
// disables it.
func (s *ImageSurface) SetShadow(c color.Color, blur float64) {
	s.blur = 0
	if c == nil || blur <= 0 {
		return
	}
	cf, a := toColorful(c)
	s.shadow, s.alpha, s.blur = cf, a, blur
}

func (s *ImageSurface) FillRoundedRect(x, y, w, h, radius float64, fill color.Color) {
	s.eachGlowRing(func(grow float64, c color.Color) {
		s.fillRoundedRect(x-grow, y-grow, w+2*grow, h+2*grow, radius+grow, c)
	})
	s.fillRoundedRect(x, y, w, h, radius, fill)
}

func (s *ImageSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, false)
}

// FillRadialCircle approximates a radial gradient with concentric discs,
// outer color at the rim and inner color at the center.
func (s *ImageSurface) FillRadialCircle(cx, cy, r float64, inner, outer color.Color) {
	if r <= 0 {
		return
	}
	s.eachGlowRing(func(grow float64, c color.Color) {
		vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r+grow), c, true)
	})

	in, _ := toColorful(inner)
	out, _ := toColorful(outer)
	for i := range gradientRings {
		t := float64(i) / gradientRings
		ring := r * (1 - t)
		vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(ring), out.BlendRgb(in, t).Clamped(), true)
	}
}

// eachGlowRing calls fn from the outermost ring inwards, each ring more
// opaque than the last.
func (s *ImageSurface) eachGlowRing(fn func(grow float64, c color.Color)) {
	if s.blur <= 0 {
		return
	}
	for i := glowRings; i >= 1; i-- {
		t := float64(i) / glowRings
		grow := s.blur * t / 2
		a := s.alpha * (1 - t) * 0.35
		r, g, b := s.shadow.RGB255()
		fn(grow, color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(a * 255))})
	}
}

func (s *ImageSurface) fillRoundedRect(x, y, w, h, radius float64, fill color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	radius = math.Min(radius, math.Min(w, h)/2)
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	r := float32(radius)

	s.path = vector.Path{}
	s.path.MoveTo(x0+r, y0)
	s.path.LineTo(x1-r, y0)
	s.path.QuadTo(x1, y0, x1, y0+r)
	s.path.LineTo(x1, y1-r)
	s.path.QuadTo(x1, y1, x1-r, y1)
	s.path.LineTo(x0+r, y1)
	s.path.QuadTo(x0, y1, x0, y1-r)
	s.path.LineTo(x0, y0+r)
	s.path.QuadTo(x0, y0, x0+r, y0)
	s.path.Close()

	s.verts, s.idx = s.path.AppendVerticesAndIndicesForFilling(s.verts[:0], s.idx[:0])

	cr, cg, cb, ca := straight(fill)
	for i := range s.verts {
		s.verts[i].SrcX = 1
		s.verts[i].SrcY = 1
		s.verts[i].ColorR = cr
		s.verts[i].ColorG = cg
		s.verts[i].ColorB = cb
		s.verts[i].ColorA = ca
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(s.verts, s.idx, whitePixel, op)
}

// toColorful splits c into an opaque colorful.Color and its alpha in [0,1].
func toColorful(c color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}, float64(n.A) / 255
}

// straight returns c as non-premultiplied vertex color components, the
// default color scale mode of DrawTriangles.
func straight(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}
