package game

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/iburimskiy/bokeh/internal/config"
)

// Composite selects how new pixels combine with what is already drawn.
type Composite int

const (
	CompositeSourceOver Composite = iota
	// CompositeLighten keeps the brighter of the premultiplied source and
	// destination per channel. It only matches a canvas "lighten" for opaque
	// sources, like the background fill.
	CompositeLighten
	// CompositeLighter adds source and destination, so even a faint
	// particle brightens what is under it.
	CompositeLighter
)

func (c Composite) String() string {
	switch c {
	case CompositeLighten:
		return "lighten"
	case CompositeLighter:
		return "lighter"
	default:
		return "source-over"
	}
}

// ColorStop is one stop of a gradient; Offset runs from 0 (centre) to 1 (edge).
// Stop colours are treated as opaque.
type ColorStop struct {
	Offset float64
	Color  color.Color
}

// Canvas is the 2D surface particles are drawn on.
type Canvas interface {
	Size() (width, height int)
	Clear()
	SetComposite(Composite)
	FillCircle(x, y, r float64, clr color.Color)
	FillRadialGradient(cx, cy, r0, r1 float64, stops []ColorStop)
}

var blendLighten = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationMax,
	BlendOperationAlpha:         ebiten.BlendOperationMax,
}

func blendFor(c Composite) ebiten.Blend {
	switch c {
	case CompositeLighten:
		return blendLighten
	case CompositeLighter:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

// ImageCanvas draws onto an offscreen ebiten image whose size is fixed at creation.
type ImageCanvas struct {
	img      *ebiten.Image
	white    *ebiten.Image
	blend    ebiten.Blend
	vertices []ebiten.Vertex
	indices  []uint16

	gradients map[string]*ebiten.Image
}

func NewImageCanvas(width, height int) *ImageCanvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &ImageCanvas{
		img:       ebiten.NewImage(width, height),
		white:     white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		blend:     ebiten.BlendSourceOver,
		gradients: map[string]*ebiten.Image{},
	}
}

// Image returns the backing image for presenting on screen.
func (c *ImageCanvas) Image() *ebiten.Image { return c.img }

func (c *ImageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *ImageCanvas) Clear() { c.img.Clear() }

func (c *ImageCanvas) SetComposite(mode Composite) { c.blend = blendFor(mode) }

func (c *ImageCanvas) FillCircle(x, y, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	var path vector.Path
	path.Arc(float32(x), float32(y), float32(r), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])

	cr, cg, cb, ca := clr.RGBA()
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(cr) / 0xffff
		c.vertices[i].ColorG = float32(cg) / 0xffff
		c.vertices[i].ColorB = float32(cb) / 0xffff
		c.vertices[i].ColorA = float32(ca) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	op.Blend = c.blend
	c.img.DrawTriangles(c.vertices, c.indices, c.white, op)
}

// FillRadialGradient covers the whole canvas with a gradient centred on
// (cx, cy) running from radius r0 to r1. Each distinct gradient is
// rasterised once and reused.
func (c *ImageCanvas) FillRadialGradient(cx, cy, r0, r1 float64, stops []ColorStop) {
	g := newRadialGradient(cx, cy, r0, r1, stops)
	key := g.key()
	img, ok := c.gradients[key]
	if !ok {
		w, h := c.Size()
		img = ebiten.NewImageFromImage(rasterRadialGradient(w, h, config.GradientScale, g))
		c.gradients[key] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.Blend = c.blend
	c.img.DrawImage(img, op)
}

type radialGradient struct {
	cx, cy float64
	r0, r1 float64
	stops  []ColorStop
}

func newRadialGradient(cx, cy, r0, r1 float64, stops []ColorStop) radialGradient {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b ColorStop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})
	return radialGradient{cx: cx, cy: cy, r0: r0, r1: r1, stops: sorted}
}

func (g radialGradient) key() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%g,%g,%g,%g", g.cx, g.cy, g.r0, g.r1)
	for _, st := range g.stops {
		fmt.Fprintf(&sb, "|%g:%v", st.Offset, opaque(st.Color))
	}
	return sb.String()
}

// at returns the gradient colour at distance d from the centre.
func (g radialGradient) at(d float64) color.RGBA {
	if len(g.stops) == 0 {
		return color.RGBA{}
	}
	t := 0.0
	if g.r1 > g.r0 {
		t = clamp01((d - g.r0) / (g.r1 - g.r0))
	}

	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.Offset {
		return opaque(first.Color)
	}
	for i := 1; i < len(g.stops); i++ {
		a, b := g.stops[i-1], g.stops[i]
		if t > b.Offset {
			continue
		}
		f := 0.0
		if span := b.Offset - a.Offset; span > 0 {
			f = (t - a.Offset) / span
		}
		ca, _ := colorful.MakeColor(opaque(a.Color))
		cb, _ := colorful.MakeColor(opaque(b.Color))
		r, gg, bb := ca.BlendRgb(cb, f).Clamped().RGB255()
		return color.RGBA{R: r, G: gg, B: bb, A: 0xff}
	}
	return opaque(last.Color)
}

// rasterRadialGradient renders g at 1/scale resolution and scales it up to width x height.
func rasterRadialGradient(width, height, scale int, g radialGradient) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	sw := (width + scale - 1) / scale
	sh := (height + scale - 1) / scale
	small := image.NewRGBA(image.Rect(0, 0, sw, sh))
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			px := (float64(x) + 0.5) * float64(scale)
			py := (float64(y) + 0.5) * float64(scale)
			small.SetRGBA(x, y, g.at(math.Hypot(px-g.cx, py-g.cy)))
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return dst
}

func opaque(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}
