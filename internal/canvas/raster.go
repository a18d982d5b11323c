package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster is a Surface backed by an in-memory RGBA image. Polygons are
// scan-converted with an anti-aliasing rasterizer and composited with Over.
type Raster struct {
	img   *image.RGBA
	bg    color.RGBA
	alpha float32
	rast  *vector.Rasterizer
	face  font.Face
}

// NewRaster allocates a w x h raster that clears to bg.
func NewRaster(w, h int, bg color.RGBA) *Raster {
	r := &Raster{
		bg:    bg,
		alpha: 1,
		rast:  vector.NewRasterizer(w, h),
	}
	r.Clear(w, h)
	return r
}

// Image returns the backing image. It is reused across frames.
func (r *Raster) Image() *image.RGBA { return r.img }

// SetBackground changes the color used by the next Clear.
func (r *Raster) SetBackground(bg color.RGBA) { r.bg = bg }

// SetFace sets the font used by DrawText. A nil face selects the default.
func (r *Raster) SetFace(f font.Face) { r.face = f }

func (r *Raster) Clear(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if r.img == nil || r.img.Rect.Dx() != w || r.img.Rect.Dy() != h {
		r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	draw.Draw(r.img, r.img.Rect, image.NewUniform(r.bg), image.Point{}, draw.Src)
	r.alpha = 1
}

func (r *Raster) SetGlobalAlpha(a float32) {
	r.alpha = mgl32.Clamp(a, 0, 1)
}

func (r *Raster) FillConvexPolygon(pts []mgl32.Vec2, c color.RGBA) {
	if len(pts) < 3 || r.img == nil {
		return
	}
	clip := polygonBounds(pts).Intersect(r.img.Rect)
	if clip.Empty() {
		return
	}

	// The mask covers only clip; path points are shifted so clip.Min is the
	// mask origin. Segments outside it are clamped by the rasterizer.
	off := mgl32.Vec2{float32(clip.Min.X), float32(clip.Min.Y)}
	r.rast.Reset(clip.Dx(), clip.Dy())
	r.rast.DrawOp = draw.Over
	p0 := pts[0].Sub(off)
	r.rast.MoveTo(p0.X(), p0.Y())
	for _, p := range pts[1:] {
		p = p.Sub(off)
		r.rast.LineTo(p.X(), p.Y())
	}
	r.rast.ClosePath()

	src := image.NewUniform(color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A)*r.alpha + 0.5)})
	r.rast.Draw(r.img, clip, src, image.Point{})
}

// polygonBounds is the smallest integer rectangle containing pts.
func polygonBounds(pts []mgl32.Vec2) image.Rectangle {
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = mgl32.Vec2{min(lo.X(), p.X()), min(lo.Y(), p.Y())}
		hi = mgl32.Vec2{max(hi.X(), p.X()), max(hi.Y(), p.Y())}
	}
	return image.Rect(
		int(math.Floor(float64(lo.X()))), int(math.Floor(float64(lo.Y()))),
		int(math.Ceil(float64(hi.X()))), int(math.Ceil(float64(hi.Y()))),
	)
}

func (r *Raster) DrawText(x, y int, s string, c color.RGBA) {
	if r.img == nil {
		return
	}
	face := r.face
	if face == nil {
		face = DefaultFace()
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
