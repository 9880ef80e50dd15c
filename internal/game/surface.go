package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/crash-chart/internal/chart"
)

var background = color.RGBA{R: 16, G: 18, B: 27, A: 255}

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage.
	// Use whiteSubImage at DrawTriangles instead of whiteImage in order to avoid bleeding edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// screenSurface draws chart paths onto the ebiten screen. Paths are
// triangulated by the vector package and coloured per vertex, which is how
// gradients are applied.
type screenSurface struct {
	dst  *ebiten.Image
	clip *ebiten.Image
	face text.Face

	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *screenSurface) target() *ebiten.Image {
	if s.clip != nil {
		return s.clip
	}
	return s.dst
}

func (s *screenSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *screenSurface) Clear() {
	s.dst.Fill(background)
}

// Clip restricts drawing to r. Sub images keep the parent's coordinates, so
// vertices need no translation.
func (s *screenSurface) Clip(r chart.Rect) {
	rect := image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	)
	s.clip = s.dst.SubImage(rect).(*ebiten.Image)
}

func (s *screenSurface) ResetClip() {
	s.clip = nil
}

func (s *screenSurface) Fill(p *chart.Path, paint chart.Paint) {
	vp := toVectorPath(p)
	s.vertices, s.indices = vp.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	paintVertices(s.vertices, paint)

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.NonZero
	op.AntiAlias = true
	s.target().DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

func (s *screenSurface) Stroke(p *chart.Path, paint chart.Paint, style chart.StrokeStyle) {
	vp := toVectorPath(p)
	sop := &vector.StrokeOptions{}
	sop.Width = float32(style.Width)
	sop.LineJoin = vector.LineJoinRound
	sop.LineCap = vector.LineCapRound
	s.vertices, s.indices = vp.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], sop)
	paintVertices(s.vertices, paint)

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	s.target().DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

// Text draws str with its baseline at y.
func (s *screenSurface) Text(str string, x, y float64, align chart.Align, c color.NRGBA) {
	if s.face == nil {
		return
	}
	drawText(s.dst, str, s.face, x, y, align, c)
}

func drawText(dst *ebiten.Image, str string, face text.Face, x, y float64, align chart.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	switch align {
	case chart.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case chart.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(dst, str, face, op)
}

// toVectorPath replays a chart path onto a vector.Path.
func toVectorPath(p *chart.Path) *vector.Path {
	var vp vector.Path
	for _, op := range p.Ops() {
		switch op.Kind {
		case chart.OpMoveTo:
			vp.MoveTo(float32(op.X), float32(op.Y))
		case chart.OpLineTo:
			vp.LineTo(float32(op.X), float32(op.Y))
		case chart.OpQuadTo:
			vp.QuadTo(float32(op.CX), float32(op.CY), float32(op.X), float32(op.Y))
		case chart.OpArc:
			vp.Arc(float32(op.X), float32(op.Y), float32(op.Radius), float32(op.Start), float32(op.End), vector.Clockwise)
		case chart.OpClose:
			vp.Close()
		}
	}
	return &vp
}

// paintVertices samples the paint at every vertex position.
func paintVertices(vs []ebiten.Vertex, paint chart.Paint) {
	for i := range vs {
		c := paint.ColorAt(float64(vs[i].DstX), float64(vs[i].DstY))
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}
}
