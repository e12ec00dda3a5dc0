package render

import (
	"image"
	"image/draw"

	"github.com/a1ts-a1t/kennelclub/kennel"
	"github.com/a1ts-a1t/kennelclub/sprite"
	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// Compositor draws a kennel snapshot onto a raster canvas: each creature's
// current sprite frame is blitted at its unit-square position, scaled to
// canvas pixels. This mirrors the teacher's use of mathgl throughout
// physics.go/mod_spatialgrid.go for transform math, here reduced to a
// single 2-D scale from unit-square space to pixel space (no translation:
// the unit-square origin maps to pixel (0, 0)).
type Compositor struct {
	Width, Height int
}

// transform returns the unit-square -> pixel-space affine transform as a
// mgl32.Mat3 (2-D affine in homogeneous coordinates).
func (c Compositor) transform() mgl32.Mat3 {
	scale := mgl32.Scale2D(float32(c.Width), float32(c.Height))
	return scale
}

// Draw composites snap onto canvas, using sheets to look up each
// creature's current frame by id. Creatures with no sheet entry, or whose
// sheet has no frames loaded for their current sprite state, are skipped.
func (c Compositor) Draw(canvas draw.Image, snap []kennel.DiskView, sheets map[string]*sprite.Sheet) {
	tr := c.transform()

	for _, d := range snap {
		sheet, ok := sheets[d.ID]
		if !ok {
			continue
		}
		frame, ok := sheet.Frame(d.SpriteState, d.SpriteFrameCounter)
		if !ok {
			continue
		}

		centerPixel := tr.Mul3x1(mgl32.Vec3{float32(d.Position.X), float32(d.Position.Y), 1})
		radiusPixels := float32(d.Radius) * float32(c.Width)

		dst := image.Rect(
			int(centerPixel.X()-radiusPixels), int(centerPixel.Y()-radiusPixels),
			int(centerPixel.X()+radiusPixels), int(centerPixel.Y()+radiusPixels),
		)
		xdraw.ApproxBiLinear.Scale(canvas, dst, frame, frame.Bounds(), xdraw.Over, nil)
	}
}
