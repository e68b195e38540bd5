package otquery

import "golang.org/x/image/font/sfnt"

// BoundingBox describes the bounding box of a glyph, in font design units.
type BoundingBox struct {
	MinX, MinY sfnt.Units
	MaxX, MaxY sfnt.Units
}

// Empty reports whether this box has zero area.
func (bbox BoundingBox) Empty() bool {
	return bbox.MaxX-bbox.MinX == 0 || bbox.MaxY-bbox.MinY == 0
}

// Dx returns the horizontal extent of this box.
func (bbox BoundingBox) Dx() sfnt.Units {
	return bbox.MaxX - bbox.MinX
}

// Dy returns the vertical extent of this box.
func (bbox BoundingBox) Dy() sfnt.Units {
	return bbox.MaxY - bbox.MinY
}

// Contains reports whether other lies within bbox.
func (bbox BoundingBox) Contains(other BoundingBox) bool {
	return bbox.MinX <= other.MinX && bbox.MinY <= other.MinY &&
		bbox.MaxX >= other.MaxX && bbox.MaxY >= other.MaxY
}

// OutlineInfo holds statistics of a decoded outline.
type OutlineInfo struct {
	Contours int
	Points   int
	OnCurve  int
	OffCurve int // quadratic Bézier control points
}
