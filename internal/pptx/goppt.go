package pptx

import (
	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/alnah/go-pitchdeck/internal/layout"
)

// Calls into GoPPT beyond rich text frames and drawings live here, so a
// library upgrade that renames them touches one file.

// setSlideSize fixes the canvas on the document layout.
func setSlideSize(p *ppt.Presentation, cx, cy int64) {
	l := p.GetLayout()
	l.CX = cx
	l.CY = cy
}

// presetGeometry maps layout geometries to GoPPT auto shape types.
func presetGeometry(k layout.ShapeKind) ppt.AutoShapeType {
	switch k {
	case layout.RoundRect:
		return ppt.AutoShapeRoundedRect
	case layout.Ellipse:
		return ppt.AutoShapeEllipse
	default:
		return ppt.AutoShapeRectangle
	}
}

// addAutoShape draws a filled preset geometry with an optional 1pt outline.
func addAutoShape(slide *ppt.Slide, sh layout.Shape) {
	x, y, cx, cy := sh.Box.EMU()
	shape := slide.CreateAutoShape()
	shape.SetAutoShapeType(presetGeometry(sh.Geometry))
	shape.SetOffsetX(x).SetOffsetY(y)
	shape.SetWidth(cx).SetHeight(cy)
	shape.SetFill(solidFill(sh.Fill))
	if sh.Line != nil {
		shape.SetBorder(&ppt.Border{Style: ppt.BorderSolid, Width: 1, Color: ppt.NewColor(sh.Line.ARGB())})
	} else {
		shape.SetBorder(&ppt.Border{Style: ppt.BorderNone})
	}
}
