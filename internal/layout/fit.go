package layout

import "errors"

// ErrImageSize is returned for images with a zero or negative dimension.
var ErrImageSize = errors.New("image has no size")

// FitPicture returns the box a picture of pxW by pxH pixels occupies in its
// slot. The pinned dimension takes the slot's size and the other follows the
// aspect ratio, anchored at the slot's top-left corner. When the free
// dimension would overflow the slot, the image is scaled down until it fits
// and centered on the pinned axis. A zero free dimension means unbounded.
func FitPicture(p Picture, pxW, pxH int) (Box, error) {
	if pxW <= 0 || pxH <= 0 {
		return Box{}, ErrImageSize
	}
	aspect := float64(pxW) / float64(pxH)
	slot := p.Slot
	box := Box{Left: slot.Left, Top: slot.Top}

	switch p.Fit {
	case FitWidth:
		box.Width = slot.Width
		box.Height = slot.Width / aspect
		if slot.Height > 0 && box.Height > slot.Height {
			box.Height = slot.Height
			box.Width = slot.Height * aspect
			box.Left += (slot.Width - box.Width) / 2
		}
	default:
		box.Height = slot.Height
		box.Width = slot.Height * aspect
		if slot.Width > 0 && box.Width > slot.Width {
			box.Width = slot.Width
			box.Height = slot.Width / aspect
			box.Top += (slot.Height - box.Height) / 2
		}
	}
	return box, nil
}
