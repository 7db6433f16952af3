package catalog

import "github.com/themoonexports/catalog-site/models"

// Key names as delivered by browser keyboard events
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeyEscape     = "Escape"
)

// Session is the gallery/variant viewer state machine for one open product.
// Opening a product resets the image index and variant selection; image
// navigation clamps at the gallery bounds (unlike the hero carousel, which
// wraps). The session never mutates the product record: variant selection
// only changes how the gallery is presented.
type Session struct {
	product      *models.Product
	open         bool
	imageIndex   int
	variantImage string
}

// Open starts a viewing session for p, unconditionally resetting the image
// index and any previous variant selection.
func (s *Session) Open(p *models.Product) {
	s.product = p
	s.open = true
	s.imageIndex = 0
	s.variantImage = ""
}

// Close ends the session. Navigation and key handling become no-ops.
func (s *Session) Close() {
	s.product = nil
	s.open = false
	s.imageIndex = 0
	s.variantImage = ""
}

// IsOpen reports whether a product session is active
func (s *Session) IsOpen() bool {
	return s.open
}

// ActiveVariantImage returns the selected variant image, or "" when none
func (s *Session) ActiveVariantImage() string {
	return s.variantImage
}

// Gallery returns the effective image list: the product's gallery (falling
// back to the primary image when the gallery is empty) reordered so the
// selected variant leads.
func (s *Session) Gallery() []string {
	if !s.open || s.product == nil {
		return nil
	}
	base := s.product.Images
	if len(base) == 0 && s.product.Image != "" {
		base = []string{s.product.Image}
	}
	return DisplayGallery(base, s.variantImage)
}

// ImageIndex returns the active image position, clamped to the gallery
func (s *Session) ImageIndex() int {
	g := s.Gallery()
	if len(g) == 0 {
		return 0
	}
	if s.imageIndex > len(g)-1 {
		return len(g) - 1
	}
	return s.imageIndex
}

// CurrentImage returns the active image, or false for an empty gallery
func (s *Session) CurrentImage() (string, bool) {
	g := s.Gallery()
	if len(g) == 0 {
		return "", false
	}
	return g[s.ImageIndex()], true
}

// Next advances the active image, clamped to the last entry
func (s *Session) Next() {
	if !s.open {
		return
	}
	last := len(s.Gallery()) - 1
	if last < 0 {
		last = 0
	}
	if s.imageIndex < last {
		s.imageIndex++
	}
}

// Prev retreats the active image, clamped to the first entry
func (s *Session) Prev() {
	if !s.open {
		return
	}
	if s.imageIndex > 0 {
		s.imageIndex--
	}
}

// GoTo jumps to a gallery position (thumbnail click), ignoring out-of-range
// targets.
func (s *Session) GoTo(i int) {
	if !s.open {
		return
	}
	if i >= 0 && i < len(s.Gallery()) {
		s.imageIndex = i
	}
}

// SelectVariant records the variant image and resets the active index so the
// variant is shown immediately. Selecting the same variant again is a no-op
// beyond the index reset.
func (s *Session) SelectVariant(image string) {
	if !s.open {
		return
	}
	s.variantImage = image
	s.imageIndex = 0
}

// HandleKey applies a keyboard event to the session and reports whether it
// was consumed. Keys are ignored while no session is open, so callers can
// leave the binding attached without acting on stale state.
func (s *Session) HandleKey(key string) bool {
	if !s.open {
		return false
	}
	switch key {
	case KeyArrowRight:
		s.Next()
	case KeyArrowLeft:
		s.Prev()
	case KeyEscape:
		s.Close()
	default:
		return false
	}
	return true
}

// DisplayGallery computes the presented image order for a variant selection
// without touching the underlying slice: when the variant image sits at a
// non-zero index it moves to the front, otherwise the base order stands.
func DisplayGallery(base []string, variantImage string) []string {
	if variantImage == "" {
		return base
	}
	idx := -1
	for i, img := range base {
		if img == variantImage {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return base
	}
	out := make([]string, 0, len(base))
	out = append(out, variantImage)
	out = append(out, base[:idx]...)
	out = append(out, base[idx+1:]...)
	return out
}
