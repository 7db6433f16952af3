package catalog

import (
	"sync"
	"time"
)

// CTA is a call-to-action link on a hero slide
type CTA struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Slide is one entry of the hero carousel deck
type Slide struct {
	Image    string `json:"image"`
	Alt      string `json:"alt"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTAs     []CTA  `json:"ctas"`
}

// HomeSlides is the fixed deck shown on the landing page
var HomeSlides = []Slide{
	{
		Image:    "images/one.jpg",
		Alt:      "Premium handcrafted horn, wood and resin products",
		Title:    "Premium Handcrafted Exports from India",
		Subtitle: "Custom horn, wood & resin creations for artists and luxury brands",
		CTAs: []CTA{
			{Label: "Get a Quote", Href: "contact.html"},
			{Label: "Explore Crafts", Href: "products.html"},
		},
	},
	{
		Image:    "images/two.jpg",
		Alt:      "Artisan craftsmanship shipped worldwide",
		Title:    "Artisan Craftsmanship, Global Delivery",
		Subtitle: "Made in Sambhal, shipped worldwide",
		CTAs: []CTA{
			{Label: "View Products", Href: "products.html"},
		},
	},
}

// Carousel cycles the hero slide deck. Navigation wraps at both ends; this
// is intentionally different from the product gallery, which clamps.
type Carousel struct {
	mu     sync.Mutex
	slides []Slide
	active int
	stop   chan struct{}
}

// NewCarousel returns a carousel over the given deck
func NewCarousel(slides []Slide) *Carousel {
	return &Carousel{slides: slides}
}

// Active returns the current slide position
func (c *Carousel) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// ActiveSlide returns the current slide, or false for an empty deck
func (c *Carousel) ActiveSlide() (Slide, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.slides) == 0 {
		return Slide{}, false
	}
	return c.slides[c.active], true
}

// Next advances to the following slide, wrapping to the first
func (c *Carousel) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advance()
}

func (c *Carousel) advance() {
	if len(c.slides) == 0 {
		return
	}
	if c.active == len(c.slides)-1 {
		c.active = 0
		return
	}
	c.active++
}

// Prev retreats to the preceding slide, wrapping to the last
func (c *Carousel) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.slides) == 0 {
		return
	}
	if c.active == 0 {
		c.active = len(c.slides) - 1
		return
	}
	c.active--
}

// GoTo jumps to a slide (indicator click), ignoring out-of-range targets
func (c *Carousel) GoTo(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i >= 0 && i < len(c.slides) {
		c.active = i
	}
}

// HandleKey applies a keyboard event; both arrows wrap
func (c *Carousel) HandleKey(key string) bool {
	switch key {
	case KeyArrowRight:
		c.Next()
	case KeyArrowLeft:
		c.Prev()
	default:
		return false
	}
	return true
}

// StartAuto begins auto-advancing every interval until StopAuto is called.
// Starting an already running carousel restarts its timer.
func (c *Carousel) StartAuto(interval time.Duration) {
	c.StopAuto()

	c.mu.Lock()
	stop := make(chan struct{})
	c.stop = stop
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Next()
			case <-stop:
				return
			}
		}
	}()
}

// StopAuto halts auto-advance; safe to call when not running
func (c *Carousel) StopAuto() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}
