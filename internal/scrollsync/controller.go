// Package scrollsync keeps a menu page's category tab strip consistent with
// its scroll position, in both directions: activating a tab scrolls to its
// section, and scrolling through a section activates its tab and re-centers
// it in the strip.
//
// The controller is the reference state machine for the behavior; the
// embedded menu-tabs.js asset is its browser rendition with the same
// constants plus animation-frame throttling of scroll events.
package scrollsync

import "time"

const (
	// HeaderOffset keeps a selected section's top just below the sticky
	// tab strip.
	HeaderOffset = 80

	// ScrollLookahead is added to the raw scroll offset before section
	// matching, so a section activates as it approaches rather than when
	// it reaches the very top.
	ScrollLookahead = 100

	// SectionTopBuffer extends each section's span upward, biasing
	// activation slightly early.
	SectionTopBuffer = 50

	// SuppressionWindow bounds how long scroll-driven reclassification is
	// ignored after a programmatic scroll. There is no scroll-completion
	// signal to key off, so the window is time-based.
	SuppressionWindow = 500 * time.Millisecond
)

// SectionBounds is a category section's vertical span in document
// coordinates.
type SectionBounds struct {
	Top    float64
	Height float64
}

// Viewport is the controller's window onto live page layout. Bounds are
// re-measured on every call: content height changes as images load, so
// cached geometry would go stale.
type Viewport interface {
	// ScrollY is the current vertical scroll offset of the content viewport.
	ScrollY() float64

	// SectionBounds measures a category's content section. ok is false
	// while the section has not been laid out yet.
	SectionBounds(category string) (bounds SectionBounds, ok bool)

	// ScrollTo smooth-scrolls the content viewport to an offset.
	ScrollTo(offset float64)

	// TabBounds measures a tab within the horizontally scrollable strip.
	TabBounds(category string) (left, width float64, ok bool)

	// TabStripWidth is the visible width of the tab strip.
	TabStripWidth() float64

	// ScrollTabStrip smooth-scrolls the tab strip horizontally.
	ScrollTabStrip(offset float64)
}

// Controller tracks the active category for one page view. It is not safe
// for concurrent use; all events arrive on a single UI goroutine.
type Controller struct {
	categories    []string
	viewport      Viewport
	now           func() time.Time
	active        string
	suppressUntil time.Time
	detached      bool
}

// Option configures a Controller
type Option func(*Controller)

// WithClock overrides the time source, used to test the suppression window
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// New creates a controller over the given categories in display order. The
// first category starts active; with no categories the controller is inert.
func New(categories []string, viewport Viewport, opts ...Option) *Controller {
	c := &Controller{
		categories: append([]string(nil), categories...),
		viewport:   viewport,
		now:        time.Now,
	}
	if len(c.categories) > 0 {
		c.active = c.categories[0]
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ActiveCategory returns the currently active category, or "" when there are
// no categories.
func (c *Controller) ActiveCategory() string {
	return c.active
}

// SelectCategory makes a category active and scrolls its section to just
// below the header. Scroll-driven reclassification is suppressed for
// SuppressionWindow; the window restarts on every call, so rapid re-clicks
// keep the most recent target authoritative instead of letting an earlier
// window expire mid-animation.
func (c *Controller) SelectCategory(category string) {
	if c.detached || !c.hasCategory(category) {
		return
	}

	c.active = category
	c.suppressUntil = c.now().Add(SuppressionWindow)

	if bounds, ok := c.viewport.SectionBounds(category); ok {
		c.viewport.ScrollTo(bounds.Top - HeaderOffset)
	}
}

// OnViewportScroll reclassifies the active category from the current scroll
// position. It is a no-op while a programmatic scroll is in flight. The first
// section in display order whose span contains the effective position wins,
// which keeps overlapping spans deterministic.
func (c *Controller) OnViewportScroll() {
	if c.detached || len(c.categories) == 0 {
		return
	}
	if c.now().Before(c.suppressUntil) {
		return
	}

	position := c.viewport.ScrollY() + ScrollLookahead

	current := c.categories[0]
	for _, category := range c.categories {
		bounds, ok := c.viewport.SectionBounds(category)
		if !ok {
			continue
		}
		if position >= bounds.Top-SectionTopBuffer && position < bounds.Top+bounds.Height {
			current = category
			break
		}
	}

	if current != c.active {
		c.active = current
		c.recenterTab(current)
	}
}

// Detach deactivates the controller at page teardown. All later events are
// ignored.
func (c *Controller) Detach() {
	c.detached = true
}

// recenterTab scrolls the strip so the tab's midpoint aligns with the
// strip's midpoint.
func (c *Controller) recenterTab(category string) {
	left, width, ok := c.viewport.TabBounds(category)
	if !ok {
		return
	}
	c.viewport.ScrollTabStrip(left - c.viewport.TabStripWidth()/2 + width/2)
}

func (c *Controller) hasCategory(category string) bool {
	for _, candidate := range c.categories {
		if candidate == category {
			return true
		}
	}
	return false
}
