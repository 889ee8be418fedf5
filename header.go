package folio

// Scroll offsets are in CSS pixels, matching what the client reports.
const (
	// headerSolidOffset is the scroll offset past which the header gets an
	// opaque background. Checked once at mount, not on every scroll event.
	headerSolidOffset = 100

	// headerPinOffset is the offset below which the header is always shown,
	// regardless of scroll direction.
	headerPinOffset = 150

	// headerScrollDelta is how far the page must move, relative to the last
	// recorded offset, before the header hides or re-appears.
	headerScrollDelta = 150
)

// HeaderState captures the visual state of the site header bar and the
// mobile navigation drawer. The bar's background and visibility toggle
// independently; the drawer toggles on click.
type HeaderState struct {
	Solid      bool // opaque background once the page is scrolled past the top
	Hidden     bool // bar slid out of view while scrolling down
	DrawerOpen bool
}

// HeaderController owns a HeaderState and the last recorded scroll offset,
// and advances the state from scroll and click events. It replaces the
// module-level scroll variable the old site kept: each page gets its own
// controller, and event handlers share it by reference.
//
// All transitions are total functions of the current state and the event.
// The controller is driven from a single event loop and does no locking.
type HeaderController struct {
	state      HeaderState
	lastOffset int
}

// NewHeaderController returns a controller in the initial state:
// transparent, visible, drawer closed.
func NewHeaderController() *HeaderController {
	return &HeaderController{}
}

// Mount records the initial scroll offset and gives the header an opaque
// background when the page loads already scrolled down. This check runs
// once; afterwards only Scroll and ToggleDrawer mutate the state.
func (h *HeaderController) Mount(offset int) {
	h.lastOffset = offset
	h.state.Solid = offset > headerSolidOffset
}

// Scroll advances the state for a new scroll offset.
func (h *HeaderController) Scroll(offset int) {
	h.state, h.lastOffset = scrollStep(h.state, h.lastOffset, offset)
}

// ToggleDrawer flips the drawer between open and closed. Two consecutive
// calls restore the original state.
func (h *HeaderController) ToggleDrawer() {
	h.state.DrawerOpen = !h.state.DrawerOpen
}

// State returns a copy of the current header state.
func (h *HeaderController) State() HeaderState {
	return h.state
}

// MaskInteractive reports whether the full-screen dismissal mask behind the
// drawer should accept pointer events. While the mask is interactive it also
// swallows touch-move so the page behind the drawer cannot scroll; that part
// lives in the client script (embedded/header.js), which mirrors these
// transitions.
func (h *HeaderController) MaskInteractive() bool {
	return h.state.DrawerOpen
}

// scrollStep is the pure scroll transition. Near the top of the page the bar
// is pinned visible and the recorded offset is left alone; otherwise a move
// of more than headerScrollDelta hides the bar (scrolling down) or shows it
// (scrolling up) and re-anchors the offset. The two delta branches are
// mutually exclusive range checks on the same delta, so at most one fires.
func scrollStep(st HeaderState, last, offset int) (HeaderState, int) {
	switch {
	case offset < headerPinOffset:
		st.Hidden = false
		return st, last
	case offset-last > headerScrollDelta:
		st.Hidden = true
		return st, offset
	case last-offset > headerScrollDelta:
		st.Hidden = false
		return st, offset
	default:
		return st, last
	}
}
