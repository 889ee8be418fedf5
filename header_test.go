package folio

import "testing"

func TestHeaderInitialState(t *testing.T) {
	h := NewHeaderController()
	st := h.State()
	if st.Solid || st.Hidden || st.DrawerOpen {
		t.Errorf("initial state should be transparent, visible, closed, got %+v", st)
	}
}

func TestHeaderMountSolid(t *testing.T) {
	tests := []struct {
		offset int
		solid  bool
	}{
		{0, false},
		{100, false},
		{101, true},
		{150, true},
	}
	for _, tt := range tests {
		h := NewHeaderController()
		h.Mount(tt.offset)
		if got := h.State().Solid; got != tt.solid {
			t.Errorf("Mount(%d): Solid = %v, want %v", tt.offset, got, tt.solid)
		}
	}
}

func TestHeaderScrollDownHidesThenLowOffsetShows(t *testing.T) {
	h := NewHeaderController()
	h.Mount(0)

	h.Scroll(200)
	if !h.State().Hidden {
		t.Fatal("scroll 0 -> 200 should hide the header")
	}
	h.Scroll(400)
	if !h.State().Hidden {
		t.Fatal("scroll 200 -> 400 should keep the header hidden")
	}
	h.Scroll(100)
	if h.State().Hidden {
		t.Fatal("scroll below 150 must force the header visible")
	}
}

func TestHeaderScrollUpShows(t *testing.T) {
	h := NewHeaderController()
	h.Mount(1000)

	h.Scroll(1200)
	if !h.State().Hidden {
		t.Fatal("scrolling down past the delta should hide")
	}
	h.Scroll(1000)
	if h.State().Hidden {
		t.Fatal("scrolling up past the delta should show")
	}
}

func TestHeaderSmallDeltaDoesNotReanchor(t *testing.T) {
	h := NewHeaderController()
	h.Mount(200)

	// Moves under the delta neither change the state nor the anchor, so
	// small moves accumulate against the original offset.
	h.Scroll(300)
	if h.State().Hidden {
		t.Fatal("delta of 100 should not hide")
	}
	h.Scroll(360)
	if !h.State().Hidden {
		t.Fatal("360 is more than 150 past the anchor of 200, should hide")
	}
}

func TestHeaderLowOffsetLeavesAnchorAlone(t *testing.T) {
	h := NewHeaderController()
	h.Mount(1000)

	// Forced-visible branch exits early without touching the anchor.
	h.Scroll(100)
	if h.State().Hidden {
		t.Fatal("offset under 150 must be visible")
	}
	h.Scroll(1200)
	if !h.State().Hidden {
		t.Fatal("anchor should still be 1000, so 1200 hides")
	}
}

func TestDrawerToggle(t *testing.T) {
	h := NewHeaderController()
	h.ToggleDrawer()
	if !h.State().DrawerOpen {
		t.Fatal("first toggle should open the drawer")
	}
	if !h.MaskInteractive() {
		t.Fatal("mask should be interactive while the drawer is open")
	}
	h.ToggleDrawer()
	if h.State().DrawerOpen {
		t.Fatal("second toggle should close the drawer")
	}
	if h.MaskInteractive() {
		t.Fatal("mask should ignore pointer events while closed")
	}
}

func TestDrawerIndependentOfScroll(t *testing.T) {
	h := NewHeaderController()
	h.Mount(0)
	h.ToggleDrawer()
	h.Scroll(400)
	st := h.State()
	if !st.DrawerOpen {
		t.Fatal("scrolling must not close the drawer")
	}
	if !st.Hidden {
		t.Fatal("scroll transitions still apply with the drawer open")
	}
}
