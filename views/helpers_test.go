package views

import (
	"strings"
	"testing"

	"github.com/tverberg/folio"
)

func TestHeaderClass(t *testing.T) {
	got := HeaderClass(folio.HeaderState{})
	if !strings.Contains(got, "bg-transparent") || strings.Contains(got, "-translate-y-full") {
		t.Errorf("default header class = %q", got)
	}

	got = HeaderClass(folio.HeaderState{Solid: true})
	if strings.Contains(got, "bg-transparent") {
		t.Errorf("solid header should not be transparent: %q", got)
	}

	got = HeaderClass(folio.HeaderState{Hidden: true})
	if !strings.Contains(got, "-translate-y-full") {
		t.Errorf("hidden header should slide out: %q", got)
	}
}

func TestDrawerClass(t *testing.T) {
	if got := DrawerClass(folio.HeaderState{DrawerOpen: true}); !strings.Contains(got, "translate-x-0") {
		t.Errorf("open drawer class = %q", got)
	}
	if got := DrawerClass(folio.HeaderState{}); !strings.Contains(got, "translate-x-full") {
		t.Errorf("closed drawer class = %q", got)
	}
}

func TestMaskClass(t *testing.T) {
	if got := MaskClass(folio.HeaderState{DrawerOpen: true}); !strings.Contains(got, "pointer-events-auto") {
		t.Errorf("open mask must accept pointer events: %q", got)
	}
	if got := MaskClass(folio.HeaderState{}); !strings.Contains(got, "pointer-events-none") {
		t.Errorf("closed mask must ignore pointer events: %q", got)
	}
}

func TestFilterRelatedPosts(t *testing.T) {
	current := folio.BlogPost{Slug: "a", Tags: []string{"go", "web"}}
	posts := []folio.BlogPost{
		{Slug: "a", Tags: []string{"go"}},          // self, skipped
		{Slug: "b", Tags: []string{"GO"}},          // case-insensitive match
		{Slug: "c", Tags: []string{"rust"}},        // no shared tag
		{Slug: "d", Tags: []string{"web", "misc"}}, // match
	}

	related := FilterRelatedPosts(current, posts)
	if len(related) != 2 {
		t.Fatalf("related count = %d, want 2 (%v)", len(related), related)
	}
	if related[0].Slug != "b" || related[1].Slug != "d" {
		t.Errorf("related = %v, want [b d]", related)
	}
}

func TestJoinTags(t *testing.T) {
	if got := JoinTags([]string{"go", "web"}); got != "go, web" {
		t.Errorf("JoinTags = %q, want %q", got, "go, web")
	}
}
