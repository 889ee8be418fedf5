// Package views holds helper functions for use inside user-provided templ
// templates: CSS class builders for the header and drawer, tag formatting,
// and related-post selection.
package views

import (
	"net/url"
	"strings"

	"github.com/tverberg/folio"
)

// HeaderClass returns the CSS classes for the site header bar. The state
// logic lives in folio.HeaderController; this is only the presentation
// mapping for it.
func HeaderClass(st folio.HeaderState) string {
	base := "fixed inset-x-0 top-0 z-40 transition-transform duration-300"
	if st.Solid {
		base += " bg-white dark:bg-neutral-900 shadow-sm"
	} else {
		base += " bg-transparent"
	}
	if st.Hidden {
		base += " -translate-y-full"
	}
	return base
}

// DrawerClass returns the CSS classes for the slide-in navigation drawer.
func DrawerClass(st folio.HeaderState) string {
	base := "fixed inset-y-0 right-0 z-50 w-72 transition-transform duration-300"
	if st.DrawerOpen {
		return base + " translate-x-0"
	}
	return base + " translate-x-full"
}

// MaskClass returns the CSS classes for the full-screen dismissal mask
// behind the drawer. The mask only accepts pointer events while the drawer
// is open.
func MaskClass(st folio.HeaderState) string {
	base := "fixed inset-0 z-40 bg-black/40 transition-opacity duration-300"
	if st.DrawerOpen {
		return base + " opacity-100 pointer-events-auto"
	}
	return base + " opacity-0 pointer-events-none"
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	base := "inline-flex items-center rounded border border-ink dark:border-white/30 bg-stone-100 dark:bg-neutral-700 px-2.5 py-1 text-[11px] font-semibold uppercase tracking-[0.12em] hover:-translate-y-0.5 hover:shadow-sm transition"
	if active {
		base += " bg-ink dark:bg-white text-white dark:text-ink"
	}
	return base
}

// FilterRelatedPosts returns posts that share at least one tag with the current post.
func FilterRelatedPosts(current folio.BlogPost, posts []folio.BlogPost) []folio.BlogPost {
	tagSet := make(map[string]struct{})
	for _, t := range current.Tags {
		tag := strings.ToLower(strings.TrimSpace(t))
		if tag != "" {
			tagSet[tag] = struct{}{}
		}
	}
	var related []folio.BlogPost
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Tags {
			tag := strings.ToLower(strings.TrimSpace(t))
			if _, ok := tagSet[tag]; ok {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// JoinTags formats a tag slice as a comma-separated string for form fields.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// PathEscape wraps url.PathEscape for use in templ expressions.
func PathEscape(s string) string {
	return url.PathEscape(s)
}
