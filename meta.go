package folio

import (
	"net/url"
	"strings"
)

// PageMeta describes the per-page inputs to metadata resolution. Handlers
// build one of these for every page and pass the resolved result into the
// user's <head> template.
type PageMeta struct {
	Title       string // page title, joined with the site name; empty falls back to the site name alone
	Description string
	Image       *MetaImage
	PageType    string // "website" or "article" (default "website")
}

// MetaImage is an Open Graph / social card image reference.
type MetaImage struct {
	Src string
	Alt string
}

// ResolvedMeta is the fully resolved metadata consumed by head templates:
// composed title, canonical URL, and an absolute image URL if one was given.
type ResolvedMeta struct {
	Title        string
	Description  string
	CanonicalURL string
	PageType     string
	Image        *MetaImage // Src resolved to an absolute URL
}

// ResolveMeta resolves per-page metadata against the site configuration and
// the current request URL. It is a pure function: no I/O, no failure modes,
// safe to call concurrently.
func ResolveMeta(props PageMeta, requestURL *url.URL, cfg SiteConfig) ResolvedMeta {
	pageType := props.PageType
	if pageType == "" {
		pageType = "website"
	}

	resolved := ResolvedMeta{
		Title:        composeTitle(props.Title, cfg.Name),
		Description:  props.Description,
		CanonicalURL: CanonicalURL(requestURL, cfg.URL),
		PageType:     pageType,
	}

	if props.Image != nil && props.Image.Src != "" {
		resolved.Image = &MetaImage{
			Src: absoluteURL(props.Image.Src, cfg.URL),
			Alt: props.Image.Alt,
		}
	}

	return resolved
}

// composeTitle joins the page title and site title with " | ", skipping
// empty parts so the separator never leads or trails.
func composeTitle(pageTitle, siteTitle string) string {
	return strings.Join(FilterEmpty([]string{pageTitle, siteTitle}), " | ")
}

// CanonicalURL builds the canonical URL for a request by resolving its path
// and query against the site base URL.
//
// Paths without a query string always get exactly one trailing slash, so the
// operation is idempotent. Paths with a query string are left untouched: a
// trailing slash before the query is kept as-is and none is appended. The
// with-query behavior matches what the site has always emitted and is pinned
// by a regression test; do not change it without re-checking indexed URLs.
func CanonicalURL(requestURL *url.URL, base string) string {
	b, err := url.Parse(base)
	if err != nil {
		return requestURL.String()
	}
	u := b.ResolveReference(&url.URL{Path: requestURL.Path, RawQuery: requestURL.RawQuery})
	if u.RawQuery == "" && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// absoluteURL resolves ref against the site base URL. Already-absolute
// references pass through unchanged.
func absoluteURL(ref, base string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
