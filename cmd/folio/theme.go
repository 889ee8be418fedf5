package main

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/tverberg/folio"
	"github.com/tverberg/folio/markdown"
	"github.com/tverberg/folio/views"
)

// defaultViews is a plain HTML theme so the server runs out of the box.
// Sites that want their own look replace this with generated templ
// components; the ViewFuncs signatures are the only contract.
func defaultViews() folio.ViewFuncs {
	return folio.ViewFuncs{
		Home:             homePage,
		HomePartial:      homePartial,
		BlogSection:      blogSection,
		Post:             postPage,
		PostPartial:      postPartial,
		AdminLogin:       adminLogin,
		AdminDashboard:   adminDashboard,
		AdminFormPartial: adminForm,
		AdminImages:      adminImages,
		NotFound:         notFound,
		ServerError:      serverError,
	}
}

func esc(s string) string {
	return html.EscapeString(s)
}

// page wraps a body renderer with the shared head and header chrome.
func page(p folio.PageData, body func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeHead(w, p); err != nil {
			return err
		}
		if err := writeHeader(w, p); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="site-main">`); err != nil {
			return err
		}
		if err := body(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><script src="/public/header.js" defer></script></body></html>`)
		return err
	})
}

// writeHead emits the document head from the resolved page metadata: title,
// description, canonical link, and the Open Graph / Twitter card tags.
func writeHead(w io.Writer, p folio.PageData) error {
	m := p.Meta
	if _, err := fmt.Fprintf(w,
		`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title>`,
		esc(m.Title)); err != nil {
		return err
	}
	if m.Description != "" {
		if _, err := fmt.Fprintf(w, `<meta name="description" content="%s">`, esc(m.Description)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w,
		`<link rel="canonical" href="%s"><meta property="og:title" content="%s"><meta property="og:type" content="%s"><meta property="og:url" content="%s">`,
		esc(m.CanonicalURL), esc(m.Title), esc(m.PageType), esc(m.CanonicalURL)); err != nil {
		return err
	}
	if m.Description != "" {
		if _, err := fmt.Fprintf(w, `<meta property="og:description" content="%s">`, esc(m.Description)); err != nil {
			return err
		}
	}
	card := "summary"
	if m.Image != nil {
		card = "summary_large_image"
		if _, err := fmt.Fprintf(w, `<meta property="og:image" content="%s">`, esc(m.Image.Src)); err != nil {
			return err
		}
		if m.Image.Alt != "" {
			if _, err := fmt.Fprintf(w, `<meta property="og:image:alt" content="%s">`, esc(m.Image.Alt)); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintf(w, `<meta name="twitter:card" content="%s">`, card); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<link rel="alternate" type="application/rss+xml" title="%s" href="/feed.xml">`, esc(p.Site.Name)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<script type="application/ld+json">%s</script>`, folio.WebsiteJsonLD(p.Site)); err != nil {
		return err
	}
	_, err := io.WriteString(w, `<link rel="stylesheet" href="/public/styles.css"></head><body>`)
	return err
}

// writeHeader emits the header bar, nav drawer, and dismissal mask with
// their first-paint classes; header.js drives them from there.
func writeHeader(w io.Writer, p folio.PageData) error {
	if _, err := fmt.Fprintf(w, `<header data-site-header class="%s"><a href="/" class="site-title">%s</a><nav class="site-nav">`,
		esc(views.HeaderClass(p.Header)), esc(p.Site.Name)); err != nil {
		return err
	}
	for _, l := range p.Site.HeaderNav() {
		if _, err := fmt.Fprintf(w, `<a href="%s">%s</a>`, esc(l.Href), esc(l.Text)); err != nil {
			return err
		}
	}
	for _, l := range p.Site.HeaderSocials() {
		if _, err := fmt.Fprintf(w, `<a href="%s" rel="me" aria-label="%s">%s</a>`, esc(l.Href), esc(l.Text), esc(l.Text)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, `<button data-drawer-toggle aria-label="Menu">☰</button></nav></header><div data-drawer-mask class="%s"></div><aside data-nav-drawer class="%s"><nav>`,
		esc(views.MaskClass(p.Header)), esc(views.DrawerClass(p.Header))); err != nil {
		return err
	}
	for _, l := range p.Site.Nav {
		if _, err := fmt.Fprintf(w, `<a href="%s">%s</a>`, esc(l.Href), esc(l.Text)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</nav></aside>`)
	return err
}

func writePostList(w io.Writer, posts []folio.BlogPost, activeTag string, tags []string) error {
	if _, err := io.WriteString(w, `<section id="blog"><ul class="tag-list">`); err != nil {
		return err
	}
	for _, t := range tags {
		if _, err := fmt.Fprintf(w, `<li><a class="%s" href="/?tag=%s">%s</a></li>`,
			esc(views.TagClass(t == activeTag)), views.PathEscape(t), esc(t)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</ul><ul class="post-list">`); err != nil {
		return err
	}
	for _, p := range posts {
		if _, err := fmt.Fprintf(w, `<li><a href="%s/">%s</a><time datetime="%s">%s</time><p>%s</p></li>`,
			esc(p.Link), esc(p.Title), esc(p.Date), esc(p.Date), esc(p.Summary)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul></section>`)
	return err
}

func homePage(p folio.PageData, posts []folio.BlogPost, activeTag string, tags []string) templ.Component {
	return page(p, func(ctx context.Context, w io.Writer) error {
		return writePostList(w, posts, activeTag, tags)
	})
}

func homePartial(p folio.PageData, posts []folio.BlogPost, activeTag string, tags []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writePostList(w, posts, activeTag, tags)
	})
}

func blogSection(posts []folio.BlogPost, activeTag string, tags []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writePostList(w, posts, activeTag, tags)
	})
}

func writePost(ctx context.Context, w io.Writer, site folio.SiteConfig, post folio.BlogPost, posts []folio.BlogPost) error {
	if _, err := fmt.Fprintf(w, `<article><h1>%s</h1><time datetime="%s">%s</time>`, esc(post.Title), esc(post.Date), esc(post.Date)); err != nil {
		return err
	}
	if err := markdown.Markdown(post.Content).Render(ctx, w); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, `<script type="application/ld+json">%s</script></article>`, folio.BlogPostingJsonLD(post, site)); err != nil {
		return err
	}
	related := views.FilterRelatedPosts(post, posts)
	if len(related) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, `<aside class="related"><h2>Related</h2><ul>`); err != nil {
		return err
	}
	for _, r := range related {
		if _, err := fmt.Fprintf(w, `<li><a href="%s/">%s</a></li>`, esc(r.Link), esc(r.Title)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</ul></aside>`)
	return err
}

func postPage(p folio.PageData, post folio.BlogPost, posts []folio.BlogPost) templ.Component {
	return page(p, func(ctx context.Context, w io.Writer) error {
		return writePost(ctx, w, p.Site, post, posts)
	})
}

func postPartial(p folio.PageData, post folio.BlogPost, posts []folio.BlogPost) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writePost(ctx, w, p.Site, post, posts)
	})
}

func adminLogin(showError bool, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		msg := ""
		if showError {
			msg = `<p class="error">Wrong password.</p>`
		}
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html><head><title>Admin</title></head><body>%s<form method="post" action="/admin/login/"><input type="hidden" name="_csrf" value="%s"><input type="password" name="password" autofocus><button>Log in</button></form></body></html>`,
			msg, esc(csrfToken))
		return err
	})
}

func adminDashboard(posts []folio.BlogPost, message string, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html><head><title>Admin</title></head><body><p>%s</p><a href="/admin/images/">Images</a><ul>`, esc(message)); err != nil {
			return err
		}
		for _, p := range posts {
			status := "draft"
			if p.Published {
				status = "published"
			}
			if _, err := fmt.Fprintf(w, `<li><a href="/admin/post/%s/">%s</a> (%s, %s)</li>`, views.PathEscape(p.Slug), esc(p.Title), esc(p.Date), status); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul>`); err != nil {
			return err
		}
		if err := adminForm(folio.BlogPost{}, csrfToken).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func adminForm(post folio.BlogPost, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<form method="post" action="/admin/save/"><input type="hidden" name="_csrf" value="%s"><input name="title" value="%s" placeholder="Title"><input name="slug" value="%s" placeholder="Slug"><input name="date" value="%s" placeholder="YYYY-MM-DD"><input name="tags" value="%s" placeholder="Tags"><input name="hero" value="%s" placeholder="Hero image URL"><input name="hero_alt" value="%s" placeholder="Hero alt text"><textarea name="summary" placeholder="Summary">%s</textarea><textarea name="content" placeholder="Content">%s</textarea><label><input type="checkbox" name="published"%s> Published</label><button>Save</button></form>`,
			esc(csrfToken), esc(post.Title), esc(post.Slug), esc(post.Date), esc(views.JoinTags(post.Tags)), esc(post.Hero), esc(post.HeroAlt), esc(post.Summary), esc(post.Content), checked(post.Published))
		return err
	})
}

func checked(b bool) string {
	if b {
		return " checked"
	}
	return ""
}

func adminImages(images []folio.Image, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html><head><title>Images</title></head><body><form method="post" action="/admin/images/upload/" enctype="multipart/form-data"><input type="hidden" name="_csrf" value="%s"><input type="file" name="image"><button>Upload</button></form><ul>`,
			esc(csrfToken)); err != nil {
			return err
		}
		for _, img := range images {
			if _, err := fmt.Fprintf(w, `<li>/public/uploads/%s (%dx%d, %d bytes)</li>`, esc(img.Filename), img.Width, img.Height, img.Size); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></body></html>`)
		return err
	})
}

func notFound(p folio.PageData) templ.Component {
	return page(p, func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>404</h1><p>Nothing here. <a href="/">Back home</a>.</p>`)
		return err
	})
}

func serverError(p folio.PageData) templ.Component {
	return page(p, func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1>500</h1><p>Something broke. Try again shortly.</p>`)
		return err
	})
}
