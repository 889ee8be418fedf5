package folio

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// pageData resolves per-page metadata for the current request and bundles it
// with the site config and the first-paint header state. Server renders
// always start at the top of the page; the client script takes over from
// there and mirrors the same transitions.
func (a *App) pageData(c echo.Context, meta PageMeta) PageData {
	hdr := NewHeaderController()
	hdr.Mount(0)
	return PageData{
		Site:   a.Config,
		Meta:   ResolveMeta(meta, c.Request().URL, a.Config),
		Header: hdr.State(),
	}
}

func (a *App) handleHome(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Cache.ListPosts(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	page := a.pageData(c, PageMeta{Description: a.Config.Description})
	if hxRequest(c) {
		partial := c.QueryParam("partial")
		switch partial {
		case "blog":
			return Render(c, a.Views.BlogSection(posts, tag, tags))
		case "home":
			return Render(c, a.Views.HomePartial(page, posts, tag, tags))
		}
	}
	return Render(c, a.Views.Home(page, posts, tag, tags))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.pageData(c, PageMeta{})))
		}
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	meta := PageMeta{
		Title:       post.Title,
		Description: post.Summary,
		PageType:    "article",
	}
	if post.Hero != "" {
		meta.Image = &MetaImage{Src: post.Hero, Alt: post.HeroAlt}
	}
	page := a.pageData(c, meta)
	if hxRequest(c) && c.QueryParam("partial") == "post" {
		return Render(c, a.Views.PostPartial(page, post, posts))
	}
	return Render(c, a.Views.Post(page, post, posts))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.pageData(c, PageMeta{})))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.pageData(c, PageMeta{})))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
