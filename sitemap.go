package folio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName    xml.Name     `xml:"urlset"`
	XMLNS      string       `xml:"xmlns,attr"`
	XMLNSImage string       `xml:"xmlns:image,attr,omitempty"`
	URLs       []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string         `xml:"loc"`
	LastMod string         `xml:"lastmod,omitempty"`
	Images  []sitemapImage `xml:"image:image,omitempty"`
}

// sitemapImage lists a post's hero image so image search indexes it with the
// page (sitemap-image extension).
type sitemapImage struct {
	Loc string `xml:"image:loc"`
}

func (a *App) renderSitemap(c echo.Context, posts []BlogPost) error {
	base := a.Config.URL
	home := sitemapURL{Loc: BuildURL(base)}
	if len(posts) > 0 {
		// Posts arrive newest first; the home page changes with them.
		home.LastMod = posts[0].Date
	}
	urls := []sitemapURL{home}
	hasImages := false
	for _, p := range posts {
		u := sitemapURL{
			Loc:     BuildURL(base, "blog", p.Slug),
			LastMod: p.Date,
		}
		if p.Hero != "" {
			u.Images = []sitemapImage{{Loc: absoluteURL(p.Hero, base)}}
			hasImages = true
		}
		urls = append(urls, u)
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if hasImages {
		sitemap.XMLNSImage = "http://www.google.com/schemas/sitemap-image/1.1"
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
