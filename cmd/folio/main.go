// Command folio serves a personal blog/portfolio site using the built-in
// default theme. Site branding, nav, and social links come from site.yaml;
// secrets come from the environment.
package main

import (
	"log"
	"strings"

	"github.com/tverberg/folio"
)

func main() {
	cfg, err := folio.LoadSiteConfig(folio.EnvOr("SITE_CONFIG", "site.yaml"))
	if err != nil {
		log.Fatal(err)
	}
	cfg.AdminPassword = folio.MustEnv("ADMIN_PASSWORD")
	cfg.SessionSecret = folio.MustEnv("ADMIN_SESSION_SECRET")
	cfg.CookieSecure = strings.EqualFold(folio.EnvOr("COOKIE_SECURE", ""), "true")

	app := folio.New(cfg, defaultViews(), folio.WithStaticDir(folio.EnvOr("STATIC_DIR", "public")))
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
