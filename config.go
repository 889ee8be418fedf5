package folio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Site")
	URL         string `yaml:"url"`         // Canonical base URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for RSS and meta tags
	Author      string `yaml:"author"`      // Author name for JSON-LD

	Nav    []NavLink    `yaml:"nav"`    // Navigation links, immutable for the process lifetime
	Social []SocialLink `yaml:"social"` // Social profile links

	Addr         string `yaml:"addr"`          // Listen address (default ":3000")
	DatabasePath string `yaml:"database_path"` // SQLite path (default "data/site.db")

	AdminPassword string `yaml:"-"` // Required: admin login password (env only)
	SessionSecret string `yaml:"-"` // Required: session encryption secret (env only)
	CookieSecure  bool   `yaml:"cookie_secure"`

	PostCacheTTL time.Duration `yaml:"post_cache_ttl"` // Post cache TTL (default 5min)
}

// NavLink is a static navigation entry.
type NavLink struct {
	Text         string `yaml:"text"`
	Href         string `yaml:"href"`
	Icon         string `yaml:"icon"`
	ShowInHeader bool   `yaml:"show_in_header"`
}

// SocialLink is a static social profile entry.
type SocialLink struct {
	Text         string `yaml:"text"`
	Href         string `yaml:"href"`
	Icon         string `yaml:"icon"`
	ShowInHeader bool   `yaml:"show_in_header"`
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Site"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// HeaderNav returns the navigation links flagged for the header bar.
func (c SiteConfig) HeaderNav() []NavLink {
	var out []NavLink
	for _, l := range c.Nav {
		if l.ShowInHeader {
			out = append(out, l)
		}
	}
	return out
}

// HeaderSocials returns the social links flagged for the header bar.
func (c SiteConfig) HeaderSocials() []SocialLink {
	var out []SocialLink
	for _, l := range c.Social {
		if l.ShowInHeader {
			out = append(out, l)
		}
	}
	return out
}

// LoadSiteConfig reads a site.yaml file. Secrets (AdminPassword,
// SessionSecret) are never stored in the file; the runner fills them in from
// the environment.
func LoadSiteConfig(path string) (SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("folio: read config: %w", err)
	}
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("folio: parse config: %w", err)
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
