package folio

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfigYAML = `name: Example Site
url: https://site.test/
description: Notes on things
author: Jo Example
nav:
  - text: Blog
    href: /
    show_in_header: true
  - text: Projects
    href: /projects/
    show_in_header: true
  - text: Colophon
    href: /colophon/
social:
  - text: GitHub
    href: https://github.com/example
    icon: github
    show_in_header: true
  - text: Mastodon
    href: https://hachyderm.io/@example
    icon: mastodon
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadSiteConfig(t *testing.T) {
	cfg, err := LoadSiteConfig(writeTestConfig(t))
	if err != nil {
		t.Fatalf("LoadSiteConfig failed: %v", err)
	}
	if cfg.Name != "Example Site" {
		t.Errorf("Name = %q, want %q", cfg.Name, "Example Site")
	}
	if len(cfg.Nav) != 3 {
		t.Fatalf("Nav count = %d, want 3", len(cfg.Nav))
	}
	if len(cfg.Social) != 2 {
		t.Fatalf("Social count = %d, want 2", len(cfg.Social))
	}
	if cfg.Social[0].Icon != "github" {
		t.Errorf("Social[0].Icon = %q, want %q", cfg.Social[0].Icon, "github")
	}
}

func TestLoadSiteConfigMissingFile(t *testing.T) {
	if _, err := LoadSiteConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestHeaderNavFiltersByFlag(t *testing.T) {
	cfg, err := LoadSiteConfig(writeTestConfig(t))
	if err != nil {
		t.Fatalf("LoadSiteConfig failed: %v", err)
	}

	nav := cfg.HeaderNav()
	if len(nav) != 2 {
		t.Fatalf("HeaderNav count = %d, want 2", len(nav))
	}
	for _, l := range nav {
		if !l.ShowInHeader {
			t.Errorf("HeaderNav returned %q without the header flag", l.Text)
		}
	}

	socials := cfg.HeaderSocials()
	if len(socials) != 1 || socials[0].Text != "GitHub" {
		t.Errorf("HeaderSocials = %+v, want only GitHub", socials)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	app := New(SiteConfig{URL: "https://site.test/"}, ViewFuncs{})
	cfg := app.Config
	if cfg.Name != "Site" {
		t.Errorf("Name default = %q, want %q", cfg.Name, "Site")
	}
	if cfg.URL != "https://site.test" {
		t.Errorf("URL should have trailing slash trimmed, got %q", cfg.URL)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr default = %q, want %q", cfg.Addr, ":3000")
	}
	if cfg.DatabasePath != "data/site.db" {
		t.Errorf("DatabasePath default = %q", cfg.DatabasePath)
	}
	if cfg.PostCacheTTL == 0 {
		t.Error("PostCacheTTL default should be set")
	}
}
