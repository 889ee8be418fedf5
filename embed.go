package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the framework:
// header.js (scroll/drawer behavior for the site header).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
