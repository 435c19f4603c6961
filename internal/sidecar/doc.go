// Package sidecar persists the manually-curated per-paper metadata.
//
// The url.json file next to the generated page is the only state that
// survives across runs. The scraper rewrites it as a scaffold on every run,
// preserving url/abstract values by paper id, and the rendered page's export
// button produces an updated copy for the user to drop back in place.
package sidecar
