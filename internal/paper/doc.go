// Package paper defines the core paper record shared across the pipeline.
//
// A Paper is immutable once extracted: the extractor produces the full record,
// the grouper and renderer only read it. The MetaID is the stable key that ties
// a paper to its manually-curated sidecar metadata across re-scrapes.
package paper
