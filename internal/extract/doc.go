// Package extract parses paper records out of raw schedule markup.
//
// The schedule snippets are table fragments, so the block structure is found
// with a pattern over the raw text and each cell's contents is then parsed
// properly for anchors, presenter names, and the thumbnail. Entity decoding
// of titles and names falls out of the HTML parse.
package extract
