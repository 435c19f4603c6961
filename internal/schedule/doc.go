// Package schedule fetches the raw conference schedule snippets.
//
// The conference site publishes one HTML snippet per day of the program. The
// client fetches each day sequentially with a fixed timeout and a small rate
// limit, concatenates whatever it gets, and leaves the empty-result decision
// to the caller. A day that fails to fetch is simply missing from the output.
package schedule
