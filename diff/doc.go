// Package diff reduces two snapshots of a text to the single changed span
// between them.
//
// Offsets and lengths are in runes. Compute trims the longest common prefix
// and then the longest common suffix of what remains, which is exactly what
// is needed to turn a multi-step composition into one replayable edit.
package diff
