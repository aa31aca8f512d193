// Package editor provides a Bubble Tea text editor component backed by the
// buffer package, with undo and redo provided by the undo package.
//
// The package is responsible for input handling, viewport behavior,
// grapheme-aware rendering, a simple composition mode that stands in for an
// input method, and host integration hooks (clipboard and change events).
package editor
