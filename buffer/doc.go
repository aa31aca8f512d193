// Package buffer implements an editable rune buffer that reports every
// mutation to registered watchers.
//
// Offsets are 0-based rune offsets; ranges are half-open: [Start, End).
// Each mutation is announced as BeforeChange, AfterChange and Settled, in
// that order and synchronously, including mutations made through Replace.
// A buffer may carry one composing span, which marks text produced by an
// input method that has not been committed yet.
package buffer
