// Package undo records edits made to a text source and replays them as
// undo and redo steps.
//
// A Recorder listens to the source's change notifications and turns them
// into history records: quick runs of typing or deleting are batched into
// one record, and an input-method composition collapses into a single
// record once it is committed. An Undoer owns a Recorder and a History and
// applies records back to the source without recording its own writes.
package undo
