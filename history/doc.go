// Package history stores undoable edit records behind a movable position
// cursor.
//
// Records at indices below Position are applied; the rest form the redo
// tail. Adding a record while a redo tail exists discards the tail first.
// An optional size cap trims from the oldest end, which can leave the
// earliest applied steps permanently out of reach.
//
// History is not safe for concurrent use. Its owner serializes access.
package history
