package undo

import (
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/iw2rmb/textundo/buffer"
	"github.com/iw2rmb/textundo/history"
)

// Undoer records the edits made to a Source and applies undo and redo
// steps to it.
//
// All methods are safe for concurrent use. Watchers of the source must not
// call back into the Undoer while it applies a step.
type Undoer struct {
	src Source
	log *zap.Logger

	mu       sync.Mutex
	hist     *history.History
	rec      *Recorder
	onChange func()
	unwatch  func()

	applying atomic.Bool
}

// New attaches an Undoer to src. Recording starts immediately.
func New(src Source, opt Options) *Undoer {
	opt = opt.withDefaults()
	hist := history.New(opt.maxSize())
	u := &Undoer{
		src:      src,
		log:      opt.Logger,
		hist:     hist,
		rec:      NewRecorder(src, hist, opt),
		onChange: opt.OnStateChange,
	}
	u.unwatch = src.Watch(watcher{u: u})
	return u
}

// watcher forwards source notifications to the Undoer without exporting
// the watcher methods on Undoer itself.
type watcher struct {
	u *Undoer
}

func (w watcher) BeforeChange(e buffer.Edit) {
	if w.u.applying.Load() {
		return
	}
	w.u.mu.Lock()
	w.u.rec.BeforeChange(e)
	w.u.mu.Unlock()
}

func (w watcher) AfterChange(e buffer.Edit) {
	if w.u.applying.Load() {
		return
	}
	w.u.mu.Lock()
	changed := w.u.rec.AfterChange(e)
	w.u.mu.Unlock()
	if changed {
		w.u.notify()
	}
}

func (w watcher) Settled() {
	if w.u.applying.Load() {
		return
	}
	w.u.mu.Lock()
	changed := w.u.rec.Settled()
	w.u.mu.Unlock()
	if changed {
		w.u.notify()
	}
}

// CanUndo reports whether Undo would apply a step. It is false while a
// composition is in progress.
func (u *Undoer) CanUndo() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return !u.rec.Composing() && u.hist.CanUndo()
}

// CanRedo reports whether Redo would apply a step. It is false while a
// composition is in progress.
func (u *Undoer) CanRedo() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return !u.rec.Composing() && u.hist.CanRedo()
}

// Undo reverts the latest applied record and leaves the caret after the
// restored text. It reports whether anything was reverted.
func (u *Undoer) Undo() bool {
	u.mu.Lock()
	if u.rec.Composing() || !u.hist.CanUndo() {
		u.mu.Unlock()
		return false
	}
	r, ok := u.hist.StepBack()
	if !ok {
		u.mu.Unlock()
		return false
	}
	u.rec.BreakBatch()
	u.apply(r.Start, r.AfterEnd(), r.Before)
	u.log.Debug("undo",
		zap.Int("start", r.Start),
		zap.String("restored", r.Before),
		zap.Int("position", u.hist.Position()))
	u.mu.Unlock()

	u.notify()
	return true
}

// Redo reapplies the next record and leaves the caret after it. It reports
// whether anything was reapplied.
func (u *Undoer) Redo() bool {
	u.mu.Lock()
	if u.rec.Composing() || !u.hist.CanRedo() {
		u.mu.Unlock()
		return false
	}
	r, ok := u.hist.StepForward()
	if !ok {
		u.mu.Unlock()
		return false
	}
	u.rec.BreakBatch()
	u.apply(r.Start, r.BeforeEnd(), r.After)
	u.log.Debug("redo",
		zap.Int("start", r.Start),
		zap.String("applied", r.After),
		zap.Int("position", u.hist.Position()))
	u.mu.Unlock()

	u.notify()
	return true
}

// apply writes to the source without recording the write.
func (u *Undoer) apply(start, end int, text string) {
	u.applying.Store(true)
	u.src.Replace(start, end, text)
	u.applying.Store(false)

	u.src.ClearComposing()
	u.src.SetCursor(start + utf8.RuneCountInString(text))
}

// ClearHistory drops every record.
func (u *Undoer) ClearHistory() {
	u.mu.Lock()
	u.hist.Clear()
	u.rec.BreakBatch()
	u.log.Debug("history cleared")
	u.mu.Unlock()

	u.notify()
}

// SetMaxHistorySize caps the number of records, dropping the oldest ones
// at once. A negative n removes the cap.
func (u *Undoer) SetMaxHistorySize(n int) {
	u.mu.Lock()
	before := u.hist.Len()
	u.hist.SetMaxSize(n)
	trimmed := before - u.hist.Len()
	if trimmed > 0 {
		u.log.Debug("history trimmed", zap.Int("dropped", trimmed), zap.Int("max", n))
	}
	u.mu.Unlock()

	if trimmed > 0 {
		u.notify()
	}
}

// MaxHistorySize returns the cap, or history.Unbounded.
func (u *Undoer) MaxHistorySize() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hist.MaxSize()
}

// Disconnect stops recording. The history stays usable; an open
// composition session is dropped since its end can no longer be observed.
func (u *Undoer) Disconnect() {
	u.mu.Lock()
	unwatch := u.unwatch
	u.unwatch = nil
	dropped := u.rec.abort()
	u.mu.Unlock()

	if unwatch != nil {
		unwatch()
	}
	if dropped {
		u.notify()
	}
}

// OnStateChange replaces the state-change callback. Nil removes it.
func (u *Undoer) OnStateChange(fn func()) {
	u.mu.Lock()
	u.onChange = fn
	u.mu.Unlock()
}

// Records returns a copy of the history, oldest first.
func (u *Undoer) Records() []history.Record {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hist.Records()
}

// Position returns the number of applied records.
func (u *Undoer) Position() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hist.Position()
}

// Composing reports whether a composition session is open.
func (u *Undoer) Composing() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.rec.Composing()
}

func (u *Undoer) notify() {
	u.mu.Lock()
	fn := u.onChange
	u.mu.Unlock()
	if fn != nil {
		fn()
	}
}
