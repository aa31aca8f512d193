package undo

import (
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/iw2rmb/textundo/buffer"
	"github.com/iw2rmb/textundo/diff"
	"github.com/iw2rmb/textundo/history"
)

// session is an open composition. anchor is the whole text as it was
// before the composition started.
type session struct {
	anchor string
}

// Recorder turns change notifications into history records.
//
// Recorder is not safe for concurrent use; Undoer serializes it.
type Recorder struct {
	src  TextReader
	hist *history.History

	window time.Duration
	now    func() time.Time
	log    *zap.Logger

	before  string
	session *session

	lastEdit  time.Time
	batchable bool
}

// NewRecorder returns a recorder appending to hist. Only the batching,
// clock and logger options are used.
func NewRecorder(src TextReader, hist *history.History, opt Options) *Recorder {
	opt = opt.withDefaults()
	return &Recorder{
		src:    src,
		hist:   hist,
		window: opt.BatchWindow,
		now:    opt.Now,
		log:    opt.Logger,
	}
}

// BeforeChange captures the text about to be replaced.
func (r *Recorder) BeforeChange(e buffer.Edit) {
	r.before = r.src.Slice(e.Start, e.Start+e.Removed)
}

// AfterChange records the edit, or opens or continues a composition
// session. It reports whether the history or the composition state changed.
func (r *Recorder) AfterChange(e buffer.Edit) bool {
	before := r.before
	r.before = ""
	if r.session != nil {
		return false
	}

	after := r.src.Slice(e.Start, e.Start+e.Inserted)
	if r.src.ComposingAt(e.Start, e.Start+e.Inserted) && e.Inserted > e.Removed {
		text := []rune(r.src.Text())
		anchor := string(text[:e.Start]) + before + string(text[e.Start+e.Inserted:])
		r.session = &session{anchor: anchor}
		r.log.Debug("composition started", zap.Int("start", e.Start))
		return true
	}
	return r.AddEdit(e.Start, before, after)
}

// Settled closes the composition session once no composing span is left,
// adding at most one record for the whole session.
func (r *Recorder) Settled() bool {
	if r.session == nil {
		return false
	}
	if r.src.ComposingAt(0, r.src.Len()) {
		return false
	}

	c := diff.Compute(r.session.anchor, r.src.Text())
	r.session = nil
	if c.IsEmpty() {
		r.log.Debug("composition cancelled")
		return true
	}

	r.hist.Add(history.Record{
		Start:    c.Offset,
		Before:   c.Before,
		After:    c.After,
		Composed: true,
	})
	r.lastEdit = r.now()
	r.batchable = false
	r.log.Debug("composition committed",
		zap.Int("start", c.Offset),
		zap.String("before", c.Before),
		zap.String("after", c.After))
	return true
}

// AddEdit records that before at start became after, merging it into the
// latest record when it continues the same kind of edit quickly enough.
// It reports whether the history changed.
func (r *Recorder) AddEdit(start int, before, after string) bool {
	at := history.Classify(before, after)
	if at == history.ActionNone || before == after {
		return false
	}

	now := r.now()
	top := r.hist.Current()
	merged := r.canBatch(top, at, now) && merge(top, start, before, after)
	if merged {
		r.log.Debug("edit batched",
			zap.Stringer("action", at),
			zap.Int("start", top.Start),
			zap.String("before", top.Before),
			zap.String("after", top.After))
	} else {
		r.hist.Add(history.Record{Start: start, Before: before, After: after})
		r.log.Debug("edit recorded",
			zap.Stringer("action", at),
			zap.Int("start", start),
			zap.String("before", before),
			zap.String("after", after),
			zap.Int("records", r.hist.Len()))
	}
	r.lastEdit = now
	r.batchable = true
	return true
}

// Composing reports whether a composition session is open.
func (r *Recorder) Composing() bool { return r.session != nil }

// abort drops an open composition session without recording it.
func (r *Recorder) abort() bool {
	if r.session == nil {
		return false
	}
	r.log.Debug("composition dropped")
	r.session = nil
	r.batchable = false
	return true
}

// BreakBatch makes the next edit start a new record.
func (r *Recorder) BreakBatch() { r.batchable = false }

func (r *Recorder) canBatch(top *history.Record, at history.Action, now time.Time) bool {
	switch {
	case top == nil, !r.batchable, top.Composed, r.hist.CanRedo():
		return false
	case at == history.ActionPaste || top.Action() != at:
		return false
	case r.window < 0:
		return false
	}
	return now.Sub(r.lastEdit) < r.window
}

// merge folds the edit into top when the result still replays exactly.
func merge(top *history.Record, start int, before, after string) bool {
	switch history.Classify(before, after) {
	case history.ActionDelete:
		switch {
		case start+utf8.RuneCountInString(before) == top.Start:
			top.Start = start
			top.Before = before + top.Before
			return true
		case start == top.Start:
			top.Before += before
			return true
		}
	case history.ActionInsert:
		cur := []rune(top.After)
		rel := start - top.Start
		if rel < 0 || rel > len(cur) {
			return false
		}
		top.After = string(cur[:rel]) + after + string(cur[rel:])
		return true
	}
	return false
}
