package buffer

// Edit describes one mutation: Removed runes at Start were replaced by
// Inserted runes.
type Edit struct {
	Start    int
	Removed  int
	Inserted int
}

// Watcher observes buffer mutations.
//
// BeforeChange runs while the buffer still holds the old text, AfterChange
// once the new text and composing span are in place, and Settled last.
// FinishComposingText reports only Settled since it changes no text.
type Watcher interface {
	BeforeChange(e Edit)
	AfterChange(e Edit)
	Settled()
}

type watchEntry struct {
	w Watcher
}

// Watch registers w and returns a function that removes it. The returned
// function is safe to call more than once.
func (b *Buffer) Watch(w Watcher) (unwatch func()) {
	e := &watchEntry{w: w}
	b.watchers = append(b.watchers, e)
	return func() {
		for i, cur := range b.watchers {
			if cur == e {
				b.watchers = append(b.watchers[:i:i], b.watchers[i+1:]...)
				return
			}
		}
	}
}

// Watching returns the number of registered watchers.
func (b *Buffer) Watching() int { return len(b.watchers) }

func (b *Buffer) eachWatcher(fn func(Watcher)) {
	// Watchers may unregister while being notified.
	for _, e := range append([]*watchEntry(nil), b.watchers...) {
		fn(e.w)
	}
}

func (b *Buffer) notifyBefore(e Edit) { b.eachWatcher(func(w Watcher) { w.BeforeChange(e) }) }

func (b *Buffer) notifyAfter(e Edit) { b.eachWatcher(func(w Watcher) { w.AfterChange(e) }) }

func (b *Buffer) notifySettled() { b.eachWatcher(func(w Watcher) { w.Settled() }) }
