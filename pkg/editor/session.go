// Package editor implements the summary editor core: a text buffer with a
// linear undo/redo history, formatting-insertion helpers, and derived
// statistics over the buffer. The history holds full buffer snapshots;
// index 0 is always the value the editing session started from.
package editor

import (
	"sync"
	"time"
)

// Mode identifies the editor view state.
type Mode string

const (
	// ModePreview renders the summary read-only.
	ModePreview Mode = "preview"
	// ModeEditing exposes the live buffer and history operations.
	ModeEditing Mode = "editing"
)

// DefaultCheckpointTrigger is the buffer length delta above which Type
// commits a checkpoint. Small edits accumulate until the drift from the
// last committed snapshot exceeds this.
const DefaultCheckpointTrigger = 10

// SaveFunc publishes the edited buffer to the external summary holder.
type SaveFunc func(summary string)

// Session owns one summary's edit state: the live buffer, its snapshot
// history, and the Preview/Editing mode. A Session is safe for concurrent
// use, though in practice a single editor view owns it.
type Session struct {
	mu sync.Mutex

	summary   string
	buffer    string
	history   []string
	index     int
	mode      Mode
	trigger   int
	lastSaved time.Time

	onSave SaveFunc
	now    func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithCheckpointTrigger overrides the length-delta checkpoint threshold.
func WithCheckpointTrigger(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.trigger = n
		}
	}
}

// WithSaveFunc sets the callback invoked when Save publishes the buffer.
func WithSaveFunc(fn SaveFunc) Option {
	return func(s *Session) { s.onSave = fn }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession creates a Session for the given summary. The history starts
// as a single snapshot of the summary and the mode starts in Preview.
func NewSession(summary string, opts ...Option) *Session {
	s := &Session{
		summary: summary,
		buffer:  summary,
		history: []string{summary},
		index:   0,
		mode:    ModePreview,
		trigger: DefaultCheckpointTrigger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Buffer returns the live, possibly uncommitted text.
func (s *Session) Buffer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer
}

// Summary returns the externally published summary value.
func (s *Session) Summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// Mode returns the current view mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// LastSaved returns the timestamp of the most recent Save, zero if never saved.
func (s *Session) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// HistoryLen returns the number of committed snapshots.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// HistoryIndex returns the current position in the history.
func (s *Session) HistoryIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// CanUndo reports whether Undo would move the history cursor.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index > 0
}

// CanRedo reports whether Redo would move the history cursor.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index < len(s.history)-1
}

// SetSummary replaces the external summary and reinitializes the session:
// the history collapses to a single snapshot of the new value. Called when
// the surrounding view receives a new summary.
func (s *Session) SetSummary(summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = summary
	s.buffer = summary
	s.history = []string{summary}
	s.index = 0
}

// ToggleEdit flips between Preview and Editing. Re-entering Editing keeps
// the last buffer value rather than resetting to the published summary.
func (s *Session) ToggleEdit() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModePreview {
		s.mode = ModeEditing
	} else {
		s.mode = ModePreview
	}
	return s.mode
}

// Type replaces the buffer with newText. When the length drift from the
// previous buffer value exceeds the checkpoint trigger, the new text is
// committed; rapid small edits stay uncommitted until they add up.
func (s *Session) Type(newText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta := len([]rune(newText)) - len([]rune(s.buffer))
	if delta < 0 {
		delta = -delta
	}
	s.buffer = newText
	if delta > s.trigger {
		s.commit(newText)
	}
}

// Commit records text as a new snapshot. Any redo tail beyond the current
// index is discarded: history is strictly linear, no branching.
func (s *Session) Commit(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(text)
}

// commit appends a snapshot and moves the index to it. Caller must hold s.mu.
func (s *Session) commit(text string) {
	s.history = append(s.history[:s.index+1], text)
	s.index = len(s.history) - 1
}

// Undo moves one snapshot back and restores the buffer from it.
// At index 0 it is a no-op and returns false.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == 0 {
		return false
	}
	s.index--
	s.buffer = s.history[s.index]
	return true
}

// Redo moves one snapshot forward and restores the buffer from it.
// At the last snapshot it is a no-op and returns false.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index >= len(s.history)-1 {
		return false
	}
	s.index++
	s.buffer = s.history[s.index]
	return true
}

// InsertFormatting splices before + selection + after over the selected
// range and commits the result unconditionally, bypassing the checkpoint
// trigger. Selection bounds are rune offsets and are clamped to the buffer.
// The returned offsets frame the original selection shifted past the
// inserted before marker, so the caller can restore the cursor.
func (s *Session) InsertFormatting(before, after string, selStart, selEnd int) (text string, cursorStart, cursorEnd int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runes := []rune(s.buffer)
	if selStart < 0 {
		selStart = 0
	}
	if selStart > len(runes) {
		selStart = len(runes)
	}
	if selEnd > len(runes) {
		selEnd = len(runes)
	}
	if selEnd < selStart {
		selEnd = selStart
	}

	selected := string(runes[selStart:selEnd])
	s.buffer = string(runes[:selStart]) + before + selected + after + string(runes[selEnd:])
	s.commit(s.buffer)

	shift := len([]rune(before))
	return s.buffer, selStart + shift, selEnd + shift
}

// Save publishes the buffer to the external summary holder, commits it,
// records the save timestamp, and returns to Preview.
func (s *Session) Save() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summary = s.buffer
	s.commit(s.buffer)
	s.lastSaved = s.now()
	s.mode = ModePreview

	if s.onSave != nil {
		s.onSave(s.summary)
	}
}

// Cancel discards the buffer, reverts to the published summary, and
// returns to Preview without committing.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = s.summary
	s.mode = ModePreview
}
