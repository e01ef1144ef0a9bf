package storage

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/blocknote/internal/model"
)

// SaveStatus is the state of the automatic saving.
type SaveStatus int

const (
	// SaveStatusIdle means there is nothing to report.
	SaveStatusIdle SaveStatus = iota
	// SaveStatusSaving means a save is pending or in progress.
	SaveStatusSaving
	// SaveStatusSaved means the latest document has just been saved.
	SaveStatusSaved
)

func (s SaveStatus) String() string {
	switch s {
	case SaveStatusIdle:
		return "idle"
	case SaveStatusSaving:
		return "saving"
	case SaveStatusSaved:
		return "saved"
	default:
		return "unknown"
	}
}

// DocumentSaver can save a document.
type DocumentSaver interface {
	Save(doc model.Document) error
}

// AutoSaver saves documents on a trailing-edge debounce: every new document
// it is notified of (re)starts a timer and only once the timer expires
// without a newer document, the latest document is saved.
//
// After a successful save the status is "saved" for a while before it
// returns to "idle"; a failed save is logged and the status returns to
// "idle" directly.
//
// Thread-safety: All methods are safe for concurrent use; saves never run
// concurrently with each other.
type AutoSaver struct {
	mu sync.Mutex

	saver         DocumentSaver
	delay         time.Duration
	savedDuration time.Duration

	timer       *time.Timer
	statusTimer *time.Timer
	seq         uint64 // to detect stale timer callbacks
	pending     model.Document
	hasPending  bool
	status      SaveStatus

	saveMu sync.Mutex

	onStatusChange func(SaveStatus)
}

// NewAutoSaver returns a pointer to a new AutoSaver, which saves with the
// given saver after the given delay and reports the "saved" status for the
// given duration.
// The status change callback (which may be nil) is called from whichever
// goroutine changes the status.
func NewAutoSaver(
	saver DocumentSaver,
	delay time.Duration,
	savedDuration time.Duration,
	onStatusChange func(SaveStatus),
) *AutoSaver {
	return &AutoSaver{
		saver:          saver,
		delay:          delay,
		savedDuration:  savedDuration,
		onStatusChange: onStatusChange,
	}
}

// Status returns the current save status.
func (a *AutoSaver) Status() SaveStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Notify schedules the given document to be saved once no newer one has been
// given for the delay.
// The document must not be modified afterwards.
func (a *AutoSaver) Notify(doc model.Document) {
	a.mu.Lock()

	a.pending = doc
	a.hasPending = true
	a.seq++
	currentSeq := a.seq

	if a.timer != nil {
		a.timer.Stop()
	}
	if a.statusTimer != nil {
		a.statusTimer.Stop()
		a.statusTimer = nil
	}
	a.timer = time.AfterFunc(a.delay, func() { a.saveIfCurrent(currentSeq) })

	changed := a.setStatusLocked(SaveStatusSaving)
	a.mu.Unlock()

	a.reportStatus(changed, SaveStatusSaving)
}

// Flush saves the pending document (if any) right away, canceling the
// scheduled save.
func (a *AutoSaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	currentSeq := a.seq
	a.mu.Unlock()

	a.saveIfCurrent(currentSeq)
}

// Stop cancels any scheduled save and status change.
func (a *AutoSaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if a.statusTimer != nil {
		a.statusTimer.Stop()
		a.statusTimer = nil
	}
	a.seq++
	a.hasPending = false
	a.pending = nil
}

func (a *AutoSaver) saveIfCurrent(seq uint64) {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()

	a.mu.Lock()
	if !a.hasPending || a.seq != seq {
		a.mu.Unlock()
		return
	}
	doc := a.pending
	a.pending = nil
	a.hasPending = false
	a.mu.Unlock()

	start := time.Now()
	err := a.saver.Save(doc)
	if err != nil {
		log.Error().Err(err).Msg("could not save document")
	} else {
		log.Debug().Int("blocks", len(doc)).Dur("took", time.Since(start)).Msg("saved document")
	}

	a.mu.Lock()
	if a.seq != seq {
		// a newer document is already scheduled, so we are still "saving"
		a.mu.Unlock()
		return
	}
	newStatus := SaveStatusIdle
	if err == nil {
		newStatus = SaveStatusSaved
		a.statusTimer = time.AfterFunc(a.savedDuration, func() { a.expireSaved(seq) })
	}
	changed := a.setStatusLocked(newStatus)
	a.mu.Unlock()

	a.reportStatus(changed, newStatus)
}

func (a *AutoSaver) expireSaved(seq uint64) {
	a.mu.Lock()
	if a.seq != seq || a.status != SaveStatusSaved {
		a.mu.Unlock()
		return
	}
	changed := a.setStatusLocked(SaveStatusIdle)
	a.statusTimer = nil
	a.mu.Unlock()

	a.reportStatus(changed, SaveStatusIdle)
}

// setStatusLocked sets the status (must hold lock) and returns whether it
// changed.
func (a *AutoSaver) setStatusLocked(s SaveStatus) bool {
	if a.status == s {
		return false
	}
	a.status = s
	return true
}

func (a *AutoSaver) reportStatus(changed bool, s SaveStatus) {
	if changed && a.onStatusChange != nil {
		a.onStatusChange(s)
	}
}
