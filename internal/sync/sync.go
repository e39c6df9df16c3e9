// Package sync mirrors progress documents to the remote store. Writes are
// debounced: a burst of local changes produces one remote write ~1s after
// the last of them, and a newer change supersedes a pending one. Remote
// failures never affect local state — they are logged, kept, and retried
// by a periodic flush job.
package sync

import (
	"log"
	"os"
	"strconv"
	gosync "sync"
	"time"

	"github.com/go-co-op/gocron"
)

// DefaultDebounce matches the client-side save debounce.
const DefaultDebounce = 1 * time.Second

// DefaultFlushInterval is how often failed writes are retried.
const DefaultFlushInterval = 30 * time.Second

// RemoteWriter is the remote progress store as the sync layer sees it.
type RemoteWriter interface {
	UpsertProgress(userID string, schemaVersion int, doc []byte) error
}

type pendingDoc struct {
	schemaVersion int
	doc           []byte
}

// Manager owns the debounce timers and the retry queue. Safe for
// concurrent use. A nil remote disables syncing entirely (local-only
// deployments).
type Manager struct {
	remote   RemoteWriter
	debounce time.Duration

	mu      gosync.Mutex
	timers  map[string]*time.Timer
	pending map[string]pendingDoc
	failed  map[string]pendingDoc

	scheduler *gocron.Scheduler
}

// New creates a sync manager. The debounce window can be overridden with
// SYNC_DEBOUNCE_MS for tests and slow links.
func New(remote RemoteWriter) *Manager {
	debounce := DefaultDebounce
	if ms := os.Getenv("SYNC_DEBOUNCE_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			debounce = time.Duration(v) * time.Millisecond
		}
	}
	return &Manager{
		remote:    remote,
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
		pending:   make(map[string]pendingDoc),
		failed:    make(map[string]pendingDoc),
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start begins the periodic retry flush.
func (m *Manager) Start() {
	if m.remote == nil {
		return
	}
	m.scheduler.Every(DefaultFlushInterval).Do(m.FlushFailed)
	m.scheduler.StartAsync()
}

// Stop cancels the retry job and pushes anything still pending.
func (m *Manager) Stop() {
	m.scheduler.Stop()
	m.FlushPending()
}

// Schedule queues a remote write for the user's latest document. Any write
// already pending for that user is superseded; its timer restarts.
func (m *Manager) Schedule(userID string, schemaVersion int, doc []byte) {
	if m.remote == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending[userID] = pendingDoc{schemaVersion: schemaVersion, doc: doc}
	if t, ok := m.timers[userID]; ok {
		t.Stop()
	}
	m.timers[userID] = time.AfterFunc(m.debounce, func() { m.fire(userID) })
}

// fire performs the debounced write for one user.
func (m *Manager) fire(userID string) {
	m.mu.Lock()
	p, ok := m.pending[userID]
	delete(m.pending, userID)
	delete(m.timers, userID)
	m.mu.Unlock()
	if !ok {
		return
	}
	m.write(userID, p)
}

// write pushes one document; failures go to the retry queue.
func (m *Manager) write(userID string, p pendingDoc) {
	if err := m.remote.UpsertProgress(userID, p.schemaVersion, p.doc); err != nil {
		log.Printf("Remote sync failed for user %s: %v", userID, err)
		m.mu.Lock()
		m.failed[userID] = p
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	delete(m.failed, userID)
	m.mu.Unlock()
}

// FlushFailed retries every failed write once.
func (m *Manager) FlushFailed() {
	m.mu.Lock()
	batch := m.failed
	m.failed = make(map[string]pendingDoc)
	m.mu.Unlock()

	for userID, p := range batch {
		m.write(userID, p)
	}
}

// FlushPending writes everything still waiting on a timer, immediately.
// Used at shutdown.
func (m *Manager) FlushPending() {
	m.mu.Lock()
	batch := m.pending
	m.pending = make(map[string]pendingDoc)
	for userID, t := range m.timers {
		t.Stop()
		delete(m.timers, userID)
	}
	m.mu.Unlock()

	for userID, p := range batch {
		m.write(userID, p)
	}
	m.FlushFailed()
}
