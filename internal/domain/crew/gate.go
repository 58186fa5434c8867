package crew

import "sync"

// SyncGate tracks user operations that a background refresh must not race:
// a running job clock, an open completion form and in-flight uploads.
type SyncGate struct {
	mu           sync.Mutex
	timerRunning bool
	formOpen     bool
	completing   int
	uploads      int
}

func NewSyncGate() *SyncGate { return &SyncGate{} }

func (g *SyncGate) SetTimerRunning(running bool) {
	g.mu.Lock()
	g.timerRunning = running
	g.mu.Unlock()
}

func (g *SyncGate) SetFormOpen(open bool) {
	g.mu.Lock()
	g.formOpen = open
	g.mu.Unlock()
}

// BeginCompletion marks a completion submission in flight until done is called.
func (g *SyncGate) BeginCompletion() (done func()) {
	return g.hold(&g.completing)
}

// BeginUpload marks an upload in flight until done is called.
func (g *SyncGate) BeginUpload() (done func()) {
	return g.hold(&g.uploads)
}

func (g *SyncGate) hold(counter *int) func() {
	g.mu.Lock()
	*counter++
	g.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			*counter--
			g.mu.Unlock()
		})
	}
}

// Busy reports whether a refresh should yield, and why.
func (g *SyncGate) Busy() (bool, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch {
	case g.timerRunning:
		return true, "timer running"
	case g.formOpen:
		return true, "completion form open"
	case g.completing > 0:
		return true, "completion in progress"
	case g.uploads > 0:
		return true, "upload pending"
	}
	return false, ""
}
