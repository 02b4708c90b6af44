package scrape

import "sync"

// Registry owns the single-run invariant across the process. It builds a
// fresh Orchestrator per run and keeps the last one around after it stops
// so progress remains queryable until the next run replaces it.
type Registry struct {
	factory func() *Orchestrator

	mu      sync.Mutex
	current *Orchestrator
}

// NewRegistry wires the orchestrator factory.
func NewRegistry(factory func() *Orchestrator) *Registry {
	return &Registry{factory: factory}
}

// Start launches a new run, or returns ErrAlreadyRunning while one is
// active.
func (r *Registry) Start(cfg RunConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil && r.current.Running() {
		return ErrAlreadyRunning
	}
	orch := r.factory()
	if err := orch.Start(cfg); err != nil {
		return err
	}
	r.current = orch
	return nil
}

// Stop cancels the active run. Calling it when idle is a no-op.
func (r *Registry) Stop() {
	r.mu.Lock()
	orch := r.current
	r.mu.Unlock()
	if orch != nil {
		orch.Stop()
	}
}

// IsActive reports whether a run is in flight.
func (r *Registry) IsActive() bool {
	r.mu.Lock()
	orch := r.current
	r.mu.Unlock()
	return orch != nil && orch.Running()
}

// Progress returns the latest run's progress and whether any run has
// occurred.
func (r *Registry) Progress() (Progress, bool) {
	r.mu.Lock()
	orch := r.current
	r.mu.Unlock()
	if orch == nil {
		return IdleProgress(), false
	}
	return orch.Snapshot(), true
}
