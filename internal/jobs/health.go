package jobs

import (
	"sort"
	"sync"
	"time"
)

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	StatusUnknown     = "unknown"
)

// Check is the last observed state of one dependency.
type Check struct {
	Component string
	Status    string
	CheckedAt time.Time
	Error     string
}

// HealthStatus is safe for concurrent use by the scheduled checks and HTTP handlers.
type HealthStatus struct {
	mu     sync.RWMutex
	checks map[string]Check
}

func NewHealthStatus() *HealthStatus {
	return &HealthStatus{checks: make(map[string]Check)}
}

// Register adds component in the unknown state so it counts before its first check.
func (h *HealthStatus) Register(component string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.checks[component]; !ok {
		h.checks[component] = Check{Component: component, Status: StatusUnknown}
	}
}

func (h *HealthStatus) Record(component string, err error, at time.Time) {
	c := Check{Component: component, Status: StatusOK, CheckedAt: at}
	if err != nil {
		c.Status = StatusUnavailable
		c.Error = err.Error()
	}

	h.mu.Lock()
	h.checks[component] = c
	h.mu.Unlock()
}

// Snapshot returns the overall status and every check ordered by component.
// Overall is ok only when every registered component is ok; with nothing
// registered it is unknown.
func (h *HealthStatus) Snapshot() (string, []Check) {
	h.mu.RLock()
	checks := make([]Check, 0, len(h.checks))
	for _, c := range h.checks {
		checks = append(checks, c)
	}
	h.mu.RUnlock()

	sort.Slice(checks, func(i, j int) bool { return checks[i].Component < checks[j].Component })

	if len(checks) == 0 {
		return StatusUnknown, checks
	}
	overall := StatusOK
	for _, c := range checks {
		switch c.Status {
		case StatusUnavailable:
			return StatusUnavailable, checks
		case StatusUnknown:
			overall = StatusUnknown
		}
	}
	return overall, checks
}
