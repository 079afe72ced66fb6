package dispatcher

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// Metrics collects dispatch statistics.
// It is safe to read from another goroutine while the dispatcher runs.
type Metrics struct {
	mu sync.RWMutex

	commands map[Command]*CommandMetrics

	totalDispatches uint64
	totalErrors     uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// CommandMetrics holds metrics for one command.
type CommandMetrics struct {
	Command       Command
	Count         uint64
	NoOps         uint64
	Errors        uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastStatus    ResultStatus
}

// AverageDuration returns the mean execution time.
func (m CommandMetrics) AverageDuration() time.Duration {
	if m.Count == 0 {
		return 0
	}
	return m.TotalDuration / time.Duration(m.Count)
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{commands: make(map[Command]*CommandMetrics)}
}

// RecordDispatch records one executed command.
func (m *Metrics) RecordDispatch(cmd Command, duration time.Duration, status ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration

	cm := m.commands[cmd]
	if cm == nil {
		cm = &CommandMetrics{Command: cmd}
		m.commands[cmd] = cm
	}
	cm.Count++
	cm.TotalDuration += duration
	cm.MaxDuration = max(cm.MaxDuration, duration)
	cm.LastStatus = status

	switch status {
	case StatusNoOp:
		cm.NoOps++
	case StatusError:
		cm.Errors++
		m.totalErrors++
	}
}

// RecordPanic records a recovered handler panic.
func (m *Metrics) RecordPanic(_ Command) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalPanics++
}

// TotalDispatches returns the total number of dispatches.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDispatches
}

// TotalErrors returns the total number of failed dispatches.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalPanics returns the total number of panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// TotalDuration returns the time spent in handlers.
func (m *Metrics) TotalDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDuration
}

// Command returns the metrics for cmd.
func (m *Metrics) Command(cmd Command) (CommandMetrics, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cm, ok := m.commands[cmd]
	if !ok {
		return CommandMetrics{}, false
	}
	return *cm, true
}

// Snapshot returns per-command metrics, most executed first.
func (m *Metrics) Snapshot() []CommandMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]CommandMetrics, 0, len(m.commands))
	for _, cm := range m.commands {
		out = append(out, *cm)
	}
	slices.SortFunc(out, func(a, b CommandMetrics) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Command, b.Command)
	})
	return out
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands = make(map[Command]*CommandMetrics)
	m.totalDispatches = 0
	m.totalErrors = 0
	m.totalPanics = 0
	m.totalDuration = 0
}
