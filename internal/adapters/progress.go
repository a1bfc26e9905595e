package adapters

import (
	"github.com/rs/zerolog/log"

	"spacyctl/internal/ports"
)

// ProgressOption configures a progress scope at construction time.
// Implementations that do not report progress ignore every option.
type ProgressOption func(*progressSettings)

type progressSettings struct {
	label string
	total int
}

// WithProgressLabel presets the scope label.
func WithProgressLabel(label string) ProgressOption {
	return func(s *progressSettings) {
		s.label = label
	}
}

// WithProgressTotal presets the expected number of work units.
func WithProgressTotal(total int) ProgressOption {
	return func(s *progressSettings) {
		s.total = total
	}
}

// NullProgressAdapter is the no-op progress scope. It accepts and
// ignores arbitrary construction options, every method does nothing,
// and every accessor returns its documented zero default. It is
// substitutable anywhere a real scope is optional.
type NullProgressAdapter struct{}

func NewNullProgressAdapter(_ ...ProgressOption) NullProgressAdapter {
	return NullProgressAdapter{}
}

func (NullProgressAdapter) Begin(string, int) {}
func (NullProgressAdapter) Advance(int)       {}
func (NullProgressAdapter) End()              {}
func (NullProgressAdapter) Label() string     { return "" }
func (NullProgressAdapter) Total() int        { return 0 }
func (NullProgressAdapter) Completed() int    { return 0 }

// LogProgressAdapter reports scope progress as structured debug events.
type LogProgressAdapter struct {
	label     string
	total     int
	completed int
	active    bool
}

func NewLogProgressAdapter(opts ...ProgressOption) *LogProgressAdapter {
	settings := progressSettings{}
	for _, opt := range opts {
		opt(&settings)
	}
	return &LogProgressAdapter{label: settings.label, total: settings.total}
}

func (a *LogProgressAdapter) Begin(label string, total int) {
	if label != "" {
		a.label = label
	}
	if total > 0 {
		a.total = total
	}
	a.completed = 0
	a.active = true
	log.Debug().Str("scope", a.label).Int("total", a.total).Msg("progress begin")
}

func (a *LogProgressAdapter) Advance(count int) {
	if !a.active || count <= 0 {
		return
	}
	a.completed += count
	log.Debug().Str("scope", a.label).Int("completed", a.completed).Int("total", a.total).Msg("progress")
}

func (a *LogProgressAdapter) End() {
	if !a.active {
		return
	}
	a.active = false
	log.Debug().Str("scope", a.label).Int("completed", a.completed).Msg("progress end")
}

func (a *LogProgressAdapter) Label() string {
	if !a.active {
		return ""
	}
	return a.label
}

func (a *LogProgressAdapter) Total() int {
	if !a.active {
		return 0
	}
	return a.total
}

func (a *LogProgressAdapter) Completed() int {
	if !a.active {
		return 0
	}
	return a.completed
}

var _ ports.ProgressScopePort = NullProgressAdapter{}
var _ ports.ProgressScopePort = (*LogProgressAdapter)(nil)
