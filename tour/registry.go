// Package tour runs ordered, self-contained demonstration sections and
// renders their output as human-readable console text.
//
// Sections are registered in a Registry and executed by a Runner. Sections
// share no state: each one receives a Context (writer, logger, config) and
// must be runnable in isolation. A failing section is reported and does not
// stop the remaining sections.
package tour

import (
	"errors"
	"io"
	"strconv"

	"go.uber.org/zap"
)

var (
	// ErrEmptySectionID is returned when a section is registered without an ID.
	ErrEmptySectionID = errors.New("tour: empty section id")

	// ErrNilSectionRun is returned when a section is registered without a run
	// function.
	ErrNilSectionRun = errors.New("tour: nil section run function")
)

// SectionID identifies a registered section.
//
// IDs are typically defined as package-level constants to avoid typos.
type SectionID string

// DuplicateSectionError is returned when a section is registered under an ID
// that already exists in the Registry.
type DuplicateSectionError struct{ ID SectionID }

// Error implements the error interface.
func (e DuplicateSectionError) Error() string {
	// Example: tour: duplicate section id "taxonomy"
	return "tour: duplicate section id " + strconv.Quote(string(e.ID))
}

// UnknownSectionError is returned when a selection names a section that was
// never registered.
type UnknownSectionError struct{ ID SectionID }

// Error implements the error interface.
func (e UnknownSectionError) Error() string {
	// Example: tour: unknown section "taxonomy"
	return "tour: unknown section " + strconv.Quote(string(e.ID))
}

// Context is handed to every section run.
type Context struct {
	// Out receives the section's console output.
	Out io.Writer

	// Log is the structured logger for observable side effects
	// (e.g. creation notifications).
	Log *zap.Logger

	// Cfg is the effective tour configuration.
	Cfg Config
}

// Section is one self-contained demonstration.
type Section struct {
	ID    SectionID
	Title string
	Run   func(ctx *Context) error
}

// Registry holds sections in registration order.
type Registry struct {
	order    []SectionID
	sections map[SectionID]Section
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sections: make(map[SectionID]Section)}
}

// Register adds a section.
//
// It fails if the ID is empty (ErrEmptySectionID), the run function is nil
// (ErrNilSectionRun), or the ID is already taken (DuplicateSectionError).
func (r *Registry) Register(s Section) error {
	if s.ID == "" {
		return ErrEmptySectionID
	}
	if s.Run == nil {
		return ErrNilSectionRun
	}
	if _, exists := r.sections[s.ID]; exists {
		return DuplicateSectionError{ID: s.ID}
	}
	r.sections[s.ID] = s
	r.order = append(r.order, s.ID)
	return nil
}

// MustRegister registers a section or panics.
//
// Useful for static registries built at package init time, where a failure is
// a programming error.
func (r *Registry) MustRegister(s Section) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Has reports whether a section is registered under the ID.
func (r *Registry) Has(id SectionID) bool {
	if r == nil {
		return false
	}
	_, ok := r.sections[id]
	return ok
}

// Sections returns all sections in registration order.
func (r *Registry) Sections() []Section {
	out := make([]Section, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.sections[id])
	}
	return out
}

// Select resolves the given IDs into sections, in the order given.
//
// An unknown ID fails with UnknownSectionError. Selecting nothing returns all
// sections in registration order.
func (r *Registry) Select(ids ...SectionID) ([]Section, error) {
	if len(ids) == 0 {
		return r.Sections(), nil
	}
	out := make([]Section, 0, len(ids))
	for _, id := range ids {
		s, ok := r.sections[id]
		if !ok {
			return nil, UnknownSectionError{ID: id}
		}
		out = append(out, s)
	}
	return out, nil
}
