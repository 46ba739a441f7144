package tour_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/tour/tour"
)

func noop(*tour.Context) error { return nil }

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	reg := tour.NewRegistry()
	require.NoError(t, reg.Register(tour.Section{ID: "a", Run: noop}))
	require.NoError(t, reg.Register(tour.Section{ID: "b", Run: noop}))

	assert.True(t, reg.Has("a"))
	assert.False(t, reg.Has("c"))

	sections := reg.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, tour.SectionID("a"), sections[0].ID)
	assert.Equal(t, tour.SectionID("b"), sections[1].ID)
}

func TestRegistry_RegisterErrors(t *testing.T) {
	t.Parallel()

	reg := tour.NewRegistry()

	err := reg.Register(tour.Section{Run: noop})
	require.ErrorIs(t, err, tour.ErrEmptySectionID)

	err = reg.Register(tour.Section{ID: "a"})
	require.ErrorIs(t, err, tour.ErrNilSectionRun)

	require.NoError(t, reg.Register(tour.Section{ID: "a", Run: noop}))
	err = reg.Register(tour.Section{ID: "a", Run: noop})

	var dup tour.DuplicateSectionError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, tour.SectionID("a"), dup.ID)
}

func TestRegistry_Select(t *testing.T) {
	t.Parallel()

	reg := tour.NewRegistry()
	require.NoError(t, reg.Register(tour.Section{ID: "a", Run: noop}))
	require.NoError(t, reg.Register(tour.Section{ID: "b", Run: noop}))

	// Explicit selection preserves the requested order.
	selected, err := reg.Select("b", "a")
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, tour.SectionID("b"), selected[0].ID)

	// Empty selection means everything.
	all, err := reg.Select()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = reg.Select("nope")
	var unknown tour.UnknownSectionError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, tour.SectionID("nope"), unknown.ID)
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	t.Parallel()

	reg := tour.NewRegistry()
	reg.MustRegister(tour.Section{ID: "a", Run: noop})
	assert.Panics(t, func() {
		reg.MustRegister(tour.Section{ID: "a", Run: noop})
	})
}

func TestDefaultRegistry_CanonicalOrder(t *testing.T) {
	t.Parallel()

	reg := tour.DefaultRegistry()
	sections := reg.Sections()
	require.Len(t, sections, 6)

	got := make([]tour.SectionID, 0, len(sections))
	for _, s := range sections {
		got = append(got, s.ID)
	}
	assert.Equal(t, []tour.SectionID{
		tour.SectionTaxonomy,
		tour.SectionWrapping,
		tour.SectionRecursion,
		tour.SectionErrors,
		tour.SectionCollections,
		tour.SectionFileIO,
	}, got)
}
