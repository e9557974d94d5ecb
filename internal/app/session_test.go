package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/sciconst/internal/catalog"
	"github.com/ensigniasec/sciconst/internal/history"
)

// fakeClipboard records writes and can be told to fail.
type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func TestSession_CopyRecordsHistory(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{}
	s := NewSession(catalog.NewStore(), clip)
	require.NotEmpty(t, s.ID)

	e, err := s.Copy("Physics", "Magnetic Constant")
	require.NoError(t, err)
	assert.Equal(t, "4π × 10^-7 N/A^2", clip.text)
	assert.Equal(t, "4π × 10^-7 N/A^2", e.Value)

	_, err = s.Copy("Physics", "Magnetic Constant")
	require.NoError(t, err)
	assert.Equal(t, []history.Entry{
		{Name: "Magnetic Constant", Value: "4π × 10^-7 N/A^2"},
		{Name: "Magnetic Constant", Value: "4π × 10^-7 N/A^2"},
	}, s.History.Drain())
}

func TestSession_CopyNotFound(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{}
	s := NewSession(catalog.NewStore(), clip)

	_, err := s.Copy("Chemistry", "Speed of Light")
	require.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Empty(t, clip.text)
	assert.Zero(t, s.History.Len())
}

func TestSession_CopyClipboardFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("no display")
	s := NewSession(catalog.NewStore(), &fakeClipboard{err: boom})

	_, err := s.Copy("Mathematics", "Pi (π)")
	require.Error(t, err)
	var cerr *ClipboardError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Pi (π)", cerr.Name)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, s.History.Len())
}

func TestSession_CopyCustom(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{}
	store := catalog.NewStore()
	require.NoError(t, store.AddCustom("Hubble Constant", "70 km/s/Mpc", ""))
	s := NewSession(store, clip)

	_, err := s.CopyCustom("Hubble Constant")
	require.NoError(t, err)
	assert.Equal(t, "70 km/s/Mpc", clip.text)
	assert.Equal(t, 1, s.History.Len())

	_, err = s.CopyCustom("Speed of Light")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDetails(t *testing.T) {
	t.Parallel()

	got := Details(catalog.Entry{Name: "Pi (π)", Value: "3.14159265359", Description: "The ratio of the circumference of a circle to its diameter."})
	assert.Equal(t, "Pi (π)\n\nValue: 3.14159265359\n\nDescription: The ratio of the circumference of a circle to its diameter.", got)
	assert.Contains(t, Details(catalog.Entry{Name: "X", Value: "1"}), "Description: (none)")
}
