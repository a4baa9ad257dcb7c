package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayoutRoundTrip(t *testing.T) {
	t.Parallel()
	s := &Store{Dir: filepath.Join(t.TempDir(), "nested")}

	l, err := s.LoadLayout()
	require.NoError(t, err)
	require.Empty(t, l.HiddenTabs)

	require.NoError(t, s.SaveLayout(Layout{HiddenTabs: []string{"tui.favoritesNav"}}))
	l, err = s.LoadLayout()
	require.NoError(t, err)
	require.True(t, l.Hidden("tui.favoritesNav"))
	require.False(t, l.Hidden("tui.browseNav"))
}

func TestLayoutCorruptFile(t *testing.T) {
	t.Parallel()
	s := &Store{Dir: t.TempDir()}
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, layoutFile), []byte("{"), 0o600))

	_, err := s.LoadLayout()
	require.Error(t, err)
}
