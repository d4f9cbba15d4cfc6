package nav_test

import (
	"path/filepath"
	"testing"

	"shareview/internal/nav"

	"github.com/stretchr/testify/assert"
)

func TestUpAtRootIsNoOp(t *testing.T) {
	s := nav.New("/mnt/share")

	assert.Equal(t, "/mnt/share", s.Up())
	assert.Equal(t, "/mnt/share", s.Current())
	assert.True(t, s.AtRoot())
}

func TestEnterThenUpRoundTrip(t *testing.T) {
	s := nav.New("/mnt/share")

	before := s.Current()
	s.Enter("Movies")
	assert.Equal(t, filepath.Join("/mnt/share", "Movies"), s.Current())
	assert.False(t, s.AtRoot())

	s.Up()
	assert.Equal(t, before, s.Current())
}

func TestHomeFromNestedPath(t *testing.T) {
	s := nav.New("/mnt/share")
	s.Enter("Movies")
	s.Enter("Series")

	assert.Equal(t, "/mnt/share", s.Home())
	assert.True(t, s.AtRoot())
}

func TestRebase(t *testing.T) {
	s := nav.New("/run/user/1000/gvfs/old")
	s.Enter("Movies")

	s.Rebase("/run/user/1000/gvfs/new")
	assert.Equal(t, "/run/user/1000/gvfs/new", s.Root())
	assert.Equal(t, "/run/user/1000/gvfs/new", s.Current())
}

func TestDisplayPath(t *testing.T) {
	s := nav.New("/mnt/share")
	assert.Equal(t, "Server", s.DisplayPath())

	s.Enter("Movies")
	assert.Equal(t, filepath.Join("Server", "Movies"), s.DisplayPath())

	s.Enter("Series")
	assert.Equal(t, filepath.Join("Server", "Movies", "Series"), s.DisplayPath())
}
