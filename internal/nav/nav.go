// Package nav tracks the browser's position inside the share.
package nav

import (
	"path/filepath"
	"strings"
)

// State holds the current directory relative to a fixed root. The current
// path is always the root or a descendant of it; only the navigation
// operations below mutate it.
type State struct {
	root    string
	current string
}

// New creates navigation state anchored at root.
func New(root string) *State {
	return &State{root: root, current: root}
}

// Root returns the root path.
func (s *State) Root() string {
	return s.root
}

// Current returns the current path.
func (s *State) Current() string {
	return s.current
}

// AtRoot reports whether the current path is the root.
func (s *State) AtRoot() bool {
	return s.current == s.root
}

// Enter moves into the named child and returns the new current path.
// No existence check is performed; a missing target surfaces as a
// listing failure on the subsequent refresh.
func (s *State) Enter(childName string) string {
	s.current = filepath.Join(s.current, childName)
	return s.current
}

// Up moves to the parent directory. It is a no-op at the root.
func (s *State) Up() string {
	if s.AtRoot() {
		return s.current
	}
	s.current = filepath.Dir(s.current)
	return s.current
}

// Home resets the current path to the root.
func (s *State) Home() string {
	s.current = s.root
	return s.current
}

// Rebase re-anchors the state after a reconnect resolved a new mount
// point, resetting the current path to the new root.
func (s *State) Rebase(root string) {
	s.root = root
	s.current = root
}

// DisplayPath renders the current path with the share root shown as
// "Server", the way the path label presents it.
func (s *State) DisplayPath() string {
	if s.current == s.root {
		return "Server"
	}
	if strings.HasPrefix(s.current, s.root+string(filepath.Separator)) {
		return "Server" + strings.TrimPrefix(s.current, s.root)
	}
	return "Server/" + filepath.Base(s.current)
}
