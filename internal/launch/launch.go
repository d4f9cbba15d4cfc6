// Package launch spawns external programs for files the embedded viewers
// don't handle, primarily video playback.
package launch

import (
	"os/exec"

	"shareview/internal/errors"
	"shareview/internal/log"
)

// Candidate is one external program to try, with any arguments that go
// before the file path.
type Candidate struct {
	Program string
	Args    []string
}

// Launcher tries an ordered list of candidate programs.
type Launcher struct {
	candidates []Candidate
}

// New creates a Launcher over the given ordered candidates.
func New(candidates []Candidate) *Launcher {
	return &Launcher{candidates: candidates}
}

// Open starts the first candidate that spawns successfully, detached and
// with its output discarded, and returns the program used. It never waits
// for the process to exit and does not verify the program can actually
// handle the file. A LaunchFailed error is returned when no candidate
// could be started.
func (l *Launcher) Open(filePath string) (string, error) {
	for _, candidate := range l.candidates {
		args := append(append([]string{}, candidate.Args...), filePath)
		cmd := exec.Command(candidate.Program, args...)
		cmd.Stdout = nil
		cmd.Stderr = nil
		cmd.Stdin = nil

		if err := cmd.Start(); err != nil {
			log.Debugf("candidate %s not started: %v", candidate.Program, err)
			continue
		}

		// Detach: the player outlives any interest we have in it
		if cmd.Process != nil {
			_ = cmd.Process.Release()
		}

		log.LogWithFields(log.F("program", candidate.Program), log.F("file", filePath)).Info("Launched external program")
		return candidate.Program, nil
	}

	return "", errors.Newf(errors.LaunchFailed,
		"no suitable program found for %s; install mpv (e.g. sudo apt install mpv)", filePath)
}
