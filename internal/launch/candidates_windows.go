package launch

import "shareview/internal/config"

// DefaultCandidates uses the shell's start verb; Windows routes the file
// to the registered handler, so there is no fallback list.
func DefaultCandidates(_ *config.Config) []Candidate {
	return []Candidate{{Program: "cmd", Args: []string{"/c", "start", ""}}}
}
