package launch

import "shareview/internal/config"

// DefaultCandidates uses the platform opener; macOS routes the file to
// the default handler, so there is no fallback list.
func DefaultCandidates(_ *config.Config) []Candidate {
	return []Candidate{{Program: "open"}}
}
