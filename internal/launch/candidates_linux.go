package launch

import "shareview/internal/config"

// DefaultCandidates returns the configured ordered player list. The last
// entries fall through to the desktop's generic opener, so a launch only
// fails when the system has no handler at all.
func DefaultCandidates(cfg *config.Config) []Candidate {
	candidates := make([]Candidate, 0, len(cfg.Players.Linux))
	for _, player := range cfg.Players.Linux {
		candidates = append(candidates, Candidate{Program: player})
	}
	return candidates
}
