package domain

// Status distinguishes a successful page from "nothing matched".
type Status string

const (
	StatusOK      Status = "ok"
	StatusNoMatch Status = "no_match"
)

type PickStrategy string

const (
	PickExploit PickStrategy = "exploit"
	PickExplore PickStrategy = "explore"
)

// ScoredCandidate is a catalog movie with its affinity score. Novel is nil
// until the candidate has been through novelty classification.
type ScoredCandidate struct {
	Movie
	Score         float64 `json:"score"`
	Novel         *bool   `json:"novel,omitempty"`
	NoveltyReason string  `json:"novelty_reason,omitempty"`
}

// IsNovel is false for unclassified candidates.
func (c ScoredCandidate) IsNovel() bool {
	return c.Novel != nil && *c.Novel
}

// Classified reports whether novelty fields are attached.
func (c ScoredCandidate) Classified() bool {
	return c.Novel != nil
}

// WithNovelty returns a copy carrying the given novelty fields.
func (c ScoredCandidate) WithNovelty(novel bool, reason string) ScoredCandidate {
	c.Novel = &novel
	c.NoveltyReason = reason
	return c
}

type Pick struct {
	ScoredCandidate
	Strategy PickStrategy `json:"pick_strategy"`
}

type Diagnostics struct {
	ExploitPoolSize int     `json:"exploit_pool_size"`
	ExplorePoolSize int     `json:"explore_pool_size"`
	ExploreRatio    float64 `json:"explore_ratio"`
}

// Recommendation is the plain constraint-based ranking.
type Recommendation struct {
	Status  Status            `json:"status"`
	Results []ScoredCandidate `json:"results"`
}

// ExplorationResult is the ε-greedy selection with pool diagnostics.
type ExplorationResult struct {
	Status      Status      `json:"status"`
	Picks       []Pick      `json:"results"`
	Diagnostics Diagnostics `json:"diagnostics"`
}

// PoolDebug exposes both pools, novelty attached, for inspection.
type PoolDebug struct {
	Status  Status            `json:"status"`
	Exploit []ScoredCandidate `json:"exploit_pool"`
	Explore []ScoredCandidate `json:"explore_pool"`
}
