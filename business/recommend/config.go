package recommend

type Config struct {
	// additive bonuses on top of the desired-genre count
	AwardWeight    float64
	DirectorWeight float64
	RuntimeWeight  float64

	// exploit pool is never narrower than this
	MinCandidateWidth int
	// upper bound on the explore floor (MIN_EXPLORE = min(MaxExploreFloor, explore_extra))
	MaxExploreFloor int

	// request defaults, used when the caller leaves a field at zero
	DefaultTopK             int
	DefaultEpsilon          float64
	DefaultCandidateWidth   int
	DefaultExploreExtra     int
	DefaultRuntimeTolerance int
}

const (
	defaultAwardWeight             = 0.3
	defaultDirectorWeight          = 1.0
	defaultRuntimeWeight           = 0.2
	defaultMinCandidateWidth       = 20
	defaultMaxExploreFloor         = 50
	defaultTopK                    = 5
	defaultEpsilon                 = 0.2
	defaultCandidateWidth          = 100
	defaultExploreExtra            = 200
	defaultRuntimeToleranceMinutes = 15
)

func DefaultConfig() Config {
	return Config{
		AwardWeight:    defaultAwardWeight,
		DirectorWeight: defaultDirectorWeight,
		RuntimeWeight:  defaultRuntimeWeight,

		MinCandidateWidth: defaultMinCandidateWidth,
		MaxExploreFloor:   defaultMaxExploreFloor,

		DefaultTopK:             defaultTopK,
		DefaultEpsilon:          defaultEpsilon,
		DefaultCandidateWidth:   defaultCandidateWidth,
		DefaultExploreExtra:     defaultExploreExtra,
		DefaultRuntimeTolerance: defaultRuntimeToleranceMinutes,
	}
}
