package hdbscan

import "log/slog"

// Config controls HDBSCAN clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// MinClusterSize is the smallest group of members considered a cluster
	// candidate. Must be > 0. Default: 5.
	MinClusterSize int

	// MinSamples is k for the core-distance computation (the 0-indexed
	// k-1'th neighbor is chosen). 0 means "default to MinClusterSize".
	// Must be >= 0. Default: MinClusterSize.
	MinSamples int

	// SkipRootCluster forces the root cluster's stability to 0 so it can
	// never be the sole selected cluster. Default: true.
	SkipRootCluster bool

	// DebugMode emits diagnostic traces to a logging sink. It has no effect
	// on clustering output. Default: false.
	DebugMode bool
}

// DefaultConfig returns a Config with the defaults from spec §6.
func DefaultConfig() Config {
	return Config{
		MinClusterSize:  5,
		SkipRootCluster: true,
	}
}

// applyDefaults fills in zero-valued fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MinSamples == 0 {
		cfg.MinSamples = cfg.MinClusterSize
	}
}

// validateConfig checks cfg after defaults have been applied.
func validateConfig(cfg Config) error {
	if cfg.MinClusterSize <= 0 {
		return wrapf(ErrInvalidConfig, "MinClusterSize must be > 0, got %d", cfg.MinClusterSize)
	}
	if cfg.MinSamples <= 0 {
		return wrapf(ErrInvalidConfig, "MinSamples must be > 0, got %d", cfg.MinSamples)
	}
	return nil
}

// HDBSCAN is the density-based hierarchical clustering engine. It owns all
// intermediates of a Fit call from start to finish; after Fit returns, only
// the final labels, probabilities and (optionally) the cluster hierarchy
// remain accessible. A zero HDBSCAN is not usable -- construct one with New.
type HDBSCAN struct {
	cfg    Config
	logger *slog.Logger

	labels        []int
	probabilities []float64
	stabilities   map[int]float64
	hierarchy     *Hierarchy
	condensed     []*Cluster
}

// New constructs an HDBSCAN engine. Returns ErrInvalidConfig if
// MinClusterSize or MinSamples is out of range; no fit is attempted in that
// case.
func New(cfg Config) (*HDBSCAN, error) {
	applyDefaults(&cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return &HDBSCAN{
		cfg:    cfg,
		logger: newLogger(cfg.DebugMode),
	}, nil
}

// Fit clusters data, a slice of n points of equal dimensionality d >= 1.
// Calling Fit again replaces prior results. If Fit returns a wrapped
// ErrInvariantViolation, Labels and Probabilities retain their values from
// before the call.
func (h *HDBSCAN) Fit(data [][]float64) error {
	n := len(data)
	if n == 0 {
		h.labels = nil
		h.probabilities = nil
		h.stabilities = map[int]float64{}
		h.hierarchy = nil
		h.condensed = nil
		return nil
	}

	dims := len(data[0])
	if dims == 0 {
		return wrapf(ErrInvalidInput, "points must have at least one dimension")
	}
	for i, p := range data {
		if len(p) != dims {
			return wrapf(ErrInvalidInput, "point %d has %d dimensions, want %d", i, len(p), dims)
		}
	}

	if n == 1 {
		h.labels = []int{-1}
		h.probabilities = []float64{0}
		h.stabilities = map[int]float64{}
		h.hierarchy = nil
		h.condensed = nil
		return nil
	}

	mrMatrix := mutualReachability(data, h.cfg.MinSamples)
	mstEdges := buildMST(mrMatrix, n)

	hierarchy, err := BuildHierarchy(mstEdges, n, h.cfg.MinClusterSize, h.logger)
	if err != nil {
		return err
	}

	condensed := Condense(hierarchy, h.cfg.MinClusterSize)
	labels, probabilities, stabilities := Extract(hierarchy, condensed, h.cfg.MinClusterSize, h.cfg.SkipRootCluster, n, h.logger)

	h.hierarchy = hierarchy
	h.condensed = condensed
	h.labels = labels
	h.probabilities = probabilities
	h.stabilities = stabilities
	return nil
}

// Labels returns the cluster label of each point from the most recent Fit
// call: -1 for noise, otherwise a dense integer in [0, K).
func (h *HDBSCAN) Labels() []int { return h.labels }

// Probabilities returns each point's membership strength in [0, 1] from the
// most recent Fit call. Noise points have probability 0.
func (h *HDBSCAN) Probabilities() []float64 { return h.probabilities }

// Stabilities returns the stability of each selected cluster, keyed by the
// label assigned in Labels.
func (h *HDBSCAN) Stabilities() map[int]float64 { return h.stabilities }

// Hierarchy returns the full cluster tree built by the most recent Fit
// call, for visualization or custom post-processing. Returns nil if Fit has
// not been called or fit on fewer than 2 points.
func (h *HDBSCAN) Hierarchy() *Hierarchy { return h.hierarchy }

// Condensed returns the subset of Hierarchy's clusters that met
// MinClusterSize in the most recent Fit call.
func (h *HDBSCAN) Condensed() []*Cluster { return h.condensed }
