package corrector

import "ngramcorrector/pkg/options"

type CorrectorConfig struct {
	MaxCandidates      int  `json:"max_candidates" yaml:"max_candidates"`
	UnseenTrigramCount int  `json:"unseen_trigram_count" yaml:"unseen_trigram_count"`
	ReplaceFloor       int  `json:"replace_floor" yaml:"replace_floor"`
	RequireEvidence    bool `json:"require_evidence" yaml:"require_evidence"`
}

// DefaultCorrectorConfig mirrors options.DefaultOptions.
func DefaultCorrectorConfig() CorrectorConfig {
	return CorrectorConfig{
		MaxCandidates:      options.DefaultOptions.MaxCandidates,
		UnseenTrigramCount: options.DefaultOptions.UnseenTrigramCount,
		ReplaceFloor:       options.DefaultOptions.ReplaceFloor,
	}
}

// Options converts the config into corrector options.
func (c CorrectorConfig) Options() []options.Options {
	opts := []options.Options{
		options.WithMaxCandidates(c.MaxCandidates),
		options.WithUnseenTrigramCount(c.UnseenTrigramCount),
		options.WithReplaceFloor(c.ReplaceFloor),
	}
	if c.RequireEvidence {
		opts = append(opts, options.WithEvidenceRequired())
	}
	return opts
}

type SuggestionInfo struct {
	Token       string   `json:"token"`
	Suggestions []string `json:"suggestions"`
	Decision    string   `json:"decision"`
}

type CorrectionResult struct {
	Original     string                 `json:"original"`
	Corrected    string                 `json:"corrected"`
	Replacements []Replacement          `json:"replacements,omitempty"`
	Suggestions  map[int]SuggestionInfo `json:"suggestions"`
}

const (
	DecisionKept     = "kept"
	DecisionReplaced = "replaced"
	DecisionSkipped  = "no_context"
)
