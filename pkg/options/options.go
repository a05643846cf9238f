package options

import "log/slog"

// DefaultOptions reproduce the classic behaviour: ten candidates per word, a
// neutral count of 1 for unseen trigrams and a replacement floor of 0, so any
// candidate beats the original word when it has a candidate list.
var DefaultOptions = CorrectorOptions{
	MaxCandidates:      10,
	UnseenTrigramCount: 1,
	ReplaceFloor:       0,
}

type CorrectorOptions struct {
	MaxCandidates      int
	UnseenTrigramCount int // count assumed for a trigram missing from the table
	ReplaceFloor       int // a candidate must score strictly above this to replace the word
	Logger             *slog.Logger
}

type Options interface {
	Apply(options *CorrectorOptions)
}

type FuncConfig struct {
	ops func(options *CorrectorOptions)
}

func (w FuncConfig) Apply(conf *CorrectorOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorrectorOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithMaxCandidates(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.MaxCandidates = n
	})
}

func WithUnseenTrigramCount(count int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.UnseenTrigramCount = count
	})
}

func WithReplaceFloor(floor int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.ReplaceFloor = floor
	})
}

func WithLogger(logger *slog.Logger) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Logger = logger
	})
}

// WithEvidenceRequired raises the floor to the unseen-trigram count, so a word
// is only replaced when the corpus actually saw the corrected trigram more
// often than an unseen one.
func WithEvidenceRequired() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.ReplaceFloor = options.UnseenTrigramCount
	})
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Options) CorrectorOptions {
	conf := DefaultOptions
	for _, o := range opts {
		if o != nil {
			o.Apply(&conf)
		}
	}
	if conf.MaxCandidates <= 0 {
		conf.MaxCandidates = DefaultOptions.MaxCandidates
	}
	if conf.Logger == nil {
		conf.Logger = slog.Default()
	}
	return conf
}
