package mistake

import (
	"context"
	"log/slog"
	"strings"
)

// Corrector is the part of the spell corrector Evaluate needs.
type Corrector interface {
	Correct(sentence string) string
}

type Report struct {
	Total   int `json:"total"`
	Mutated int `json:"mutated"`
	Errors  int `json:"errors"`
}

// Accuracy is the share of samples corrected back to the original.
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Total-r.Errors) / float64(r.Total)
}

// Evaluate corrupts every sample (a space-separated trigram), corrects it and
// counts results that differ from the sample.
func Evaluate(ctx context.Context, c Corrector, samples []string, in *Injector, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var rep Report
	for _, sample := range samples {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		noisy, mutated := in.Inject(strings.Fields(sample))
		if mutated {
			rep.Mutated++
		}
		got := strings.ToLower(c.Correct(noisy))
		if got != sample {
			rep.Errors++
			logger.Debug("miscorrected sample",
				slog.String("sample", sample),
				slog.String("input", noisy),
				slog.String("output", got),
			)
		}
		rep.Total++
	}
	return rep, nil
}
