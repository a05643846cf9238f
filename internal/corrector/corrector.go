package corrector

import (
	"log/slog"
	"strings"
	"time"

	"ngramcorrector/pkg/options"
)

// SpellCorrector corrects sentences against a fixed pair of indices. It never
// modifies them and is safe for concurrent use.
type SpellCorrector struct {
	config   options.CorrectorOptions
	bigrams  *BigramIndex
	trigrams *TrigramTable
	logger   *slog.Logger
}

// NewSpellCorrector wraps the indices; nil indices behave as empty ones.
func NewSpellCorrector(bigrams *BigramIndex, trigrams *TrigramTable, opts ...options.Options) *SpellCorrector {
	if bigrams == nil {
		bigrams = NewBigramIndex(nil)
	}
	if trigrams == nil {
		trigrams = NewTrigramTable(nil)
	}
	cfg := options.Resolve(opts...)
	return &SpellCorrector{
		config:   cfg,
		bigrams:  bigrams,
		trigrams: trigrams,
		logger:   cfg.Logger,
	}
}

func (sc *SpellCorrector) Bigrams() *BigramIndex   { return sc.bigrams }
func (sc *SpellCorrector) Trigrams() *TrigramTable { return sc.trigrams }

// Empty reports whether the corrector was built from no usable documents.
func (sc *SpellCorrector) Empty() bool {
	return sc.bigrams.Len() == 0 && sc.trigrams.Len() == 0
}

func (sc *SpellCorrector) policy() Policy {
	return Policy{
		UnseenTrigramCount: sc.config.UnseenTrigramCount,
		ReplaceFloor:       sc.config.ReplaceFloor,
	}
}

// Candidates returns the candidate list of every word in sentence. Words
// without candidates are absent from the map.
func (sc *SpellCorrector) Candidates(sentence string) map[string][]string {
	return sc.candidates(Tokenize(sentence))
}

func (sc *SpellCorrector) candidates(words []string) map[string][]string {
	out := make(map[string][]string)
	done := make(map[string]bool)
	for _, w := range words {
		if done[w] {
			continue
		}
		done[w] = true
		list := GenerateCandidates(w, sc.bigrams, sc.config.MaxCandidates)
		candidatesPerWord.Observe(float64(len(list)))
		if len(list) == 0 {
			emptyCandidateSets.Inc()
			continue
		}
		out[w] = list
	}
	return out
}

// CorrectText runs candidate generation and the trigram vote over text.
func (sc *SpellCorrector) CorrectText(text string) CorrectionResult {
	start := time.Now()
	defer func() { correctionDuration.Observe(time.Since(start).Seconds()) }()
	sentencesCorrected.Inc()

	tokens := SplitSentence(text)
	words := norms(tokens)
	cands := sc.candidates(words)
	corrected, replaced := Disambiguate(words, sc.trigrams, cands, sc.policy())

	out := make([]string, len(tokens))
	for i, t := range tokens {
		if corrected[i] == t.Norm {
			out[i] = t.Surface
		} else {
			out[i] = matchCase(t.Surface, corrected[i])
		}
	}

	sugByPos := make(map[int]SuggestionInfo)
	for i, t := range tokens {
		list, ok := cands[t.Norm]
		if !ok {
			continue
		}
		decision := DecisionKept
		switch {
		case i < 2:
			decision = DecisionSkipped
		case corrected[i] != t.Norm:
			decision = DecisionReplaced
		}
		sugByPos[i] = SuggestionInfo{Token: t.Surface, Suggestions: list, Decision: decision}
	}

	for _, r := range replaced {
		wordsReplaced.Inc()
		sc.logger.Debug("replaced word",
			slog.String("original", r.Original),
			slog.String("replacement", r.Replacement),
			slog.Int("position", r.Position),
			slog.Int("count", r.Count),
		)
	}

	return CorrectionResult{
		Original:     text,
		Corrected:    strings.Join(out, " "),
		Replacements: replaced,
		Suggestions:  sugByPos,
	}
}

// Correct returns only the corrected sentence.
func (sc *SpellCorrector) Correct(text string) string {
	return sc.CorrectText(text).Corrected
}

// Correct corrects sentence against the given indices with default options.
func Correct(sentence string, bigrams *BigramIndex, trigrams *TrigramTable) string {
	return NewSpellCorrector(bigrams, trigrams).Correct(sentence)
}
