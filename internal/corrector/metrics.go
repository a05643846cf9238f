package corrector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sentencesCorrected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngramcorrector_sentences_total",
		Help: "Sentences passed through the corrector",
	})

	wordsReplaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngramcorrector_replacements_total",
		Help: "Words replaced by the trigram vote",
	})

	emptyCandidateSets = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngramcorrector_empty_candidate_sets_total",
		Help: "Words for which no candidate was found",
	})

	candidatesPerWord = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ngramcorrector_candidates_per_word",
		Help:    "Size of generated candidate lists",
		Buckets: []float64{0, 1, 2, 4, 6, 8, 10},
	})

	correctionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ngramcorrector_correction_duration_seconds",
		Help:    "Time to correct one sentence",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
	})

	indexedDocuments = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngramcorrector_indexed_documents_total",
		Help: "Documents consumed by index builds",
	})

	skippedDocuments = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngramcorrector_skipped_documents_total",
		Help: "Malformed documents skipped by index builds",
	})
)
