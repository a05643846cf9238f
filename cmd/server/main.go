package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ngramcorrector/internal/config"
	sc "ngramcorrector/internal/corrector"
	"ngramcorrector/internal/indexstore"
	"ngramcorrector/pkg/options"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config error", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	store, closeStore := indexstore.FromConfig(cfg)
	bigrams, trigrams, err := store.Load(context.Background())
	closeStore()
	if err != nil {
		logger.Error("init error", slog.Any("error", err))
		os.Exit(1)
	}

	opts := append(cfg.Corrector.Options(), options.WithLogger(logger))
	corrector := sc.NewSpellCorrector(bigrams, trigrams, opts...)
	logger.Info("indices loaded",
		slog.Int("bigrams", bigrams.Len()),
		slog.Int("trigrams", trigrams.Len()),
		slog.Bool("empty", corrector.Empty()),
	)

	addr := cfg.HTTPAddr
	logger.Info("listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, newMux(corrector)); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func newMux(corrector *sc.SpellCorrector) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/correct", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		text, ok := decodeText(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, corrector.CorrectText(text))
	})

	mux.HandleFunc("/api/v1/candidates", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		text, ok := decodeText(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"candidates": corrector.Candidates(text),
		})
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":   "ok",
			"bigrams":  corrector.Bigrams().Len(),
			"trigrams": corrector.Trigrams().Len(),
		})
	})

	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return "", false
	}
	return req.Text, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
