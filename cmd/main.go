package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ngramcorrector/internal/config"
	"ngramcorrector/internal/corpus"
	sc "ngramcorrector/internal/corrector"
	"ngramcorrector/internal/indexstore"
	"ngramcorrector/internal/mistake"
	"ngramcorrector/pkg/options"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "ngramcorrector",
		Short:         "Bigram/trigram spelling corrector",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.AddCommand(buildCmd(), correctCmd(), evaluateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ngramcorrector:", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, err
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func buildCmd() *cobra.Command {
	var corpusDir string
	var workers int
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build bigram and trigram indices from the Reuters corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if corpusDir != "" {
				cfg.Corpus.Dir = corpusDir
			}
			if workers > 0 {
				cfg.Corpus.Workers = workers
			}
			_, _, err = buildAndSave(cmd.Context(), cfg, logger)
			return err
		},
	}
	cmd.Flags().StringVar(&corpusDir, "corpus", "", "corpus directory (overrides config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel build workers (overrides config)")
	return cmd
}

func buildAndSave(ctx context.Context, cfg config.Config, logger *slog.Logger) (*sc.BigramIndex, *sc.TrigramTable, error) {
	provider := corpus.ReutersDir{Path: cfg.Corpus.Dir, Pattern: cfg.Corpus.Pattern}
	bigrams, trigrams, stats, err := sc.BuildFromProvider(ctx, provider, cfg.Corpus.Workers)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("indices built",
		slog.Int("documents", stats.Documents),
		slog.Int("skipped", stats.Skipped),
		slog.Int("bigrams", bigrams.Len()),
		slog.Int("trigrams", trigrams.Len()),
	)
	if stats.Documents == 0 {
		logger.Warn("corpus has no usable documents; corrections will never change a word",
			slog.String("dir", cfg.Corpus.Dir))
	}

	store, closeStore := indexstore.FromConfig(cfg)
	defer closeStore()
	if err := store.Save(ctx, bigrams, trigrams); err != nil {
		return nil, nil, err
	}
	return bigrams, trigrams, nil
}

// openIndices loads the stored indices, building them first when none exist
// and build is set.
func openIndices(ctx context.Context, cfg config.Config, logger *slog.Logger, build bool) (*sc.BigramIndex, *sc.TrigramTable, error) {
	store, closeStore := indexstore.FromConfig(cfg)
	defer closeStore()
	bigrams, trigrams, err := store.Load(ctx)
	if errors.Is(err, indexstore.ErrNoIndex) && build {
		logger.Info("no stored indices, building", slog.String("corpus", cfg.Corpus.Dir))
		return buildAndSave(ctx, cfg, logger)
	}
	return bigrams, trigrams, err
}

func correctCmd() *cobra.Command {
	var inputPath, outputPath string
	var noBuild bool
	cmd := &cobra.Command{
		Use:   "correct [sentence...]",
		Short: "Correct a sentence given as arguments, a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			sentence, err := readInput(args, inputPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			bigrams, trigrams, err := openIndices(cmd.Context(), cfg, logger, !noBuild)
			if err != nil {
				return err
			}

			opts := append(cfg.Corrector.Options(), options.WithLogger(logger))
			corrector := sc.NewSpellCorrector(bigrams, trigrams, opts...)
			res := corrector.CorrectText(sentence)
			for _, r := range res.Replacements {
				fmt.Fprintf(cmd.OutOrStdout(), "Found an error in %s. Replace with %s\n", r.Original, r.Replacement)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Result: "+res.Corrected)

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(res.Corrected), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", outputPath, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "file", "f", "", "read the sentence from a file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the corrected sentence to a file")
	cmd.Flags().BoolVar(&noBuild, "no-build", false, "fail instead of building missing indices")
	return cmd
}

func readInput(args []string, path string, stdin io.Reader) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
}

func evaluateCmd() *cobra.Command {
	var samples int
	var seed int64
	var p float64
	var keyboard bool
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Inject random mistakes into corpus trigrams and measure how many are corrected",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			bigrams, trigrams, err := openIndices(cmd.Context(), cfg, logger, true)
			if err != nil {
				return err
			}
			keys := trigrams.Keys()
			if samples > 0 && len(keys) > samples {
				keys = keys[:samples]
			}
			mode := mistake.ModeRandomLetter
			if keyboard {
				mode = mistake.ModeKeyboard
			}

			opts := append(cfg.Corrector.Options(), options.WithLogger(logger))
			corrector := sc.NewSpellCorrector(bigrams, trigrams, opts...)
			rep, err := mistake.Evaluate(cmd.Context(), corrector, keys, mistake.NewInjector(seed, p, mode), logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d Mutated: %d Errors: %d Accuracy: %.3f\n",
				rep.Total, rep.Mutated, rep.Errors, rep.Accuracy())
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 1000, "number of trigrams to test")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&p, "p", mistake.DefaultProbability, "probability of injecting a mistake")
	cmd.Flags().BoolVar(&keyboard, "keyboard", false, "use keyboard-neighbour substitutions")
	return cmd
}
