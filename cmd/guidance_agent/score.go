package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/careercompass/guidance-engine/internal/assemble"
	"github.com/careercompass/guidance-engine/internal/cache"
	"github.com/careercompass/guidance-engine/internal/config"
	"github.com/careercompass/guidance-engine/internal/logger"
	"github.com/careercompass/guidance-engine/internal/matching"
	"github.com/careercompass/guidance-engine/internal/normalize"
	"github.com/careercompass/guidance-engine/internal/observability"
	"github.com/careercompass/guidance-engine/internal/outlook"
	"github.com/careercompass/guidance-engine/internal/taxonomy"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score questionnaire responses against a career catalog",
	Long:  "Normalizes raw questionnaire responses, scores every career in the catalog, and writes a complete result payload with top matches, pathway plans, and cluster summaries.",
	RunE:  runScore,
}

var (
	scoreResponses string
	scoreCatalog   string
	scoreOutput    string
	scoreConfig    string
	scoreTop       int
	scoreVerbose   bool
	scoreJSONLogs  bool
	scoreDebug     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResponses, "responses", "r", "", "Path to questionnaire responses JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreCatalog, "catalog", "c", "", "Path to career catalog JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output result payload JSON file (stdout if omitted)")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to JSON config file with engine tunables")
	scoreCmd.Flags().IntVar(&scoreTop, "top", 0, "Number of matches that get full pathway detail")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print profile, match, and pathway details")
	scoreCmd.Flags().BoolVar(&scoreJSONLogs, "json-logs", false, "Emit structured JSON logs")
	scoreCmd.Flags().BoolVar(&scoreDebug, "debug", false, "Enable debug logging")

	if err := scoreCmd.MarkFlagRequired("responses"); err != nil {
		panic(fmt.Sprintf("failed to mark responses flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Responses:  scoreResponses,
		Catalog:    scoreCatalog,
		Output:     scoreOutput,
		TopMatches: scoreTop,
		Verbose:    scoreVerbose,
		JSONLogs:   scoreJSONLogs,
		Debug:      scoreDebug,
	}

	// 1. Merge config file values under the flags
	if scoreConfig != "" {
		fileCfg, err := config.LoadConfig(scoreConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// 2. Load the career catalog
	catalog, err := taxonomy.Load(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load career catalog: %w", err)
	}
	log.Info("catalog loaded", zap.String("path", cfg.Catalog), zap.Int("careers", len(catalog.Careers)))

	// 3. Load and normalize questionnaire responses
	raw, err := loadResponses(cfg.Responses)
	if err != nil {
		return err
	}

	profile, warnings := normalize.Normalize(raw)
	log.Info("profile normalized", zap.Int("warnings", len(warnings)))
	for _, w := range warnings {
		log.Debug("field warning",
			zap.String("field", w.Field),
			zap.String("message", logger.TruncateForLog(w.Message, 120)),
			zap.Bool("defaulted", w.Defaulted),
		)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintProfile(profile, warnings)
	}

	// 4. Score every career
	engine := matching.NewEngine(matching.Config{
		Weights: matching.Weights{
			Interest:    cfg.InterestWeight,
			Academic:    cfg.AcademicWeight,
			Education:   cfg.EducationWeight,
			Environment: cfg.EnvironmentWeight,
			Constraint:  cfg.ConstraintWeight,
		},
		EarnSoonYearsThreshold: cfg.EarnSoonYearsThreshold,
	})
	matches := engine.ScoreAll(profile, catalog)
	log.Info("careers scored", zap.Int("matches", len(matches)))

	if cfg.Verbose {
		printer.PrintMatches(matches)
	}

	// 5. Assemble the result payload, with salary bands from the outlook cache
	opts := assemble.Options{TopN: cfg.TopMatches, Outlook: buildOutlook(ctx, log, cfg)}
	payload, err := assemble.Assemble(ctx, matches, profile, warnings, opts)
	if err != nil {
		return fmt.Errorf("failed to assemble result payload: %w", err)
	}

	if cfg.Verbose {
		for i := range payload.TopJobMatches {
			match := &payload.TopJobMatches[i]
			printer.PrintPathway(match.Career.Title, &match.Pathway)
		}
	}

	// 6. Write output
	jsonOutput, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result payload to JSON: %w", err)
	}

	if cfg.Output == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(cfg.Output)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(cfg.Output, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write result payload to %s: %w", cfg.Output, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully scored %d careers to %s\n", len(matches), cfg.Output)

	return nil
}

// loadResponses reads a questionnaire responses file into a raw key-value map.
func loadResponses(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses file %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal responses JSON: %w", err)
	}
	return raw, nil
}

// buildOutlook wires the salary-band lookup. Redis when configured and
// reachable, in-process memory cache otherwise.
func buildOutlook(ctx context.Context, log *zap.Logger, cfg config.Config) *outlook.Lookup {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second

	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Warn("invalid redis URL, falling back to memory cache", zap.Error(err))
		} else {
			store := cache.NewRedis(redis.NewClient(redisOpts), "guidance")
			if err := store.Ping(ctx); err != nil {
				log.Warn("redis unreachable, falling back to memory cache", zap.Error(err))
			} else {
				return outlook.NewLookup(store, ttl)
			}
		}
	}

	return outlook.NewLookup(cache.NewMemory(), ttl)
}
