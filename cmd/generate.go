package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"reddit-persona/internal/ai"
	"reddit-persona/internal/model"
	"reddit-persona/internal/persona"
	"reddit-persona/internal/reddit"
	"reddit-persona/internal/redisclient"
	"reddit-persona/internal/report"
	"reddit-persona/internal/storage"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	genOutputDir string
	genRefresh   bool
)

// generateCmd fetches one user's activity and writes a persona report.
var generateCmd = &cobra.Command{
	Use:   "generate <profile-url-or-username>",
	Short: "Generate a persona report for a Reddit user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		username, err := reddit.ParseUsername(args[0])
		if err != nil {
			color.Red("Invalid profile URL or username.")
			return err
		}

		client := reddit.NewClient(cfg.Reddit.BaseURL, cfg.Reddit.UserAgent)
		client.CommentLimit = cfg.Reddit.CommentLimit
		client.PostLimit = cfg.Reddit.PostLimit
		client.Attempts = uint(cfg.Reddit.FetchRetries)

		// Optional redis-backed snapshot cache.
		var store *storage.RedisStore
		if cfg.Personas.CacheActivity {
			rdb := redisclient.New(cfg.Redis)
			defer rdb.Close()
			store = storage.NewRedisStore(rdb)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		var act model.Activity
		cached := false
		if store != nil && !genRefresh {
			var err error
			act, cached, err = store.Activity(ctx, username)
			if err != nil {
				slog.Warn("generate: activity cache read failed", "user", username, "err", err)
				cached = false
			}
		}
		if !cached {
			fmt.Fprintf(cmd.OutOrStdout(), "Fetching data for user: %s...\n", username)
			act, err = client.Activity(ctx, username)
			if err != nil {
				color.Red("Failed to fetch user data: %v", err)
				return err
			}
			if store != nil {
				ttl, err := time.ParseDuration(cfg.Personas.CacheTTL)
				if err != nil {
					return fmt.Errorf("invalid personas.cache_ttl: %w", err)
				}
				if err := store.CacheActivity(ctx, act, ttl); err != nil {
					slog.Warn("generate: activity cache write failed", "user", username, "err", err)
				}
			}
		} else {
			slog.Info("generate: using cached activity", "user", username)
		}

		now := time.Now()
		p := persona.FromActivity(act, now)
		data := report.Build(p, now)

		if cfg.OpenAI.APIKey != "" {
			narrator := ai.NewOpenAI(ai.Config{
				APIKey:  cfg.OpenAI.APIKey,
				Model:   cfg.OpenAI.Model,
				BaseURL: cfg.OpenAI.BaseURL,
			})
			nctx, ncancel := context.WithTimeout(context.Background(), 60*time.Second)
			if text, err := narrator.Narrate(nctx, ai.FactsFromPersona(p)); err == nil {
				data.Narrative = text
			}
			ncancel()
		}

		content, err := report.Render(data)
		if err != nil {
			return err
		}

		outDir := genOutputDir
		if outDir == "" {
			outDir = cfg.Personas.OutputDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		outPath := filepath.Join(outDir, report.Filename(username))
		if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
			return err
		}
		color.Green("Persona generated successfully! Saved to: %s", outPath)
		fmt.Fprintf(cmd.OutOrStdout(),
			"Note: analysis covers the user's most recent %d comments and %d posts.\n",
			client.CommentLimit, client.PostLimit)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&genOutputDir, "output-dir", "o", "", "directory for the report file (default: personas.output_dir)")
	generateCmd.Flags().BoolVar(&genRefresh, "refresh", false, "bypass the activity cache and fetch fresh data")
}
