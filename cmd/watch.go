package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reddit-persona/internal/ai"
	"reddit-persona/internal/reddit"
	"reddit-persona/internal/redisclient"
	"reddit-persona/internal/storage"
	"reddit-persona/internal/watchlist"
	"reddit-persona/worker"

	"github.com/spf13/cobra"
)

var watchFile string

// watchCmd runs the watcher workers over a username watchlist.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Periodically regenerate reports for a watchlist of users",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		path := watchFile
		if path == "" {
			path = cfg.Personas.Watchlist
		}
		if path == "" {
			return fmt.Errorf("no watchlist: set personas.watchlist in config or pass --watchlist")
		}
		list, err := watchlist.Load(path)
		if err != nil {
			return err
		}
		if len(list.Users) == 0 {
			return fmt.Errorf("watchlist %s names no users", path)
		}

		interval, err := time.ParseDuration(cfg.Personas.WatchInterval)
		if err != nil {
			return fmt.Errorf("invalid personas.watch_interval: %w", err)
		}
		cacheTTL, err := time.ParseDuration(cfg.Personas.CacheTTL)
		if err != nil {
			return fmt.Errorf("invalid personas.cache_ttl: %w", err)
		}

		client := reddit.NewClient(cfg.Reddit.BaseURL, cfg.Reddit.UserAgent)
		client.CommentLimit = cfg.Reddit.CommentLimit
		client.PostLimit = cfg.Reddit.PostLimit
		client.Attempts = uint(cfg.Reddit.FetchRetries)

		rdb := redisclient.New(cfg.Redis)
		defer rdb.Close()
		store := storage.NewRedisStore(rdb)

		var narrator ai.Narrator
		if cfg.OpenAI.APIKey != "" {
			narrator = ai.NewOpenAI(ai.Config{
				APIKey:  cfg.OpenAI.APIKey,
				Model:   cfg.OpenAI.Model,
				BaseURL: cfg.OpenAI.BaseURL,
			})
		}

		w := &worker.Watcher{
			Client:    client,
			Store:     store,
			Users:     list.Users,
			Interval:  interval,
			OutputDir: cfg.Personas.OutputDir,
			CacheTTL:  cacheTTL,
			Narrator:  narrator,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %d users every %s\n", len(list.Users), interval)
		return worker.NewManager(w).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchFile, "watchlist", "w", "", "YAML watchlist path (default: personas.watchlist)")
}
