package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/githubdata"
	"github.com/Zachkp/portfolio/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type app struct {
	configPath string
	cfg        *config.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to an optional YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "import-github",
			Short: "Import GitHub profile and repositories into the data directory",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.importGitHub(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "scan",
			Short: "Print the local workspace projects as JSON",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.scan(cmd)
			},
		},
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

func (a *app) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)

	s, err := newServer(a.cfg, a.log)
	if err != nil {
		return err
	}
	hasher, err := newIPHasher()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    a.cfg.Addr(),
		Handler: s.routes(hasher),
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("portfolio backend running",
			zap.String("addr", srv.Addr),
			zap.String("workspace", s.scanner.Root()),
			zap.String("data_dir", a.cfg.DataDir),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (a *app) importGitHub(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	client := githubdata.NewClient(ctx, a.cfg.GitHubToken)
	im := githubdata.NewImporter(client, a.cfg.DataDir, a.log)
	return im.Import(ctx, a.cfg.GitHubUsername)
}

func (a *app) scan(cmd *cobra.Command) error {
	scanner, err := newScanner(a.cfg, a.log)
	if err != nil {
		return err
	}
	res, err := scanner.Scan()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
