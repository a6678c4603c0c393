package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/funcx-faas/fx-deploy/pkg/logging"
)

const (
	name           = "fxdctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Manage funcX compute endpoints on Kubernetes",
		Description: `fxdctl renders and manages funcX compute endpoint deployments.

An endpoint release is rendered into a Kubernetes Deployment that runs the
funcx-endpoint container, wired to the release's config and credential
volumes. The same rendering drives both offline manifest generation and
direct cluster deployment.

# Examples

Render a manifest to stdout:
  fxdctl render my-endpoint --image-tag 0.3.4

Deploy to a cluster and wait for rollout:
  fxdctl deploy my-endpoint --namespace funcx --values values.yaml

Inspect all managed endpoints:
  fxdctl status --all --namespace funcx`,
		Commands: []*cli.Command{
			renderCmd(),
			deployCmd(),
			deleteCmd(),
			statusCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main() and only returns after
// the selected command completes or the process is interrupted.
func Execute() {
	logging.SetDefaultStructuredLogger(name, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
