package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/funcx-faas/fx-deploy/pkg/defaults"
	"github.com/funcx-faas/fx-deploy/pkg/k8s/client"
	"github.com/funcx-faas/fx-deploy/pkg/k8s/deployer"
	"github.com/funcx-faas/fx-deploy/pkg/serializer"
)

func deployCmd() *cli.Command {
	return &cli.Command{
		Name:                  "deploy",
		EnableShellCompletion: true,
		ArgsUsage:             "RELEASE",
		Usage:                 "Deploy a funcX endpoint to a Kubernetes cluster",
		Description: `Renders the endpoint Deployment for a release and applies it to the
cluster. Creates the Deployment if it does not exist, otherwise updates it
in place while preserving the endpoint identity annotation.

By default the command waits for the rollout to complete before returning.

# Examples

Deploy with defaults:
  fxdctl deploy my-endpoint --namespace funcx --image-tag 0.3.4

Deploy from a values file without waiting:
  fxdctl deploy my-endpoint --values values.yaml --wait=false`,
		Flags: append(valueFlags(),
			namespaceFlag,
			kubeconfigFlag,
			outputFlag,
			formatFlag,
			&cli.BoolFlag{
				Name:  "wait",
				Value: true,
				Usage: "Wait for the Deployment rollout to complete",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.RolloutTimeout,
				Usage: "Timeout for waiting for rollout completion",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			release, err := releaseArg(cmd)
			if err != nil {
				return err
			}
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			vals, err := loadValues(cmd)
			if err != nil {
				return err
			}

			clientset, _, err := client.GetKubeClientWithConfig(cmd.String("kubeconfig"))
			if err != nil {
				return err
			}

			d := deployer.New(clientset, deployer.Config{
				Namespace: cmd.String("namespace"),
				Release:   release,
				Values:    vals,
			})

			start := time.Now()
			dep, err := d.Deploy(ctx)
			if err != nil {
				slog.Error("deploy failed", "release", release, "error", err)
				return err
			}

			slog.Info("endpoint deployment applied",
				"release", release,
				"name", dep.Name,
				"namespace", dep.Namespace,
				"image", vals.Image.Ref(),
			)

			if cmd.Bool("wait") {
				if err := d.WaitForReady(ctx, cmd.Duration("timeout")); err != nil {
					return err
				}
				slog.Info("endpoint rollout complete",
					"release", release,
					"elapsed", time.Since(start).Round(time.Millisecond).String(),
				)
			}

			status, err := d.Status(ctx)
			if err != nil {
				return err
			}

			s := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
			defer func() {
				if c, ok := s.(serializer.Closer); ok {
					_ = c.Close()
				}
			}()
			return s.Serialize(ctx, status)
		},
	}
}
