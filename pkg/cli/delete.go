package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/funcx-faas/fx-deploy/pkg/defaults"
	"github.com/funcx-faas/fx-deploy/pkg/k8s/client"
	"github.com/funcx-faas/fx-deploy/pkg/k8s/deployer"
)

func deleteCmd() *cli.Command {
	return &cli.Command{
		Name:                  "delete",
		EnableShellCompletion: true,
		ArgsUsage:             "RELEASE",
		Usage:                 "Delete a deployed funcX endpoint",
		Description: `Deletes the endpoint Deployment for a release. Succeeds without error if
the Deployment does not exist.`,
		Flags: []cli.Flag{
			namespaceFlag,
			kubeconfigFlag,
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.DeleteTimeout,
				Usage: "Timeout for the delete request",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			release, err := releaseArg(cmd)
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
			})

			deleteCtx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			if err := d.Delete(deleteCtx); err != nil {
				return err
			}

			slog.Info("endpoint deleted",
				"release", release,
				"namespace", cmd.String("namespace"),
			)
			return nil
		},
	}
}
