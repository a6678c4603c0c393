package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/funcx-faas/fx-deploy/pkg/k8s/client"
	"github.com/funcx-faas/fx-deploy/pkg/k8s/deployer"
	"github.com/funcx-faas/fx-deploy/pkg/serializer"
)

// formatTable is the human-readable status format, handled here rather than
// by the serializer package.
const formatTable = "table"

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:                  "status",
		EnableShellCompletion: true,
		ArgsUsage:             "[RELEASE]",
		Usage:                 "Show status of deployed funcX endpoints",
		Description: `Shows the rollout status of a deployed endpoint release, or of all
endpoints managed by fxdctl in the namespace with --all.

# Examples

Single release:
  fxdctl status my-endpoint --namespace funcx

All managed endpoints as JSON:
  fxdctl status --all --namespace funcx --format json`,
		Flags: []cli.Flag{
			namespaceFlag,
			kubeconfigFlag,
			outputFlag,
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   formatTable,
				Usage:   "Output format: table, yaml, or json",
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"A"},
				Usage:   "Show all endpoints managed by fxdctl in the namespace",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			all := cmd.Bool("all")

			var release string
			var err error
			if !all {
				release, err = releaseArg(cmd)
				if err != nil {
					return fmt.Errorf("%w (or use --all)", err)
				}
			} else if cmd.Args().Len() > 0 {
				return fmt.Errorf("--all does not take a release name argument")
			}

			clientset, _, err := client.GetKubeClientWithConfig(cmd.String("kubeconfig"))
			if err != nil {
				return err
			}

			d := deployer.New(clientset, deployer.Config{
				Namespace: cmd.String("namespace"),
				Release:   release,
			})

			var statuses []*deployer.Status
			if all {
				statuses, err = d.StatusAll(ctx)
			} else {
				var status *deployer.Status
				status, err = d.Status(ctx)
				if status != nil {
					statuses = []*deployer.Status{status}
				}
			}
			if err != nil {
				return err
			}

			return writeStatuses(ctx, cmd, all, statuses)
		},
	}
}

func writeStatuses(ctx context.Context, cmd *cli.Command, all bool, statuses []*deployer.Status) error {
	format := cmd.String("format")
	if format == formatTable {
		out, closeOut, err := statusOutput(cmd.String("output"))
		if err != nil {
			return err
		}
		defer closeOut()
		return printStatusTable(out, statuses)
	}

	outFormat := serializer.Format(format)
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format %q (supported: table, yaml, json)", format)
	}

	s := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if c, ok := s.(serializer.Closer); ok {
			_ = c.Close()
		}
	}()

	if all {
		return s.Serialize(ctx, statuses)
	}
	return s.Serialize(ctx, statuses[0])
}

func statusOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// printStatusTable writes a kubectl-style table of endpoint statuses.
func printStatusTable(out io.Writer, statuses []*deployer.Status) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RELEASE\tNAMESPACE\tENDPOINT-ID\tIMAGE\tDESIRED\tREADY\tAVAILABLE")
	for _, s := range statuses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%t\n",
			s.Release, s.Namespace, s.EndpointID, s.Image, s.Desired, s.Ready, s.Available)
	}
	return w.Flush()
}
