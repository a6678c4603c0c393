package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/funcx-faas/fx-deploy/pkg/endpoint"
	"github.com/funcx-faas/fx-deploy/pkg/serializer"
)

// Flags shared across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   "Output format: yaml or json",
	}

	kubeconfigFlag = &cli.StringFlag{
		Name:    "kubeconfig",
		Usage:   "Path to kubeconfig file (default: $KUBECONFIG, then ~/.kube/config, then in-cluster)",
		Sources: cli.EnvVars("KUBECONFIG"),
	}

	namespaceFlag = &cli.StringFlag{
		Name:    "namespace",
		Aliases: []string{"n"},
		Value:   "default",
		Usage:   "Kubernetes namespace for the endpoint deployment",
		Sources: cli.EnvVars("FUNCX_NAMESPACE"),
	}

	valuesFlag = &cli.StringFlag{
		Name:    "values",
		Aliases: []string{"f"},
		Usage:   "Values file overriding endpoint defaults (YAML or JSON)",
	}
)

// valueFlags are the per-field overrides applied on top of the values file.
func valueFlags() []cli.Flag {
	return []cli.Flag{
		valuesFlag,
		&cli.StringFlag{
			Name:  "image-repository",
			Usage: "Endpoint container image repository",
		},
		&cli.StringFlag{
			Name:  "image-tag",
			Usage: "Endpoint container image tag",
		},
		&cli.StringFlag{
			Name:  "image-pull-policy",
			Usage: "Image pull policy: Always, IfNotPresent, or Never",
		},
		&cli.IntFlag{
			Name:  "replicas",
			Usage: "Number of endpoint replicas",
		},
		&cli.StringSliceFlag{
			Name:  "limit",
			Usage: "Resource limit (format: resource=quantity, e.g. --limit cpu=500m, can be repeated)",
		},
		&cli.StringSliceFlag{
			Name:  "request",
			Usage: "Resource request (format: resource=quantity, e.g. --request memory=256Mi, can be repeated)",
		},
	}
}

// releaseArg returns the required release name positional argument.
func releaseArg(cmd *cli.Command) (string, error) {
	release := cmd.Args().First()
	if release == "" {
		return "", fmt.Errorf("release name argument is required")
	}
	if cmd.Args().Len() > 1 {
		return "", fmt.Errorf("expected a single release name argument, got %d", cmd.Args().Len())
	}
	return release, nil
}

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q (supported: %s)",
			format, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return format, nil
}

// loadValues builds endpoint values from the --values file (if any) with
// per-field flag overrides applied on top, then fills remaining defaults.
func loadValues(cmd *cli.Command) (endpoint.Values, error) {
	vals := endpoint.DefaultValues()

	if path := cmd.String("values"); path != "" {
		loaded, err := serializer.FromFile[endpoint.Values](path)
		if err != nil {
			return endpoint.Values{}, fmt.Errorf("failed to load values file: %w", err)
		}
		vals = *loaded
	}

	if repo := cmd.String("image-repository"); repo != "" {
		vals.Image.Repository = repo
	}
	if tag := cmd.String("image-tag"); tag != "" {
		vals.Image.Tag = tag
	}
	if policy := cmd.String("image-pull-policy"); policy != "" {
		vals.Image.PullPolicy = policy
	}
	if replicas := cmd.Int("replicas"); replicas != 0 {
		vals.ReplicaCount = int32(replicas)
	}

	limits, err := parseQuantityFlags(cmd.StringSlice("limit"))
	if err != nil {
		return endpoint.Values{}, fmt.Errorf("invalid --limit: %w", err)
	}
	requests, err := parseQuantityFlags(cmd.StringSlice("request"))
	if err != nil {
		return endpoint.Values{}, fmt.Errorf("invalid --request: %w", err)
	}
	if len(limits) > 0 {
		vals.Resources.Limits = mergeQuantities(vals.Resources.Limits, limits)
	}
	if len(requests) > 0 {
		vals.Resources.Requests = mergeQuantities(vals.Resources.Requests, requests)
	}

	vals.ApplyDefaults()
	return vals, nil
}

// parseQuantityFlags parses repeated resource=quantity flag values.
func parseQuantityFlags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" || value == "" {
			return nil, fmt.Errorf("expected resource=quantity, got %q", pair)
		}
		out[key] = value
	}
	return out, nil
}

func mergeQuantities(base, overrides map[string]string) map[string]string {
	if base == nil {
		return overrides
	}
	for k, v := range overrides {
		base[k] = v
	}
	return base
}
