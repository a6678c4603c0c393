package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/funcx-faas/fx-deploy/pkg/endpoint"
	"github.com/funcx-faas/fx-deploy/pkg/oci"
	"github.com/funcx-faas/fx-deploy/pkg/serializer"
)

// Output format constants.
const (
	outputFormatFile = "file"
	outputFormatOCI  = "oci"
	defaultOCITag    = "latest"
)

// manifestFileName is the manifest file name used inside OCI artifacts.
const manifestFileName = "deployment.yaml"

// renderCmdOptions holds parsed options for the render command.
type renderCmdOptions struct {
	release      string
	format       serializer.Format
	output       string
	outputFormat string
	registryHost string
	repository   string
	tag          string
	push         bool
	plainHTTP    bool
	insecureTLS  bool
	reference    *oci.Reference
	values       endpoint.Values
}

// parseRenderCmdOptions parses and validates command options.
func parseRenderCmdOptions(cmd *cli.Command) (*renderCmdOptions, error) {
	release, err := releaseArg(cmd)
	if err != nil {
		return nil, err
	}

	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}

	opts := &renderCmdOptions{
		release:      release,
		format:       format,
		output:       cmd.String("output"),
		outputFormat: cmd.String("output-format"),
		registryHost: cmd.String("registry"),
		repository:   cmd.String("repository"),
		tag:          cmd.String("tag"),
		push:         cmd.Bool("push"),
		plainHTTP:    cmd.Bool("plain-http"),
		insecureTLS:  cmd.Bool("insecure-tls"),
	}

	if opts.outputFormat != outputFormatFile && opts.outputFormat != outputFormatOCI {
		return nil, fmt.Errorf("--output-format must be '%s' or '%s', got '%s'",
			outputFormatFile, outputFormatOCI, opts.outputFormat)
	}
	if opts.push && opts.outputFormat != outputFormatOCI {
		return nil, fmt.Errorf("--push requires --output-format=oci")
	}

	if opts.outputFormat == outputFormatOCI {
		if opts.registryHost == "" {
			return nil, fmt.Errorf("--registry is required when --output-format is 'oci'")
		}
		if opts.repository == "" {
			return nil, fmt.Errorf("--repository is required when --output-format is 'oci'")
		}
		target := fmt.Sprintf("%s%s/%s", oci.URIScheme, opts.registryHost, opts.repository)
		if opts.tag != "" {
			target += ":" + opts.tag
		}
		ref, err := oci.ParseOutputTarget(target)
		if err != nil {
			return nil, fmt.Errorf("invalid OCI reference: %w", err)
		}
		if ref.Tag == "" {
			ref = ref.WithTag(defaultOCITag)
		}
		opts.reference = ref
	}

	opts.values, err = loadValues(cmd)
	if err != nil {
		return nil, err
	}

	return opts, nil
}

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		ArgsUsage:             "RELEASE",
		Usage:                 "Render the endpoint Deployment manifest for a release",
		Description: `Renders the Kubernetes Deployment manifest for a funcX endpoint release
without touching any cluster. The manifest is deterministic for a given
release name and values.

# Examples

Render with defaults to stdout:
  fxdctl render my-endpoint --image-tag 0.3.4

Render from a values file to a manifest file:
  fxdctl render my-endpoint --values values.yaml --output deployment.yaml

Package as an OCI artifact and push:
  fxdctl render my-endpoint --image-tag 0.3.4 \
    --output-format oci --output ./artifacts \
    --registry ghcr.io --repository funcx/endpoint-manifests --tag v1 --push`,
		Flags: append(valueFlags(),
			outputFlag,
			formatFlag,
			&cli.StringFlag{
				Name:    "output-format",
				Aliases: []string{"F"},
				Value:   outputFormatFile,
				Usage:   "Output format: 'file' (file or stdout) or 'oci' (OCI Image Layout)",
			},
			&cli.StringFlag{
				Name:  "registry",
				Usage: "OCI registry host for image reference (e.g., ghcr.io, localhost:5000)",
			},
			&cli.StringFlag{
				Name:  "repository",
				Usage: "OCI repository path for image reference (e.g., funcx/endpoint-manifests)",
			},
			&cli.StringFlag{
				Name:  "tag",
				Usage: fmt.Sprintf("OCI image tag (default: %s)", defaultOCITag),
			},
			&cli.BoolFlag{
				Name:  "push",
				Usage: "Push OCI artifact to remote registry (requires --output-format=oci)",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "Skip TLS certificate verification for OCI registry",
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for OCI registry (for local development)",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseRenderCmdOptions(cmd)
			if err != nil {
				return err
			}

			dep, err := endpoint.Build(opts.release, opts.values)
			if err != nil {
				return err
			}

			slog.Info("rendered endpoint deployment",
				"release", opts.release,
				"name", dep.Name,
				"image", opts.values.Image.Ref(),
				"output-format", opts.outputFormat,
			)

			if opts.outputFormat == outputFormatOCI {
				return renderToOCI(ctx, opts, dep)
			}

			s := serializer.NewFileWriterOrStdout(opts.format, opts.output)
			defer func() {
				if c, ok := s.(serializer.Closer); ok {
					_ = c.Close()
				}
			}()
			return s.Serialize(ctx, dep)
		},
	}
}

// renderToOCI writes the manifest into a scratch directory, packages it as
// an OCI Image Layout under the output directory, and optionally pushes it.
func renderToOCI(ctx context.Context, opts *renderCmdOptions, dep any) error {
	data, err := serializer.Marshal(opts.format, dep)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	sourceDir, err := os.MkdirTemp("", "fxdctl-render-*")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(sourceDir) }()

	if err := os.WriteFile(filepath.Join(sourceDir, manifestFileName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	outputDir := opts.output
	if outputDir == "" {
		outputDir = "."
	}

	if opts.push {
		result, err := oci.PackageAndPush(ctx, oci.OutputConfig{
			SourceDir:   sourceDir,
			OutputDir:   outputDir,
			Reference:   opts.reference,
			Version:     version,
			PlainHTTP:   opts.plainHTTP,
			InsecureTLS: opts.insecureTLS,
		})
		if err != nil {
			return err
		}
		slog.Info("manifest artifact pushed",
			"reference", result.Reference,
			"digest", result.Digest,
		)
		return nil
	}

	result, err := oci.Package(ctx, oci.PackageOptions{
		SourceDir:  sourceDir,
		OutputDir:  outputDir,
		Registry:   opts.reference.Registry,
		Repository: opts.reference.Repository,
		Tag:        opts.reference.Tag,
		Annotations: map[string]string{
			"org.opencontainers.image.version": version,
			"org.opencontainers.image.title":   "funcX Endpoint Manifests",
		},
	})
	if err != nil {
		return err
	}
	slog.Info("manifest artifact packaged",
		"image", opts.reference.ImageReference(),
		"reference", result.Reference,
		"digest", result.Digest,
		"store_path", result.StorePath,
	)
	return nil
}
