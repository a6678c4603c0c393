package oci

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	ocistore "oras.land/oras-go/v2/content/oci"
)

// ArtifactType is the media type for funcX endpoint manifest artifacts.
const ArtifactType = "application/vnd.funcx.endpoint.manifests"

// layoutDirName is the subdirectory of OutputDir holding the OCI Image Layout.
const layoutDirName = "oci-layout"

// PackageOptions configures local OCI packaging.
type PackageOptions struct {
	// SourceDir is the directory containing rendered manifests to package.
	SourceDir string
	// OutputDir is where the OCI Image Layout directory will be created.
	OutputDir string
	// Registry is the OCI registry host (e.g., "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the image repository path (e.g., "funcx/endpoint-manifests").
	Repository string
	// Tag is the image tag (e.g., "v1.0.0").
	Tag string
	// Annotations are manifest annotations to include.
	Annotations map[string]string
	// ReproducibleTimestamp sets a fixed created annotation for reproducible builds.
	ReproducibleTimestamp string
}

// PackageResult contains the result of a successful local packaging operation.
type PackageResult struct {
	// Digest is the SHA256 digest of the packaged artifact manifest.
	Digest string
	// Reference is the full image reference (registry/repository:tag).
	Reference string
	// StorePath is the path to the local OCI Image Layout directory.
	StorePath string
}

// Package creates an OCI artifact from a directory of rendered manifests and
// stores it locally in OCI Image Layout format.
func Package(ctx context.Context, opts PackageOptions) (*PackageResult, error) {
	if opts.Tag == "" {
		return nil, fmt.Errorf("tag is required for OCI packaging")
	}
	if err := ValidateRegistryReference(opts.Registry, opts.Repository); err != nil {
		return nil, err
	}

	absSourceDir, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for source dir: %w", err)
	}

	storePath := filepath.Join(opts.OutputDir, layoutDirName)
	if err := os.MkdirAll(storePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create OCI layout directory: %w", err)
	}

	refString := fmt.Sprintf("%s/%s:%s", stripProtocol(opts.Registry), opts.Repository, opts.Tag)

	fs, err := file.New(absSourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}
	defer func() { _ = fs.Close() }()

	// Make tars deterministic for reproducible builds
	fs.TarReproducible = true

	layerDesc, err := fs.Add(ctx, ".", ociv1.MediaTypeImageLayerGzip, absSourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to add source directory to store: %w", err)
	}

	packOpts := oras.PackManifestOptions{
		Layers: []ociv1.Descriptor{layerDesc},
	}
	if len(opts.Annotations) > 0 || opts.ReproducibleTimestamp != "" {
		annotations := make(map[string]string, len(opts.Annotations)+1)
		for k, v := range opts.Annotations {
			annotations[k] = v
		}
		if opts.ReproducibleTimestamp != "" {
			annotations[ociv1.AnnotationCreated] = opts.ReproducibleTimestamp
		}
		packOpts.ManifestAnnotations = annotations
	}

	manifestDesc, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, ArtifactType, packOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to pack manifest: %w", err)
	}

	if tagErr := fs.Tag(ctx, manifestDesc, opts.Tag); tagErr != nil {
		return nil, fmt.Errorf("failed to tag manifest in file store: %w", tagErr)
	}

	// Copy into the OCI Image Layout store so the artifact survives on disk
	layout, err := ocistore.New(storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create OCI layout store: %w", err)
	}

	desc, err := oras.Copy(ctx, fs, opts.Tag, layout, opts.Tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to copy artifact into OCI layout: %w", err)
	}

	return &PackageResult{
		Digest:    desc.Digest.String(),
		Reference: refString,
		StorePath: storePath,
	}, nil
}
