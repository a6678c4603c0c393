// Package oci packages rendered endpoint manifests as OCI artifacts and
// pushes them to OCI-compliant registries using ORAS.
//
// Manifests are first written into a local OCI Image Layout directory
// (Package), which can then be copied to a remote registry (PushFromStore).
// Output targets use the oci:// URI scheme to distinguish registry
// references from plain directory paths; ParseOutputTarget handles the
// detection.
//
// Authentication uses the standard Docker credential store
// (~/.docker/config.json) via the ORAS credentials package.
//
// Artifacts carry the media type "application/vnd.funcx.endpoint.manifests"
// so consumers can distinguish them from runnable container images.
package oci
