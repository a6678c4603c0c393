// Package cli implements the command-line interface for the fxdctl tool.
//
// # Overview
//
// fxdctl renders and manages funcX compute endpoint deployments on
// Kubernetes. A release name plus a set of values deterministically produces
// a Deployment manifest; the same rendering backs offline generation and
// direct cluster deployment.
//
// # Commands
//
// render - Render the endpoint Deployment manifest:
//
//	fxdctl render RELEASE [--values FILE] [--output FILE] [--format yaml|json]
//
// Renders the manifest without touching any cluster. With
// --output-format oci the manifest is packaged as an OCI Image Layout and
// can be pushed to a registry with --push.
//
// deploy - Apply the rendered Deployment to a cluster:
//
//	fxdctl deploy RELEASE [--values FILE] [--namespace NS] [--wait]
//
// Creates or updates the Deployment, preserving the endpoint identity
// annotation across updates, and by default waits for rollout completion.
//
// delete - Remove a deployed endpoint:
//
//	fxdctl delete RELEASE [--namespace NS]
//
// status - Inspect deployed endpoints:
//
//	fxdctl status RELEASE | fxdctl status --all
//
// Shows release, endpoint ID, image, and replica readiness as a table,
// YAML, or JSON.
//
// serve - Run the endpoint status server:
//
//	fxdctl serve [--namespace NS]
//
// Exposes managed endpoint statuses, health probes, and Prometheus
// metrics over HTTP.
//
// # Environment Variables
//
//	LOG_LEVEL        Set logging verbosity (debug, info, warn, error)
//	KUBECONFIG       Path to kubeconfig file
//	FUNCX_NAMESPACE  Default namespace for cluster commands
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/endpoint - Deployment rendering and values validation
//   - pkg/k8s/deployer - Cluster apply, delete, rollout wait, and status
//   - pkg/oci - OCI artifact packaging and push
//   - pkg/server - HTTP status server
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/funcx-faas/fx-deploy/pkg/cli.version=1.0.0'"
package cli
