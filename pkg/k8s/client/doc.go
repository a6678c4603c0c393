// Package client provides a shared Kubernetes client for fx-deploy.
//
// Configuration is discovered from, in order: an explicit kubeconfig path,
// the KUBECONFIG environment variable, ~/.kube/config, and finally the
// in-cluster service account when running inside a pod. A process-wide
// singleton avoids rebuilding clients and exhausting API server connections.
package client
