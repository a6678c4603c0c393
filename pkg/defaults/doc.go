// Package defaults provides centralized configuration constants for
// fx-deploy.
//
// It defines the timeout values used for Kubernetes API operations so that
// every caller shares the same tuning. Import and use constants directly:
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.K8sAPITimeout)
//	defer cancel()
package defaults
