package defaults

import "time"

// Kubernetes timeouts for K8s API operations.
const (
	// K8sAPITimeout bounds individual Kubernetes API calls
	// (create, update, get, delete).
	K8sAPITimeout = 30 * time.Second

	// RolloutTimeout is the default wait for an endpoint Deployment to
	// report all replicas available after a deploy.
	RolloutTimeout = 5 * time.Minute

	// RolloutPollInterval is how often rollout progress is re-checked.
	RolloutPollInterval = 2 * time.Second

	// DeleteTimeout bounds Deployment deletion.
	DeleteTimeout = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIDeployTimeout is the overall budget for a deploy command,
	// covering render, apply, and rollout wait.
	CLIDeployTimeout = 10 * time.Minute
)

// HTTP server timeouts for the status server.
const (
	// ServerReadTimeout bounds reading the full request, including body.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout bounds writes of the response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the keep-alive idle limit.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is how long graceful shutdown waits for
	// in-flight requests before forcing connections closed.
	ServerShutdownTimeout = 30 * time.Second
)
