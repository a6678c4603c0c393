package deployer

import (
	"k8s.io/client-go/kubernetes"
	typedappsv1 "k8s.io/client-go/kubernetes/typed/apps/v1"

	"github.com/funcx-faas/fx-deploy/pkg/endpoint"
)

// appsclient shortens the typed client interface used throughout this
// package.
type appsclient = typedappsv1.DeploymentInterface

// EndpointIDAnnotation carries the stable endpoint identity. It is generated
// on first deploy and preserved across updates so re-deploys do not register
// as a new endpoint.
const EndpointIDAnnotation = "funcx.org/endpoint-id"

// Config holds the configuration for managing an endpoint deployment.
type Config struct {
	Namespace string
	Release   string
	Values    endpoint.Values
}

// Deployer applies rendered endpoint Deployments to a cluster.
type Deployer struct {
	clientset kubernetes.Interface
	config    Config
}

// New creates a Deployer with the given clientset and configuration.
func New(clientset kubernetes.Interface, config Config) *Deployer {
	return &Deployer{
		clientset: clientset,
		config:    config,
	}
}
