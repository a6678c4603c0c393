// Package endpoint renders the Kubernetes Deployment for a containerized
// funcX compute endpoint.
//
// The package is a pure transform: given a release name and a set of values
// (image, replica count, optional resource limits), it produces a typed
// appsv1.Deployment. It performs no cluster I/O; applying the rendered
// Deployment is the job of pkg/k8s/deployer.
//
// Rendering is deterministic: the same release and values always yield a
// deeply equal Deployment. Inputs are validated before anything is built, so
// a rejected input never produces a partial manifest.
//
// # Naming
//
// All derived resource names hang off the release name:
//
//	Fullname("myfx")              = "myfx-endpoint"
//	ConfigMapName("myfx")         = "myfx-endpoint-config"
//	InstanceConfigMapName("myfx") = "myfx-endpoint-instance-config"
//	ServiceAccountName("myfx")    = "myfx-endpoint"
//
// The credentials Secret name is fixed (funcx-sdk-tokens) and shared by all
// releases in a namespace.
package endpoint
