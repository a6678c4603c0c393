// Package deployer manages the lifecycle of funcX endpoint Deployments in a
// Kubernetes cluster: create or update, rollout wait, status reporting, and
// deletion. Rendering itself lives in pkg/endpoint; this package only moves
// rendered objects to and from the cluster.
package deployer
