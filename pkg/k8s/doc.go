// Package k8s and its subpackages provide the cluster-facing half of
// fx-deploy: client construction (client) and the endpoint Deployment
// lifecycle (deployer).
package k8s
