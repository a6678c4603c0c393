package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/funcx-faas/fx-deploy/pkg/k8s/client"
	"github.com/funcx-faas/fx-deploy/pkg/k8s/deployer"
	"github.com/funcx-faas/fx-deploy/pkg/server"
	"k8s.io/client-go/kubernetes"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the endpoint status server",
		Description: `Runs an HTTP server exposing the status of managed funcX endpoints in
the namespace, along with health probes and Prometheus metrics.

Routes:
  GET /health                   liveness probe
  GET /ready                    readiness probe
  GET /version                  build information
  GET /metrics                  Prometheus exposition
  GET /v1/endpoints             status of all managed endpoints
  GET /v1/endpoints/{release}   status of a single release

# Examples

Serve on the default port:
  fxdctl serve --namespace funcx

Serve on a custom port:
  PORT=9090 fxdctl serve --namespace funcx`,
		Flags: []cli.Flag{
			namespaceFlag,
			kubeconfigFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			clientset, _, err := client.GetKubeClientWithConfig(cmd.String("kubeconfig"))
			if err != nil {
				return err
			}

			cfg := server.NewConfig()
			cfg.Version = version

			srv := server.NewServer(cfg, &clusterStatusProvider{
				clientset: clientset,
				namespace: cmd.String("namespace"),
			})
			return srv.Start(ctx)
		},
	}
}

// clusterStatusProvider adapts the deployer to the server.StatusProvider
// interface, scoping lookups to a single namespace.
type clusterStatusProvider struct {
	clientset kubernetes.Interface
	namespace string
}

func (p *clusterStatusProvider) Status(ctx context.Context, release string) (*deployer.Status, error) {
	d := deployer.New(p.clientset, deployer.Config{
		Namespace: p.namespace,
		Release:   release,
	})
	return d.Status(ctx)
}

func (p *clusterStatusProvider) StatusAll(ctx context.Context) ([]*deployer.Status, error) {
	d := deployer.New(p.clientset, deployer.Config{
		Namespace: p.namespace,
	})
	return d.StatusAll(ctx)
}
