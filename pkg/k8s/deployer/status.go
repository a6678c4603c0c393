package deployer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	appsv1 "k8s.io/api/apps/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/funcx-faas/fx-deploy/pkg/endpoint"
	"github.com/funcx-faas/fx-deploy/pkg/errors"
)

// statusAllConcurrency caps parallel status fetches in StatusAll.
const statusAllConcurrency = 8

// Status describes the observed state of one endpoint deployment.
type Status struct {
	Release    string `json:"release" yaml:"release"`
	Namespace  string `json:"namespace" yaml:"namespace"`
	EndpointID string `json:"endpointID,omitempty" yaml:"endpointID,omitempty"`
	Image      string `json:"image" yaml:"image"`
	Desired    int32  `json:"desired" yaml:"desired"`
	Ready      int32  `json:"ready" yaml:"ready"`
	Available  bool   `json:"available" yaml:"available"`
}

// Status reports the state of the release this Deployer is configured for.
func (d *Deployer) Status(ctx context.Context) (*Status, error) {
	name := endpoint.Fullname(d.config.Release)
	dep, err := d.deployments().Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if k8serrors.IsNotFound(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound,
				fmt.Sprintf("endpoint %s is not deployed in namespace %s", d.config.Release, d.config.Namespace), err)
		}
		return nil, fmt.Errorf("failed to get Deployment %s: %w", name, err)
	}
	return statusFromDeployment(dep), nil
}

// StatusAll reports the state of every endpoint deployment in the namespace,
// identified by the managed-by label. Statuses are fetched concurrently and
// returned sorted by release name.
func (d *Deployer) StatusAll(ctx context.Context) ([]*Status, error) {
	selector := fmt.Sprintf("%s=%s", endpoint.ManagedByLabelKey, endpoint.ManagedByLabelValue)
	list, err := d.deployments().List(ctx, metav1.ListOptions{LabelSelector: selector})
	if err != nil {
		return nil, fmt.Errorf("failed to list endpoint deployments: %w", err)
	}

	var mu sync.Mutex
	statuses := make([]*Status, 0, len(list.Items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statusAllConcurrency)
	for i := range list.Items {
		name := list.Items[i].Name
		g.Go(func() error {
			dep, err := d.deployments().Get(ctx, name, metav1.GetOptions{})
			if err != nil {
				// Deleted between list and get; nothing to report.
				if k8serrors.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get Deployment %s: %w", name, err)
			}
			mu.Lock()
			statuses = append(statuses, statusFromDeployment(dep))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Release < statuses[j].Release
	})
	return statuses, nil
}

func statusFromDeployment(dep *appsv1.Deployment) *Status {
	desired := int32(1)
	if dep.Spec.Replicas != nil {
		desired = *dep.Spec.Replicas
	}

	var image string
	if containers := dep.Spec.Template.Spec.Containers; len(containers) > 0 {
		image = containers[0].Image
	}

	return &Status{
		Release:    releaseFromName(dep.Name),
		Namespace:  dep.Namespace,
		EndpointID: dep.Annotations[EndpointIDAnnotation],
		Image:      image,
		Desired:    desired,
		Ready:      dep.Status.ReadyReplicas,
		Available:  dep.Status.AvailableReplicas >= desired,
	}
}

// releaseFromName strips the derived name suffix to recover the release.
func releaseFromName(name string) string {
	return strings.TrimSuffix(name, "-endpoint")
}
