package deployer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	appsv1 "k8s.io/api/apps/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/funcx-faas/fx-deploy/pkg/endpoint"
)

// Deploy renders the endpoint Deployment and creates it in the cluster, or
// updates it in place when it already exists. The endpoint id annotation of
// an existing Deployment is preserved; a fresh one gets a new UUID.
// Returns the applied Deployment.
func (d *Deployer) Deploy(ctx context.Context) (*appsv1.Deployment, error) {
	start := time.Now()

	dep, err := endpoint.Build(d.config.Release, d.config.Values)
	if err != nil {
		deployTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	dep.Namespace = d.config.Namespace

	existing, err := d.deployments().Get(ctx, dep.Name, metav1.GetOptions{})
	switch {
	case err == nil:
		dep.Annotations = map[string]string{
			EndpointIDAnnotation: endpointID(existing),
		}
		dep.ResourceVersion = existing.ResourceVersion
		applied, uerr := d.deployments().Update(ctx, dep, metav1.UpdateOptions{})
		if uerr != nil {
			deployTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("failed to update Deployment %s: %w", dep.Name, uerr)
		}
		slog.Info("endpoint deployment updated",
			"release", d.config.Release,
			"namespace", d.config.Namespace,
			"endpoint_id", applied.Annotations[EndpointIDAnnotation])
		deployTotal.WithLabelValues("success").Inc()
		deployDuration.Observe(time.Since(start).Seconds())
		return applied, nil

	case errors.IsNotFound(err):
		dep.Annotations = map[string]string{
			EndpointIDAnnotation: uuid.NewString(),
		}
		applied, cerr := d.deployments().Create(ctx, dep, metav1.CreateOptions{})
		if cerr != nil {
			deployTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("failed to create Deployment %s: %w", dep.Name, cerr)
		}
		slog.Info("endpoint deployment created",
			"release", d.config.Release,
			"namespace", d.config.Namespace,
			"endpoint_id", applied.Annotations[EndpointIDAnnotation])
		deployTotal.WithLabelValues("success").Inc()
		deployDuration.Observe(time.Since(start).Seconds())
		return applied, nil

	default:
		deployTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to get Deployment %s: %w", dep.Name, err)
	}
}

// Delete removes the endpoint Deployment. A missing Deployment is not an
// error, making delete idempotent.
func (d *Deployer) Delete(ctx context.Context) error {
	name := endpoint.Fullname(d.config.Release)
	propagationPolicy := metav1.DeletePropagationForeground
	err := d.deployments().Delete(ctx, name, metav1.DeleteOptions{
		PropagationPolicy: &propagationPolicy,
	})
	if err := ignoreNotFound(err); err != nil {
		return fmt.Errorf("failed to delete Deployment %s: %w", name, err)
	}
	slog.Info("endpoint deployment deleted",
		"release", d.config.Release,
		"namespace", d.config.Namespace)
	return nil
}

func (d *Deployer) deployments() appsclient {
	return d.clientset.AppsV1().Deployments(d.config.Namespace)
}

// endpointID returns the existing endpoint id annotation, or a new UUID when
// the Deployment predates the annotation.
func endpointID(dep *appsv1.Deployment) string {
	if id, ok := dep.Annotations[EndpointIDAnnotation]; ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// ignoreNotFound returns nil if the error is "not found", otherwise returns
// the error. Used to make resource deletion idempotent.
func ignoreNotFound(err error) error {
	if errors.IsNotFound(err) {
		return nil
	}
	return err
}
