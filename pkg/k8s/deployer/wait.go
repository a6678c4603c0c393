package deployer

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/funcx-faas/fx-deploy/pkg/defaults"
	"github.com/funcx-faas/fx-deploy/pkg/endpoint"
	"github.com/funcx-faas/fx-deploy/pkg/errors"
)

// WaitForReady blocks until the endpoint Deployment reports all desired
// replicas available, or the timeout elapses.
func (d *Deployer) WaitForReady(ctx context.Context, timeout time.Duration) error {
	name := endpoint.Fullname(d.config.Release)

	err := wait.PollUntilContextTimeout(ctx, defaults.RolloutPollInterval, timeout, true,
		func(ctx context.Context) (bool, error) {
			dep, err := d.deployments().Get(ctx, name, metav1.GetOptions{})
			if err != nil {
				return false, err
			}

			desired := int32(1)
			if dep.Spec.Replicas != nil {
				desired = *dep.Spec.Replicas
			}
			return dep.Status.AvailableReplicas >= desired &&
				dep.Status.ObservedGeneration >= dep.Generation, nil
		},
	)
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, context.Canceled):
		return fmt.Errorf("wait for endpoint %s rollout canceled: %w", name, err)
	case wait.Interrupted(err):
		return errors.Wrap(errors.ErrCodeTimeout,
			fmt.Sprintf("endpoint %s did not become ready within %s", name, timeout), err)
	default:
		// Condition errors (failed Gets and the like) pass through.
		return fmt.Errorf("failed waiting for endpoint %s rollout: %w", name, err)
	}
}
