package endpoint

import (
	"fmt"

	"github.com/distribution/reference"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	utilvalidation "k8s.io/apimachinery/pkg/util/validation"

	"github.com/funcx-faas/fx-deploy/pkg/errors"
)

// maxReleaseNameLen keeps Fullname(release) within the 63 character limit
// imposed on label values and DNS-1123 labels ("-endpoint" takes 9).
const maxReleaseNameLen = 54

// Image identifies the endpoint container image.
type Image struct {
	Repository string `json:"repository" yaml:"repository"`
	Tag        string `json:"tag" yaml:"tag"`
	// PullPolicy must be one of Always, IfNotPresent, or Never.
	// Defaults to IfNotPresent when empty.
	PullPolicy string `json:"pullPolicy,omitempty" yaml:"pullPolicy,omitempty"`
}

// Ref returns the full image reference, <repository>:<tag>.
func (i Image) Ref() string {
	return i.Repository + ":" + i.Tag
}

// Resources carries optional compute resource limits and requests, keyed by
// resource name (cpu, memory, ...) with Kubernetes quantity strings as
// values. A zero Resources means no resources block is rendered at all.
type Resources struct {
	Limits   map[string]string `json:"limits,omitempty" yaml:"limits,omitempty"`
	Requests map[string]string `json:"requests,omitempty" yaml:"requests,omitempty"`
}

// IsZero reports whether no limits and no requests were supplied.
func (r Resources) IsZero() bool {
	return len(r.Limits) == 0 && len(r.Requests) == 0
}

// Values holds the user-configurable inputs to the Deployment render.
type Values struct {
	ReplicaCount int32     `json:"replicaCount" yaml:"replicaCount"`
	Image        Image     `json:"image" yaml:"image"`
	Resources    Resources `json:"resources,omitempty" yaml:"resources,omitempty"`
}

// DefaultValues returns Values with the defaults applied: one replica,
// IfNotPresent pull policy, no image, no resources.
func DefaultValues() Values {
	return Values{
		ReplicaCount: 1,
		Image: Image{
			PullPolicy: string(corev1.PullIfNotPresent),
		},
	}
}

// ApplyDefaults fills in defaults for fields the user left unset. It never
// overrides an explicitly provided value.
func (v *Values) ApplyDefaults() {
	if v.ReplicaCount == 0 {
		v.ReplicaCount = 1
	}
	if v.Image.PullPolicy == "" {
		v.Image.PullPolicy = string(corev1.PullIfNotPresent)
	}
}

// Validate checks a release name and values set, returning a structured
// INVALID_REQUEST error on the first problem found. Nothing is rendered for
// inputs that fail validation.
func Validate(release string, v Values) error {
	if err := validateRelease(release); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid release name", err)
	}
	if err := validateValues(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid endpoint values", err)
	}
	return nil
}

func validateRelease(release string) error {
	if release == "" {
		return fmt.Errorf("release name is required")
	}
	if len(release) > maxReleaseNameLen {
		return fmt.Errorf("release name %q exceeds %d characters", release, maxReleaseNameLen)
	}
	if msgs := utilvalidation.IsDNS1123Label(release); len(msgs) > 0 {
		return fmt.Errorf("release name %q is not a valid DNS-1123 label: %s", release, msgs[0])
	}
	return nil
}

func validateValues(v Values) error {
	if v.ReplicaCount <= 0 {
		return fmt.Errorf("replicaCount must be a positive integer, got %d", v.ReplicaCount)
	}

	if v.Image.Repository == "" {
		return fmt.Errorf("image.repository is required")
	}
	if v.Image.Tag == "" {
		return fmt.Errorf("image.tag is required")
	}
	named, err := reference.ParseNormalizedNamed(v.Image.Repository)
	if err != nil {
		return fmt.Errorf("image.repository %q is not a valid image reference: %w", v.Image.Repository, err)
	}
	if _, err := reference.WithTag(named, v.Image.Tag); err != nil {
		return fmt.Errorf("image.tag %q is not a valid tag: %w", v.Image.Tag, err)
	}

	switch corev1.PullPolicy(v.Image.PullPolicy) {
	case corev1.PullAlways, corev1.PullIfNotPresent, corev1.PullNever:
	default:
		return fmt.Errorf("image.pullPolicy must be one of Always, IfNotPresent, or Never, got %q", v.Image.PullPolicy)
	}

	if err := validateQuantities("limits", v.Resources.Limits); err != nil {
		return err
	}
	if err := validateQuantities("requests", v.Resources.Requests); err != nil {
		return err
	}
	return nil
}

func validateQuantities(kind string, m map[string]string) error {
	for name, qty := range m {
		if name == "" {
			return fmt.Errorf("resources.%s contains an empty resource name", kind)
		}
		if _, err := resource.ParseQuantity(qty); err != nil {
			return fmt.Errorf("resources.%s.%s: invalid quantity %q: %w", kind, name, qty, err)
		}
	}
	return nil
}

// toResourceList converts a validated quantity map to a corev1.ResourceList.
// Callers must have run validateQuantities first; unparseable quantities are
// skipped rather than panicking mid-render.
func toResourceList(m map[string]string) corev1.ResourceList {
	if len(m) == 0 {
		return nil
	}
	list := make(corev1.ResourceList, len(m))
	for name, qty := range m {
		q, err := resource.ParseQuantity(qty)
		if err != nil {
			continue
		}
		list[corev1.ResourceName(name)] = q
	}
	return list
}
