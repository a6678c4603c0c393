package endpoint

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcx-faas/fx-deploy/pkg/errors"
)

func TestDefaultValues(t *testing.T) {
	vals := DefaultValues()
	assert.Equal(t, int32(1), vals.ReplicaCount)
	assert.Equal(t, "IfNotPresent", vals.Image.PullPolicy)
	assert.True(t, vals.Resources.IsZero())
}

func TestApplyDefaults(t *testing.T) {
	vals := Values{
		Image: Image{Repository: "quay.io/funcx", Tag: "1.0"},
	}
	vals.ApplyDefaults()
	assert.Equal(t, int32(1), vals.ReplicaCount)
	assert.Equal(t, "IfNotPresent", vals.Image.PullPolicy)

	// Explicit settings survive
	vals = Values{
		ReplicaCount: 4,
		Image:        Image{Repository: "quay.io/funcx", Tag: "1.0", PullPolicy: "Always"},
	}
	vals.ApplyDefaults()
	assert.Equal(t, int32(4), vals.ReplicaCount)
	assert.Equal(t, "Always", vals.Image.PullPolicy)
}

func TestValidateStructuredError(t *testing.T) {
	vals := validValues()
	vals.ReplicaCount = 0

	err := Validate("myfx", vals)
	require.Error(t, err)

	var serr *errors.StructuredError
	require.True(t, stderrors.As(err, &serr))
	assert.Equal(t, errors.ErrCodeInvalidRequest, serr.Code)
}

func TestValidateReleaseNames(t *testing.T) {
	vals := validValues()

	valid := []string{"myfx", "my-fx", "a", "fx0", "team-a-prod"}
	for _, release := range valid {
		assert.NoError(t, Validate(release, vals), "release %q", release)
	}

	invalid := []string{
		"",
		"My-Fx",
		"my_fx",
		"my.fx",
		"-myfx",
		"myfx-",
		"this-release-name-is-far-too-long-to-leave-room-for-the-suffix",
	}
	for _, release := range invalid {
		assert.Error(t, Validate(release, vals), "release %q", release)
	}
}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name    string
		image   Image
		wantErr bool
	}{
		{
			name:  "registry with port",
			image: Image{Repository: "localhost:5000/funcx", Tag: "dev", PullPolicy: "Never"},
		},
		{
			name:  "docker hub shorthand",
			image: Image{Repository: "funcx/funcx-endpoint", Tag: "latest", PullPolicy: "Always"},
		},
		{
			name:    "uppercase repository",
			image:   Image{Repository: "Quay.io/FuncX", Tag: "1.0", PullPolicy: "Always"},
			wantErr: true,
		},
		{
			name:    "tag with spaces",
			image:   Image{Repository: "quay.io/funcx", Tag: "1 0", PullPolicy: "Always"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals := validValues()
			vals.Image = tt.image
			err := Validate("myfx", vals)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResourcesIsZero(t *testing.T) {
	assert.True(t, Resources{}.IsZero())
	assert.True(t, Resources{Limits: map[string]string{}}.IsZero())
	assert.False(t, Resources{Limits: map[string]string{"cpu": "1"}}.IsZero())
	assert.False(t, Resources{Requests: map[string]string{"memory": "1Gi"}}.IsZero())
}

func TestImageRef(t *testing.T) {
	img := Image{Repository: "quay.io/funcx", Tag: "1.0"}
	assert.Equal(t, "quay.io/funcx:1.0", img.Ref())
}
