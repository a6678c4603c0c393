package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"values.yaml", FormatYAML},
		{"values.YML", FormatYAML},
		{"values.json", FormatJSON},
		{"values", FormatYAML},
		{"values.conf", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestReaderDeserializeYAML(t *testing.T) {
	in := strings.NewReader("name: myfx\nreplicas: 3\n")
	r, err := NewReader(FormatYAML, in)
	require.NoError(t, err)

	var got struct {
		Name     string `yaml:"name"`
		Replicas int    `yaml:"replicas"`
	}
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "myfx", got.Name)
	assert.Equal(t, 3, got.Replicas)
}

func TestReaderUnknownFormat(t *testing.T) {
	_, err := NewReader(Format("csv"), strings.NewReader(""))
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.yaml")
	content := "replicaCount: 2\nimage:\n  repository: quay.io/funcx\n  tag: \"1.0\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	type values struct {
		ReplicaCount int `yaml:"replicaCount"`
		Image        struct {
			Repository string `yaml:"repository"`
			Tag        string `yaml:"tag"`
		} `yaml:"image"`
	}

	got, err := FromFile[values](path)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ReplicaCount)
	assert.Equal(t, "quay.io/funcx", got.Image.Repository)
	assert.Equal(t, "1.0", got.Image.Tag)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile[map[string]string](filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
