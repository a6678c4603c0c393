package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestBuildKubeClient_PathResolution exercises the kubeconfig path
// resolution logic without connecting to a cluster.
func TestBuildKubeClient_PathResolution(t *testing.T) {
	tests := []struct {
		name          string
		kubeconfigArg string
		kubeconfigEnv string
		errorContains string
	}{
		{
			name:          "explicit invalid path",
			kubeconfigArg: "/nonexistent/path/to/kubeconfig",
			errorContains: "failed to build kube config",
		},
		{
			name:          "env var with invalid path",
			kubeconfigEnv: "/nonexistent/env/kubeconfig",
			errorContains: "failed to build kube config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kubeconfigEnv != "" {
				t.Setenv("KUBECONFIG", tt.kubeconfigEnv)
			} else {
				t.Setenv("KUBECONFIG", "")
			}

			_, _, err := BuildKubeClient(tt.kubeconfigArg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("BuildKubeClient() error = %v, want error containing %q", err, tt.errorContains)
			}
		})
	}
}

func TestBuildKubeClient_ValidKubeconfig(t *testing.T) {
	// Minimal kubeconfig that parses without requiring a live server.
	content := `apiVersion: v1
kind: Config
clusters:
- cluster:
    server: https://127.0.0.1:6443
  name: test
contexts:
- context:
    cluster: test
    user: test
  name: test
current-context: test
users:
- name: test
  user:
    token: test-token
`
	path := filepath.Join(t.TempDir(), "kubeconfig")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	clientset, cfg, err := BuildKubeClient(path)
	if err != nil {
		t.Fatalf("BuildKubeClient() error = %v", err)
	}
	if clientset == nil {
		t.Error("expected clientset, got nil")
	}
	if cfg == nil || cfg.Host != "https://127.0.0.1:6443" {
		t.Errorf("unexpected rest config: %+v", cfg)
	}
}

// An empty kubeconfig path routes through the shared client, so repeated
// calls return the same instances regardless of discovery outcome.
func TestGetKubeClientWithConfig_SharedClient(t *testing.T) {
	t.Setenv("KUBECONFIG", "")

	c1, cfg1, err1 := GetKubeClientWithConfig("")
	c2, cfg2, err2 := GetKubeClientWithConfig("")

	if c1 != c2 {
		t.Error("expected the same shared client on repeated calls")
	}
	if cfg1 != cfg2 {
		t.Error("expected the same shared rest config on repeated calls")
	}
	if err1 != err2 {
		t.Errorf("expected identical discovery results, got %v and %v", err1, err2)
	}
}
