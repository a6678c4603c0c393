package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/funcx-faas/fx-deploy/pkg/k8s/deployer"
	"github.com/funcx-faas/fx-deploy/pkg/serializer"
)

func TestParseRenderCmdOptions(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		validate func(*testing.T, *renderCmdOptions)
	}{
		{
			name: "defaults",
			args: []string{"render", "my-endpoint"},
			validate: func(t *testing.T, opts *renderCmdOptions) {
				if opts.release != "my-endpoint" {
					t.Errorf("release = %q", opts.release)
				}
				if opts.outputFormat != outputFormatFile {
					t.Errorf("outputFormat = %q", opts.outputFormat)
				}
				if opts.format != serializer.FormatYAML {
					t.Errorf("format = %q", opts.format)
				}
			},
		},
		{
			name:    "missing release",
			args:    []string{"render"},
			wantErr: "release name argument is required",
		},
		{
			name:    "unknown format",
			args:    []string{"render", "--format", "xml", "my-endpoint"},
			wantErr: "unknown output format",
		},
		{
			name:    "invalid output format",
			args:    []string{"render", "--output-format", "tarball", "my-endpoint"},
			wantErr: "--output-format must be",
		},
		{
			name:    "push requires oci",
			args:    []string{"render", "--push", "my-endpoint"},
			wantErr: "--push requires --output-format=oci",
		},
		{
			name:    "oci requires registry",
			args:    []string{"render", "--output-format", "oci", "--repository", "funcx/manifests", "my-endpoint"},
			wantErr: "--registry is required",
		},
		{
			name:    "oci requires repository",
			args:    []string{"render", "--output-format", "oci", "--registry", "ghcr.io", "my-endpoint"},
			wantErr: "--repository is required",
		},
		{
			name: "oci defaults tag",
			args: []string{
				"render", "--output-format", "oci",
				"--registry", "ghcr.io", "--repository", "funcx/manifests",
				"my-endpoint",
			},
			validate: func(t *testing.T, opts *renderCmdOptions) {
				if opts.reference == nil {
					t.Fatal("reference not populated for oci output")
				}
				if opts.reference.Tag != defaultOCITag {
					t.Errorf("Tag = %q, want %q", opts.reference.Tag, defaultOCITag)
				}
				if got := opts.reference.ImageReference(); got != "ghcr.io/funcx/manifests:latest" {
					t.Errorf("ImageReference() = %q", got)
				}
			},
		},
		{
			name: "values flags flow through",
			args: []string{"render", "--image-tag", "0.3.4", "--replicas", "2", "my-endpoint"},
			validate: func(t *testing.T, opts *renderCmdOptions) {
				if opts.values.Image.Tag != "0.3.4" {
					t.Errorf("Image.Tag = %q", opts.values.Image.Tag)
				}
				if opts.values.ReplicaCount != 2 {
					t.Errorf("ReplicaCount = %d", opts.values.ReplicaCount)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *renderCmdOptions
			var capturedErr error

			cmd := renderCmd()
			cmd.Action = func(ctx context.Context, c *cli.Command) error {
				captured, capturedErr = parseRenderCmdOptions(c)
				return capturedErr
			}

			err := cmd.Run(context.Background(), tt.args)
			if tt.wantErr != "" {
				errToCheck := err
				if capturedErr != nil {
					errToCheck = capturedErr
				}
				if errToCheck == nil {
					t.Fatal("expected error but got nil")
				}
				if !strings.Contains(errToCheck.Error(), tt.wantErr) {
					t.Errorf("error = %v, want error containing %q", errToCheck, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, captured)
			}
		})
	}
}

func TestRenderCmd_CommandStructure(t *testing.T) {
	cmd := renderCmd()

	if cmd.Name != "render" {
		t.Errorf("Name = %v, want render", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if cmd.Description == "" {
		t.Error("Description should not be empty")
	}

	requiredFlags := []string{"values", "image-repository", "image-tag", "replicas", "output", "format", "output-format", "registry", "repository", "tag", "push"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}

	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestDeployCmd_CommandStructure(t *testing.T) {
	cmd := deployCmd()

	if cmd.Name != "deploy" {
		t.Errorf("Name = %v, want deploy", cmd.Name)
	}

	requiredFlags := []string{"values", "namespace", "kubeconfig", "wait", "timeout", "output", "format"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}

	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestDeleteCmd_CommandStructure(t *testing.T) {
	cmd := deleteCmd()

	if cmd.Name != "delete" {
		t.Errorf("Name = %v, want delete", cmd.Name)
	}

	requiredFlags := []string{"namespace", "kubeconfig", "timeout"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}
}

func TestStatusCmd_CommandStructure(t *testing.T) {
	cmd := statusCmd()

	if cmd.Name != "status" {
		t.Errorf("Name = %v, want status", cmd.Name)
	}

	requiredFlags := []string{"namespace", "kubeconfig", "output", "format", "all"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}
}

func TestRootCmd_CommandStructure(t *testing.T) {
	cmd := rootCmd()

	if cmd.Name != name {
		t.Errorf("Name = %v, want %v", cmd.Name, name)
	}

	wantCommands := []string{"render", "deploy", "delete", "status", "serve"}
	for _, want := range wantCommands {
		found := false
		for _, sub := range cmd.Commands {
			if sub.Name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not found", want)
		}
	}
}

func TestPrintStatusTable(t *testing.T) {
	var buf bytes.Buffer
	err := printStatusTable(&buf, []*deployer.Status{
		{
			Release:    "alpha",
			Namespace:  "funcx",
			EndpointID: "8a2f1e30-0000-4000-8000-000000000001",
			Image:      "funcx/kube-endpoint:main-3.14",
			Desired:    2,
			Ready:      1,
			Available:  true,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"RELEASE", "ENDPOINT-ID", "AVAILABLE", "alpha", "funcx/kube-endpoint:main-3.14"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines:\n%s", len(lines), out)
	}
	row := strings.Fields(lines[1])
	if got := row[len(row)-1]; got != "true" {
		t.Errorf("expected AVAILABLE column 'true', got %q", got)
	}
}
