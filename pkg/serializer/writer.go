package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	sigyaml "sigs.k8s.io/yaml"
)

// Format represents the output format type.
type Format string

const (
	// FormatJSON outputs data in indented JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML.
	FormatYAML Format = "yaml"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// SupportedFormats returns the names of all supported output formats.
func SupportedFormats() []string {
	return []string{string(FormatYAML), string(FormatJSON)}
}

// Writer serializes values to an output destination. Close must be called to
// release file handles when using NewFileWriterOrStdout.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter creates a Writer with the given format and destination. A nil
// output falls back to stdout; an unknown format falls back to YAML.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to YAML", "format", format)
		format = FormatYAML
	}
	return &Writer{
		format: format,
		output: output,
	}
}

// NewStdoutWriter creates a Writer that writes to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a Serializer writing to the given file path,
// falling back to stdout when the path is empty or the file cannot be
// created. Call Close on the returned writer when done.
func NewFileWriterOrStdout(format Format, path string) Serializer {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewStdoutWriter(format)
	}

	file, err := os.Create(trimmed)
	if err != nil {
		slog.Error("failed to create output file, falling back to stdout", "error", err, "path", trimmed)
		return NewStdoutWriter(format)
	}

	w := NewWriter(format, file)
	w.closer = file
	return w
}

// Close releases any resources held by the Writer. Safe to call multiple
// times and on stdout-backed writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Serialize writes v in the configured format. The context is accepted for
// interface consistency; file and stdout writes do not block on it.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	switch w.format {
	case FormatJSON:
		return w.serializeJSON(v)
	case FormatYAML:
		return w.serializeYAML(v)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

func (w *Writer) serializeJSON(v any) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

// serializeYAML goes through sigs.k8s.io/yaml rather than a direct YAML
// encoder: typed Kubernetes objects only carry json tags, and the sigs
// wrapper marshals through them.
func (w *Writer) serializeYAML(v any) error {
	content, err := sigyaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	if _, err := w.output.Write(content); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return nil
}

// Marshal serializes v to bytes in the given format. It is the non-streaming
// counterpart of Writer.Serialize, used where the caller needs the content
// in memory (e.g. OCI packaging).
func Marshal(format Format, v any) ([]byte, error) {
	switch format {
	case FormatJSON:
		content, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize to JSON: %w", err)
		}
		return content, nil
	case FormatYAML:
		content, err := sigyaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize to YAML: %w", err)
		}
		return content, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
