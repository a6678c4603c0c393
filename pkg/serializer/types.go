// Package serializer provides reading and writing of structured data for
// fx-deploy: rendered Kubernetes manifests on the way out, values files on
// the way in.
//
// Output formats:
//   - YAML: marshaled with sigs.k8s.io/yaml so typed Kubernetes objects
//     serialize through their json tags
//   - JSON: indented, machine-readable
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.(serializer.Closer).Close()
//	if err := w.Serialize(ctx, deployment); err != nil {
//	    return err
//	}
package serializer

import "context"

// Serializer writes a value to a destination in a configured format.
//
// The context parameter is used for cancellation and timeouts in
// implementations that perform slow I/O.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers implement when they hold
// resources such as file handles.
type Closer interface {
	Close() error
}
