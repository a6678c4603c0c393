package endpoint

// TokensSecretName is the Secret that supplies funcX SDK credential files.
// The Secret is provisioned out of band and shared by every release in the
// namespace, so its name is not derived from the release.
const TokensSecretName = "funcx-sdk-tokens"

// Port is the single container port exposed by the endpoint pod.
const Port = 5000

// Labels applied to every rendered resource in addition to the app selector
// label. The managed-by label is what StatusAll uses to find endpoint
// deployments.
const (
	ManagedByLabelKey   = "app.kubernetes.io/managed-by"
	ManagedByLabelValue = "fxdctl"
)

// Fullname returns the canonical resource name for a release,
// <release>-endpoint. It names the Deployment, the ServiceAccount, and the
// app selector label value.
func Fullname(release string) string {
	return release + "-endpoint"
}

// ConfigMapName returns the name of the ConfigMap holding the shared base
// config file for a release.
func ConfigMapName(release string) string {
	return Fullname(release) + "-config"
}

// InstanceConfigMapName returns the name of the ConfigMap holding the
// per-release instance configuration files.
func InstanceConfigMapName(release string) string {
	return Fullname(release) + "-instance-config"
}

// ServiceAccountName returns the ServiceAccount the endpoint pod runs as.
func ServiceAccountName(release string) string {
	return Fullname(release)
}
