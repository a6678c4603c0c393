package endpoint

import (
	"fmt"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
)

// Container mount points. The startup script stages files from the three
// read-side mounts into the pod home directory before the endpoint starts.
const (
	homeMountPath        = "/home/funcx"
	configMountPath      = "/funcx/config"
	instanceMountPath    = "/funcx/instance"
	credentialsMountPath = "/funcx/credentials"
)

// Volume names inside the pod spec.
const (
	homeVolume        = "endpoint-home"
	configVolume      = "endpoint-config"
	instanceVolume    = "endpoint-instance-config"
	credentialsVolume = "funcx-sdk-tokens"
)

// Build renders the endpoint Deployment for a release. Inputs are validated
// first; on validation failure no Deployment is returned.
func Build(release string, vals Values) (*appsv1.Deployment, error) {
	if err := Validate(release, vals); err != nil {
		return nil, err
	}
	return build(release, vals), nil
}

func build(release string, vals Values) *appsv1.Deployment {
	fullname := Fullname(release)

	// The app label must be identical on the object, the selector, and the
	// pod template, or the Deployment stops matching its own pods.
	selectorLabels := map[string]string{
		"app": fullname,
	}
	labels := map[string]string{
		"app":             fullname,
		ManagedByLabelKey: ManagedByLabelValue,
	}

	container := corev1.Container{
		Name:            fullname,
		Image:           vals.Image.Ref(),
		ImagePullPolicy: corev1.PullPolicy(vals.Image.PullPolicy),
		Command:         []string{"/bin/sh"},
		Args:            []string{"-c", startupScript(release)},
		Ports: []corev1.ContainerPort{
			{ContainerPort: Port},
		},
		// The container stays attachable for interactive debugging of the
		// endpoint process.
		TTY:   true,
		Stdin: true,
		VolumeMounts: []corev1.VolumeMount{
			{
				Name:      homeVolume,
				MountPath: homeMountPath,
			},
			{
				Name:      credentialsVolume,
				MountPath: credentialsMountPath,
				ReadOnly:  true,
			},
			{
				Name:      configVolume,
				MountPath: configMountPath,
			},
			{
				Name:      instanceVolume,
				MountPath: instanceMountPath,
			},
		},
	}

	// Omit the resources block entirely when nothing was supplied; an empty
	// block and no block are not the same thing to a reviewer diffing
	// rendered manifests.
	if !vals.Resources.IsZero() {
		container.Resources = corev1.ResourceRequirements{
			Limits:   toResourceList(vals.Resources.Limits),
			Requests: toResourceList(vals.Resources.Requests),
		}
	}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:   fullname,
			Labels: labels,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(vals.ReplicaCount),
			Selector: &metav1.LabelSelector{
				MatchLabels: selectorLabels,
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: labels,
				},
				Spec: corev1.PodSpec{
					ServiceAccountName: ServiceAccountName(release),
					Containers:         []corev1.Container{container},
					Volumes: []corev1.Volume{
						{
							Name: homeVolume,
							VolumeSource: corev1.VolumeSource{
								EmptyDir: &corev1.EmptyDirVolumeSource{},
							},
						},
						{
							Name: credentialsVolume,
							VolumeSource: corev1.VolumeSource{
								Secret: &corev1.SecretVolumeSource{
									SecretName: TokensSecretName,
								},
							},
						},
						{
							Name: configVolume,
							VolumeSource: corev1.VolumeSource{
								ConfigMap: &corev1.ConfigMapVolumeSource{
									LocalObjectReference: corev1.LocalObjectReference{
										Name: ConfigMapName(release),
									},
								},
							},
						},
						{
							Name: instanceVolume,
							VolumeSource: corev1.VolumeSource{
								ConfigMap: &corev1.ConfigMapVolumeSource{
									LocalObjectReference: corev1.LocalObjectReference{
										Name: InstanceConfigMapName(release),
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

// startupScript stages config and credential files into the endpoint home
// directory, starts the endpoint, and then idles to keep the container
// running. mkdir -p makes pod restarts safe when the directories survive in
// the scratch volume.
func startupScript(release string) string {
	steps := []string{
		"mkdir -p $HOME/.funcx",
		fmt.Sprintf("mkdir -p $HOME/.funcx/%s", release),
		"mkdir -p $HOME/.funcx/credentials",
		fmt.Sprintf("cp %s/config.py $HOME/.funcx/config.py", configMountPath),
		fmt.Sprintf("cp %s/* $HOME/.funcx/%s/", instanceMountPath, release),
		fmt.Sprintf("cp %s/* $HOME/.funcx/credentials/", credentialsMountPath),
		fmt.Sprintf("funcx-endpoint start %s", release),
		"tail -f /dev/null",
	}
	return strings.Join(steps, "; ")
}
