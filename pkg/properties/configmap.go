// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package properties

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/NVIDIA/osgi-version/pkg/defaults"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

const fieldManager = "osgiver"

// ConfigMapOption configures a ConfigMapStore.
type ConfigMapOption func(*ConfigMapStore)

// WithKubeconfig sets the kubeconfig path used to build the client.
func WithKubeconfig(path string) ConfigMapOption {
	return func(s *ConfigMapStore) {
		s.kubeconfig = path
	}
}

// WithKubeClient uses an existing client instead of building one.
func WithKubeClient(c kubernetes.Interface) ConfigMapOption {
	return func(s *ConfigMapStore) {
		s.client = c
	}
}

// ConfigMapStore keeps properties as ConfigMap data keys.
type ConfigMapStore struct {
	namespace  string
	name       string
	kubeconfig string

	clientOnce sync.Once
	client     kubernetes.Interface
	clientErr  error
}

// NewConfigMapStore returns a store for a cm://namespace/name URI. The
// Kubernetes client is built on first use.
func NewConfigMapStore(uri string, opts ...ConfigMapOption) (*ConfigMapStore, error) {
	namespace, name, err := ParseConfigMapURI(uri)
	if err != nil {
		return nil, err
	}
	s := &ConfigMapStore{
		namespace: namespace,
		name:      name,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ParseConfigMapURI splits cm://namespace/name.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}

func (s *ConfigMapStore) kubeClient() (kubernetes.Interface, error) {
	s.clientOnce.Do(func() {
		if s.client != nil {
			return
		}
		s.client, s.clientErr = buildKubeClient(s.kubeconfig)
	})
	return s.client, s.clientErr
}

// Values returns the ConfigMap data. A missing ConfigMap is empty.
func (s *ConfigMapStore) Values(ctx context.Context) (map[string]string, error) {
	c, err := s.kubeClient()
	if err != nil {
		return nil, err
	}

	cm, err := c.CoreV1().ConfigMaps(s.namespace).Get(ctx, s.name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", s.namespace, s.name, err)
	}

	out := make(map[string]string, len(cm.Data))
	for k, v := range cm.Data {
		out[k] = v
	}
	return out, nil
}

// Set merges values into the ConfigMap data, creating the ConfigMap if needed.
func (s *ConfigMapStore) Set(ctx context.Context, values map[string]string) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	c, err := s.kubeClient()
	if err != nil {
		return err
	}
	cms := c.CoreV1().ConfigMaps(s.namespace)

	slog.Info("writing properties to ConfigMap",
		"namespace", s.namespace,
		"name", s.name,
		"keys", sortedKeys(values))

	cm, err := cms.Get(writeCtx, s.name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:      s.name,
				Namespace: s.namespace,
				Labels: map[string]string{
					"app.kubernetes.io/managed-by": fieldManager,
				},
			},
			Data: values,
		}
		if _, err := cms.Create(writeCtx, cm, metav1.CreateOptions{FieldManager: fieldManager}); err != nil {
			return fmt.Errorf("failed to create ConfigMap %s/%s: %w", s.namespace, s.name, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get ConfigMap %s/%s: %w", s.namespace, s.name, err)
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string, len(values))
	}
	for k, v := range values {
		cm.Data[k] = v
	}
	if _, err := cms.Update(writeCtx, cm, metav1.UpdateOptions{FieldManager: fieldManager}); err != nil {
		return fmt.Errorf("failed to update ConfigMap %s/%s: %w", s.namespace, s.name, err)
	}
	return nil
}

// buildKubeClient resolves kubeconfig from the argument, $KUBECONFIG or
// ~/.kube/config and falls back to the in-cluster config.
func buildKubeClient(kubeconfig string) (kubernetes.Interface, error) {
	if kubeconfig == "" {
		kubeconfig = os.Getenv("KUBECONFIG")
		if kubeconfig == "" {
			kubeconfig = filepath.Join(homedir.HomeDir(), ".kube", "config")
			if _, err := os.Stat(kubeconfig); os.IsNotExist(err) {
				kubeconfig = ""
			}
		}
	}

	var (
		config *rest.Config
		err    error
	)
	if kubeconfig == "" {
		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
	} else {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
		}
	}

	c, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return c, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
