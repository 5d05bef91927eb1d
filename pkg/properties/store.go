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

// Package properties writes computed OSGi values into a property store.
//
// Two stores are supported, selected by URI:
//
//   - path/to/file.properties: a Java properties file, created if missing
//   - cm://namespace/name: a Kubernetes ConfigMap, created if missing
//
// Both stores merge: keys already present and not being written are kept.
//
//	store, err := properties.NewStore("cm://build/webjar", "")
//	if err != nil {
//		return err
//	}
//	err = store.Set(ctx, map[string]string{"version.osgi": "1.2.0.SNAPSHOT"})
//
// Kubernetes credentials come from the explicit kubeconfig path, $KUBECONFIG,
// ~/.kube/config or the in-cluster service account, in that order.
package properties

import (
	"context"
	"strings"
)

// ConfigMapURIScheme prefixes ConfigMap store URIs.
const ConfigMapURIScheme = "cm://"

// Store receives property values.
type Store interface {
	// Set merges values into the store.
	Set(ctx context.Context, values map[string]string) error
	// Values returns the current content of the store.
	Values(ctx context.Context) (map[string]string, error)
}

// NewStore returns the store addressed by uri. kubeconfig is only used for
// ConfigMap stores and may be empty.
func NewStore(uri, kubeconfig string) (Store, error) {
	if strings.HasPrefix(uri, ConfigMapURIScheme) {
		return NewConfigMapStore(uri, WithKubeconfig(kubeconfig))
	}
	return NewFileStore(uri)
}
