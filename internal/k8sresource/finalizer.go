/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package k8sresource

import "sigs.k8s.io/controller-runtime/pkg/client"

// HasFinalizer reports whether obj already carries finalizer.
func HasFinalizer(obj client.Object, finalizer string) bool {
	for _, f := range obj.GetFinalizers() {
		if f == finalizer {
			return true
		}
	}
	return false
}

// AddFinalizer returns a copy of obj's finalizer list with finalizer added,
// unless it is already present (set-union, safe to retry).
func AddFinalizer(obj client.Object, finalizer string) []string {
	if HasFinalizer(obj, finalizer) {
		return obj.GetFinalizers()
	}
	return append(append([]string{}, obj.GetFinalizers()...), finalizer)
}

// RemoveFinalizer returns a copy of obj's finalizer list with finalizer removed.
func RemoveFinalizer(obj client.Object, finalizer string) []string {
	existing := obj.GetFinalizers()
	kept := make([]string, 0, len(existing))
	for _, f := range existing {
		if f != finalizer {
			kept = append(kept, f)
		}
	}
	return kept
}
