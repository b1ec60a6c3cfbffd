/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package secretproj projects an add-on's environment (or a ConfigProvider's
// variables) into a core/v1 Secret owned by the originating custom resource.
package secretproj

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/CleverCloud/clever-operator/internal/k8sresource"
)

// Name returns the deterministic name of the Secret projected for a CR.
func Name(crName string) string {
	return crName + "-secrets"
}

// New builds the Secret this operator owns for obj, populated with values as
// stringData. It carries exactly one owner reference, pointing at obj, with
// blockOwnerDeletion set — so the Secret is garbage-collected automatically
// once obj (and its finalizer) is gone.
func New(obj client.Object, scheme *runtime.Scheme, values map[string]string) (*corev1.Secret, error) {
	ownerRef, err := k8sresource.OwnerReference(obj, scheme)
	if err != nil {
		return nil, err
	}

	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:            Name(obj.GetName()),
			Namespace:       obj.GetNamespace(),
			OwnerReferences: []metav1.OwnerReference{ownerRef},
		},
		StringData: values,
	}, nil
}

// Upsert builds and upserts the projected Secret for obj.
func Upsert(ctx context.Context, c client.Client, obj client.Object, scheme *runtime.Scheme, values map[string]string) error {
	secret, err := New(obj, scheme, values)
	if err != nil {
		return err
	}
	existing := &corev1.Secret{}
	return k8sresource.Upsert(ctx, c, secret, existing, false)
}
