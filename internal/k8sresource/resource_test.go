/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package k8sresource

import (
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestDiffOfEqualObjectsIsEmpty(t *testing.T) {
	obj := &corev1.Secret{ObjectMeta: metav1.ObjectMeta{Name: "x", Namespace: "ns"}}
	patch, err := Diff(obj, obj)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Empty(patch) {
		t.Fatalf("expected empty patch, got %s", patch)
	}
}

func TestDiffOfDifferentObjectsIsNotEmpty(t *testing.T) {
	a := &corev1.Secret{ObjectMeta: metav1.ObjectMeta{Name: "x", Namespace: "ns"}}
	b := &corev1.Secret{ObjectMeta: metav1.ObjectMeta{Name: "x", Namespace: "ns"}, StringData: map[string]string{"A": "1"}}
	patch, err := Diff(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Empty(patch) {
		t.Fatal("expected non-empty patch")
	}
}

func TestAddFinalizerIsSetUnion(t *testing.T) {
	obj := &corev1.Secret{ObjectMeta: metav1.ObjectMeta{Finalizers: []string{"a"}}}
	if got := AddFinalizer(obj, "a"); len(got) != 1 {
		t.Fatalf("expected no duplicate, got %v", got)
	}
	if got := AddFinalizer(obj, "b"); len(got) != 2 {
		t.Fatalf("expected union, got %v", got)
	}
}

func TestRemoveFinalizer(t *testing.T) {
	obj := &corev1.Secret{ObjectMeta: metav1.ObjectMeta{Finalizers: []string{"a", "b"}}}
	got := RemoveFinalizer(obj, "a")
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("expected [b], got %v", got)
	}
}
