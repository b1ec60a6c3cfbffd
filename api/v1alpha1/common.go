/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package v1alpha1 holds the KV kind, the one kind this operator still
// serves at v1alpha1 rather than api/v1's v1 — its shape (a region-only
// instance, a fixed alpha-phase plan) predates the v1 kinds' stabilized
// instance{region,plan} contract.
// +kubebuilder:object:generate=true
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

// GroupName is the API group the KV kind belongs to.
const GroupName = "api.clever-cloud.com"

// GroupVersion is the API group/version the KV kind belongs to.
var GroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}

// SchemeBuilder collects this package's kinds via Register and exposes them
// as an AddToScheme func.
var SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

// AddToScheme adds the KV kind to scheme.
var AddToScheme = SchemeBuilder.AddToScheme
