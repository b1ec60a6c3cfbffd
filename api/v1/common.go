/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package v1 defines the custom resource types this operator reconciles —
// one Kubernetes Kind per Clever Cloud add-on family, all in API group
// api.clever-cloud.com, version v1 (the KV kind is the sole exception, kept
// at v1alpha1 in the sibling api/v1alpha1 package).
// +kubebuilder:object:generate=true
package v1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

// GroupName is the API group every kind in this package belongs to.
const GroupName = "api.clever-cloud.com"

// GroupVersion is the API group/version every kind in this package belongs to.
var GroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1"}

// SchemeBuilder collects this package's kinds via Register and exposes them
// as an AddToScheme func, the same groupversion_info.go shape every
// kubebuilder-scaffolded API package uses.
var SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

// AddToScheme adds every kind in this package to scheme.
var AddToScheme = SchemeBuilder.AddToScheme

// Instance is the region/plan pair shared by every database or broker kind.
// +kubebuilder:object:generate=true
type Instance struct {
	// Region is the PaaS datacenter the add-on is provisioned in.
	Region string `json:"region"`
	// Plan is either a human slug/name/id (resolved by the reconciler on
	// first reconciliation) or an already-resolved "plan_..." identifier.
	Plan string `json:"plan"`
}

// AddonStatus is the status shape shared by every kind that provisions a
// single remote add-on.
// +kubebuilder:object:generate=true
type AddonStatus struct {
	// Addon is the opaque remote add-on id, set once the add-on has been
	// created or adopted.
	// +optional
	Addon *string `json:"addon,omitempty"`
	// +optional
	// +patchMergeKey=type
	// +patchStrategy=merge
	Conditions []Condition `json:"conditions,omitempty" patchStrategy:"merge" patchMergeKey:"type"`
}

// ConditionType enumerates the condition types this operator reports.
type ConditionType string

const (
	ConditionReady ConditionType = "Ready"
)

// Condition is a standard Kubernetes status condition.
// +kubebuilder:object:generate=true
type Condition struct {
	Type               ConditionType `json:"type"`
	Status             string        `json:"status"`
	Reason             string        `json:"reason,omitempty"`
	Message            string        `json:"message,omitempty"`
	LastTransitionTime string        `json:"lastTransitionTime,omitempty"`
}

// GetAddon returns the current status.addon, or nil if unset.
func (s *AddonStatus) GetAddon() *string {
	return s.Addon
}

// SetAddon sets status.addon to id.
func (s *AddonStatus) SetAddon(id string) {
	s.Addon = &id
}

// ClearAddon clears status.addon.
func (s *AddonStatus) ClearAddon() {
	s.Addon = nil
}
