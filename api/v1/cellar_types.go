/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/CleverCloud/clever-operator/internal/clevercloud"
)

const (
	cellarFinalizer  = "api.clever-cloud.com/cellar"
	cellarProviderID = "cellar-addon"
)

// CellarSpec defines the desired state of a Cellar (S3-compatible object
// storage) add-on.
// +kubebuilder:object:generate=true
type CellarSpec struct {
	Organisation string   `json:"organisation"`
	Instance     Instance `json:"instance"`
}

// CellarStatus defines the observed state of a Cellar add-on.
// +kubebuilder:object:generate=true
type CellarStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// Cellar is the Schema for the cellars API.
type Cellar struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   CellarSpec   `json:"spec,omitempty"`
	Status CellarStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// CellarList contains a list of Cellar.
type CellarList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Cellar `json:"items"`
}

func (c *Cellar) GetAddonID() *string  { return c.Status.GetAddon() }
func (c *Cellar) SetAddonID(id string) { c.Status.SetAddon(id) }
func (c *Cellar) ClearAddonID()        { c.Status.ClearAddon() }
func (c *Cellar) Organisation() string { return c.Spec.Organisation }
func (c *Cellar) Finalizer() string    { return cellarFinalizer }

func (c *Cellar) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     c.Spec.Instance.Region,
		ProviderID: cellarProviderID,
		Plan:       c.Spec.Instance.Plan,
	}
}

func (c *Cellar) ProviderID() string     { return cellarProviderID }
func (c *Cellar) PlanValue() string      { return c.Spec.Instance.Plan }
func (c *Cellar) SetPlanValue(id string) { c.Spec.Instance.Plan = id }

func (c *Cellar) DeepCopyInto(out *Cellar) {
	*out = *c
	out.TypeMeta = c.TypeMeta
	c.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = c.Spec
	out.Status = c.Status
	if c.Status.Addon != nil {
		addon := *c.Status.Addon
		out.Status.Addon = &addon
	}
	if c.Status.Conditions != nil {
		out.Status.Conditions = make([]Condition, len(c.Status.Conditions))
		copy(out.Status.Conditions, c.Status.Conditions)
	}
}

func (c *Cellar) DeepCopy() *Cellar {
	if c == nil {
		return nil
	}
	out := new(Cellar)
	c.DeepCopyInto(out)
	return out
}

func (c *Cellar) DeepCopyObject() runtime.Object {
	return c.DeepCopy()
}

func (in *CellarList) DeepCopyInto(out *CellarList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Cellar, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *CellarList) DeepCopy() *CellarList {
	if in == nil {
		return nil
	}
	out := new(CellarList)
	in.DeepCopyInto(out)
	return out
}

func (in *CellarList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&Cellar{}, &CellarList{})
}
