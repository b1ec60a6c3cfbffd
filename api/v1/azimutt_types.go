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
	azimuttFinalizer  = "api.clever-cloud.com/azimutt"
	azimuttProviderID = "azimutt-addon"
)

// AzimuttSpec defines the desired state of an Azimutt add-on.
// +kubebuilder:object:generate=true
type AzimuttSpec struct {
	Organisation string   `json:"organisation"`
	Instance     Instance `json:"instance"`
}

// AzimuttStatus defines the observed state of an Azimutt add-on.
// +kubebuilder:object:generate=true
type AzimuttStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// Azimutt is the Schema for the azimutts API.
type Azimutt struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   AzimuttSpec   `json:"spec,omitempty"`
	Status AzimuttStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// AzimuttList contains a list of Azimutt.
type AzimuttList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Azimutt `json:"items"`
}

func (a *Azimutt) GetAddonID() *string  { return a.Status.GetAddon() }
func (a *Azimutt) SetAddonID(id string) { a.Status.SetAddon(id) }
func (a *Azimutt) ClearAddonID()        { a.Status.ClearAddon() }
func (a *Azimutt) Organisation() string { return a.Spec.Organisation }
func (a *Azimutt) Finalizer() string    { return azimuttFinalizer }

func (a *Azimutt) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     a.Spec.Instance.Region,
		ProviderID: azimuttProviderID,
		Plan:       a.Spec.Instance.Plan,
	}
}

func (a *Azimutt) ProviderID() string     { return azimuttProviderID }
func (a *Azimutt) PlanValue() string      { return a.Spec.Instance.Plan }
func (a *Azimutt) SetPlanValue(id string) { a.Spec.Instance.Plan = id }

func (a *Azimutt) DeepCopyInto(out *Azimutt) {
	*out = *a
	out.TypeMeta = a.TypeMeta
	a.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = a.Spec
	out.Status = a.Status
	if a.Status.Addon != nil {
		addon := *a.Status.Addon
		out.Status.Addon = &addon
	}
	if a.Status.Conditions != nil {
		out.Status.Conditions = make([]Condition, len(a.Status.Conditions))
		copy(out.Status.Conditions, a.Status.Conditions)
	}
}

func (a *Azimutt) DeepCopy() *Azimutt {
	if a == nil {
		return nil
	}
	out := new(Azimutt)
	a.DeepCopyInto(out)
	return out
}

func (a *Azimutt) DeepCopyObject() runtime.Object {
	return a.DeepCopy()
}

func (in *AzimuttList) DeepCopyInto(out *AzimuttList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Azimutt, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *AzimuttList) DeepCopy() *AzimuttList {
	if in == nil {
		return nil
	}
	out := new(AzimuttList)
	in.DeepCopyInto(out)
	return out
}

func (in *AzimuttList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&Azimutt{}, &AzimuttList{})
}
