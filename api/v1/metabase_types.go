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
	metabaseFinalizer  = "api.clever-cloud.com/metabase"
	metabaseProviderID = "metabase-addon"
)

// MetabaseSpec defines the desired state of a Metabase add-on.
// +kubebuilder:object:generate=true
type MetabaseSpec struct {
	Organisation string   `json:"organisation"`
	Instance     Instance `json:"instance"`
}

// MetabaseStatus defines the observed state of a Metabase add-on.
// +kubebuilder:object:generate=true
type MetabaseStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// Metabase is the Schema for the metabases API.
type Metabase struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   MetabaseSpec   `json:"spec,omitempty"`
	Status MetabaseStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// MetabaseList contains a list of Metabase.
type MetabaseList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Metabase `json:"items"`
}

func (m *Metabase) GetAddonID() *string  { return m.Status.GetAddon() }
func (m *Metabase) SetAddonID(id string) { m.Status.SetAddon(id) }
func (m *Metabase) ClearAddonID()        { m.Status.ClearAddon() }
func (m *Metabase) Organisation() string { return m.Spec.Organisation }
func (m *Metabase) Finalizer() string    { return metabaseFinalizer }

func (m *Metabase) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     m.Spec.Instance.Region,
		ProviderID: metabaseProviderID,
		Plan:       m.Spec.Instance.Plan,
	}
}

func (m *Metabase) ProviderID() string     { return metabaseProviderID }
func (m *Metabase) PlanValue() string      { return m.Spec.Instance.Plan }
func (m *Metabase) SetPlanValue(id string) { m.Spec.Instance.Plan = id }

func (m *Metabase) DeepCopyInto(out *Metabase) {
	*out = *m
	out.TypeMeta = m.TypeMeta
	m.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = m.Spec
	out.Status = m.Status
	if m.Status.Addon != nil {
		addon := *m.Status.Addon
		out.Status.Addon = &addon
	}
	if m.Status.Conditions != nil {
		out.Status.Conditions = make([]Condition, len(m.Status.Conditions))
		copy(out.Status.Conditions, m.Status.Conditions)
	}
}

func (m *Metabase) DeepCopy() *Metabase {
	if m == nil {
		return nil
	}
	out := new(Metabase)
	m.DeepCopyInto(out)
	return out
}

func (m *Metabase) DeepCopyObject() runtime.Object {
	return m.DeepCopy()
}

func (in *MetabaseList) DeepCopyInto(out *MetabaseList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Metabase, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *MetabaseList) DeepCopy() *MetabaseList {
	if in == nil {
		return nil
	}
	out := new(MetabaseList)
	in.DeepCopyInto(out)
	return out
}

func (in *MetabaseList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&Metabase{}, &MetabaseList{})
}
