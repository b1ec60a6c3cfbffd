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
	matomoFinalizer  = "api.clever-cloud.com/matomo"
	matomoProviderID = "matomo-addon"
)

// MatomoSpec defines the desired state of a Matomo add-on.
// +kubebuilder:object:generate=true
type MatomoSpec struct {
	Organisation string   `json:"organisation"`
	Instance     Instance `json:"instance"`
}

// MatomoStatus defines the observed state of a Matomo add-on.
// +kubebuilder:object:generate=true
type MatomoStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// Matomo is the Schema for the matomos API.
type Matomo struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   MatomoSpec   `json:"spec,omitempty"`
	Status MatomoStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// MatomoList contains a list of Matomo.
type MatomoList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Matomo `json:"items"`
}

func (m *Matomo) GetAddonID() *string  { return m.Status.GetAddon() }
func (m *Matomo) SetAddonID(id string) { m.Status.SetAddon(id) }
func (m *Matomo) ClearAddonID()        { m.Status.ClearAddon() }
func (m *Matomo) Organisation() string { return m.Spec.Organisation }
func (m *Matomo) Finalizer() string    { return matomoFinalizer }

func (m *Matomo) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     m.Spec.Instance.Region,
		ProviderID: matomoProviderID,
		Plan:       m.Spec.Instance.Plan,
	}
}

func (m *Matomo) ProviderID() string     { return matomoProviderID }
func (m *Matomo) PlanValue() string      { return m.Spec.Instance.Plan }
func (m *Matomo) SetPlanValue(id string) { m.Spec.Instance.Plan = id }

func (m *Matomo) DeepCopyInto(out *Matomo) {
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

func (m *Matomo) DeepCopy() *Matomo {
	if m == nil {
		return nil
	}
	out := new(Matomo)
	m.DeepCopyInto(out)
	return out
}

func (m *Matomo) DeepCopyObject() runtime.Object {
	return m.DeepCopy()
}

func (in *MatomoList) DeepCopyInto(out *MatomoList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Matomo, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *MatomoList) DeepCopy() *MatomoList {
	if in == nil {
		return nil
	}
	out := new(MatomoList)
	in.DeepCopyInto(out)
	return out
}

func (in *MatomoList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&Matomo{}, &MatomoList{})
}
