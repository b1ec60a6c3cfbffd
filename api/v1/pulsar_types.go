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
	pulsarFinalizer  = "api.clever-cloud.com/pulsar"
	pulsarProviderID = "pulsar-addon"
)

// PulsarSpec defines the desired state of a Pulsar add-on. Pulsar has no
// provisioning options beyond region and plan.
// +kubebuilder:object:generate=true
type PulsarSpec struct {
	Organisation string   `json:"organisation"`
	Instance     Instance `json:"instance"`
}

// PulsarStatus defines the observed state of a Pulsar add-on.
// +kubebuilder:object:generate=true
type PulsarStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// Pulsar is the Schema for the pulsars API.
type Pulsar struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PulsarSpec   `json:"spec,omitempty"`
	Status PulsarStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PulsarList contains a list of Pulsar.
type PulsarList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Pulsar `json:"items"`
}

func (p *Pulsar) GetAddonID() *string  { return p.Status.GetAddon() }
func (p *Pulsar) SetAddonID(id string) { p.Status.SetAddon(id) }
func (p *Pulsar) ClearAddonID()        { p.Status.ClearAddon() }
func (p *Pulsar) Organisation() string { return p.Spec.Organisation }
func (p *Pulsar) Finalizer() string    { return pulsarFinalizer }

func (p *Pulsar) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     p.Spec.Instance.Region,
		ProviderID: pulsarProviderID,
		Plan:       p.Spec.Instance.Plan,
	}
}

func (p *Pulsar) ProviderID() string     { return pulsarProviderID }
func (p *Pulsar) PlanValue() string      { return p.Spec.Instance.Plan }
func (p *Pulsar) SetPlanValue(id string) { p.Spec.Instance.Plan = id }

func (p *Pulsar) DeepCopyInto(out *Pulsar) {
	*out = *p
	out.TypeMeta = p.TypeMeta
	p.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = p.Spec
	out.Status = p.Status
	if p.Status.Addon != nil {
		addon := *p.Status.Addon
		out.Status.Addon = &addon
	}
	if p.Status.Conditions != nil {
		out.Status.Conditions = make([]Condition, len(p.Status.Conditions))
		copy(out.Status.Conditions, p.Status.Conditions)
	}
}

func (p *Pulsar) DeepCopy() *Pulsar {
	if p == nil {
		return nil
	}
	out := new(Pulsar)
	p.DeepCopyInto(out)
	return out
}

func (p *Pulsar) DeepCopyObject() runtime.Object {
	return p.DeepCopy()
}

func (in *PulsarList) DeepCopyInto(out *PulsarList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Pulsar, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *PulsarList) DeepCopy() *PulsarList {
	if in == nil {
		return nil
	}
	out := new(PulsarList)
	in.DeepCopyInto(out)
	return out
}

func (in *PulsarList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&Pulsar{}, &PulsarList{})
}
