/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/CleverCloud/clever-operator/internal/clevercloud"
)

const (
	kvFinalizer  = "api.clever-cloud.com/materia-kv"
	kvProviderID = "materia-kv"
	// kvAlphaPlan is the Materia KV add-on's single offered plan, carried
	// over byte-for-byte from the original implementation.
	kvAlphaPlan = "plan_53a1728d-4b9e-4254-94c4-b19163af587b"
)

// KVInstance is region-only: unlike api/v1's Instance, KV has no resolvable
// plan, so there is nothing to put there.
// +kubebuilder:object:generate=true
type KVInstance struct {
	Region string `json:"region"`
}

// KVSpec defines the desired state of a KV add-on.
// +kubebuilder:object:generate=true
type KVSpec struct {
	Organisation string     `json:"organisation"`
	Instance     KVInstance `json:"instance"`
}

// KVStatus defines the observed state of a KV add-on.
// +kubebuilder:object:generate=true
type KVStatus struct {
	// +optional
	Addon *string `json:"addon,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// KV is the Schema for the kvs API.
type KV struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   KVSpec   `json:"spec,omitempty"`
	Status KVStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// KVList contains a list of KV.
type KVList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []KV `json:"items"`
}

func (k *KV) GetAddonID() *string  { return k.Status.Addon }
func (k *KV) SetAddonID(id string) { k.Status.Addon = &id }
func (k *KV) ClearAddonID()        { k.Status.Addon = nil }
func (k *KV) Organisation() string { return k.Spec.Organisation }
func (k *KV) Finalizer() string    { return kvFinalizer }

// CreateOpts fixes the plan: KV has no PlanResolver implementation, so
// kvAlphaPlan is used verbatim every time.
func (k *KV) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     k.Spec.Instance.Region,
		ProviderID: kvProviderID,
		Plan:       kvAlphaPlan,
	}
}

func (k *KV) DeepCopyInto(out *KV) {
	*out = *k
	out.TypeMeta = k.TypeMeta
	k.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = k.Spec
	if k.Status.Addon != nil {
		addon := *k.Status.Addon
		out.Status.Addon = &addon
	}
}

func (k *KV) DeepCopy() *KV {
	if k == nil {
		return nil
	}
	out := new(KV)
	k.DeepCopyInto(out)
	return out
}

func (k *KV) DeepCopyObject() runtime.Object {
	return k.DeepCopy()
}

func (in *KVList) DeepCopyInto(out *KVList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]KV, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *KVList) DeepCopy() *KVList {
	if in == nil {
		return nil
	}
	out := new(KVList)
	in.DeepCopyInto(out)
	return out
}

func (in *KVList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&KV{}, &KVList{})
}
