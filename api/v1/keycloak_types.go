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
	keycloakFinalizer  = "api.clever-cloud.com/keycloak"
	keycloakProviderID = "keycloak-addon"
)

// KeycloakSpec defines the desired state of a Keycloak add-on.
// +kubebuilder:object:generate=true
type KeycloakSpec struct {
	Organisation string   `json:"organisation"`
	Instance     Instance `json:"instance"`
}

// KeycloakStatus defines the observed state of a Keycloak add-on.
// +kubebuilder:object:generate=true
type KeycloakStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// Keycloak is the Schema for the keycloaks API.
type Keycloak struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   KeycloakSpec   `json:"spec,omitempty"`
	Status KeycloakStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// KeycloakList contains a list of Keycloak.
type KeycloakList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Keycloak `json:"items"`
}

func (k *Keycloak) GetAddonID() *string  { return k.Status.GetAddon() }
func (k *Keycloak) SetAddonID(id string) { k.Status.SetAddon(id) }
func (k *Keycloak) ClearAddonID()        { k.Status.ClearAddon() }
func (k *Keycloak) Organisation() string { return k.Spec.Organisation }
func (k *Keycloak) Finalizer() string    { return keycloakFinalizer }

func (k *Keycloak) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     k.Spec.Instance.Region,
		ProviderID: keycloakProviderID,
		Plan:       k.Spec.Instance.Plan,
	}
}

func (k *Keycloak) ProviderID() string     { return keycloakProviderID }
func (k *Keycloak) PlanValue() string      { return k.Spec.Instance.Plan }
func (k *Keycloak) SetPlanValue(id string) { k.Spec.Instance.Plan = id }

func (k *Keycloak) DeepCopyInto(out *Keycloak) {
	*out = *k
	out.TypeMeta = k.TypeMeta
	k.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = k.Spec
	out.Status = k.Status
	if k.Status.Addon != nil {
		addon := *k.Status.Addon
		out.Status.Addon = &addon
	}
	if k.Status.Conditions != nil {
		out.Status.Conditions = make([]Condition, len(k.Status.Conditions))
		copy(out.Status.Conditions, k.Status.Conditions)
	}
}

func (k *Keycloak) DeepCopy() *Keycloak {
	if k == nil {
		return nil
	}
	out := new(Keycloak)
	k.DeepCopyInto(out)
	return out
}

func (k *Keycloak) DeepCopyObject() runtime.Object {
	return k.DeepCopy()
}

func (in *KeycloakList) DeepCopyInto(out *KeycloakList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Keycloak, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *KeycloakList) DeepCopy() *KeycloakList {
	if in == nil {
		return nil
	}
	out := new(KeycloakList)
	in.DeepCopyInto(out)
	return out
}

func (in *KeycloakList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&Keycloak{}, &KeycloakList{})
}
