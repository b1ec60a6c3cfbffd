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
	otoroshiFinalizer  = "api.clever-cloud.com/otoroshi"
	otoroshiProviderID = "otoroshi-addon"
	// otoroshiURLEnvKey is the projected secret key that gets mirrored into
	// status.url, matching the original implementation's distinguished key.
	otoroshiURLEnvKey = "CC_OTOROSHI_URL"
)

// OtoroshiSpec defines the desired state of an Otoroshi add-on.
// +kubebuilder:object:generate=true
type OtoroshiSpec struct {
	Organisation string   `json:"organisation"`
	Instance     Instance `json:"instance"`
}

// OtoroshiStatus defines the observed state of an Otoroshi add-on. Unlike
// most kinds it additionally surfaces the gateway's public URL.
// +kubebuilder:object:generate=true
type OtoroshiStatus struct {
	AddonStatus `json:",inline"`
	// +optional
	URL *string `json:"url,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="url",type=string,JSONPath=".status.url"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// Otoroshi is the Schema for the otoroshis API.
type Otoroshi struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   OtoroshiSpec   `json:"spec,omitempty"`
	Status OtoroshiStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// OtoroshiList contains a list of Otoroshi.
type OtoroshiList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Otoroshi `json:"items"`
}

func (o *Otoroshi) GetAddonID() *string  { return o.Status.GetAddon() }
func (o *Otoroshi) SetAddonID(id string) { o.Status.SetAddon(id) }
func (o *Otoroshi) ClearAddonID()        { o.Status.ClearAddon() }
func (o *Otoroshi) Organisation() string { return o.Spec.Organisation }
func (o *Otoroshi) Finalizer() string    { return otoroshiFinalizer }

func (o *Otoroshi) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     o.Spec.Instance.Region,
		ProviderID: otoroshiProviderID,
		Plan:       o.Spec.Instance.Plan,
	}
}

func (o *Otoroshi) ProviderID() string     { return otoroshiProviderID }
func (o *Otoroshi) PlanValue() string      { return o.Spec.Instance.Plan }
func (o *Otoroshi) SetPlanValue(id string) { o.Spec.Instance.Plan = id }

func (o *Otoroshi) DistinguishedEnvKey() string { return otoroshiURLEnvKey }
func (o *Otoroshi) CurrentURL() *string         { return o.Status.URL }
func (o *Otoroshi) SetURL(value string) {
	if value == "" {
		o.Status.URL = nil
		return
	}
	o.Status.URL = &value
}

func (o *Otoroshi) DeepCopyInto(out *Otoroshi) {
	*out = *o
	out.TypeMeta = o.TypeMeta
	o.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = o.Spec
	out.Status = o.Status
	if o.Status.Addon != nil {
		addon := *o.Status.Addon
		out.Status.Addon = &addon
	}
	if o.Status.URL != nil {
		url := *o.Status.URL
		out.Status.URL = &url
	}
	if o.Status.Conditions != nil {
		out.Status.Conditions = make([]Condition, len(o.Status.Conditions))
		copy(out.Status.Conditions, o.Status.Conditions)
	}
}

func (o *Otoroshi) DeepCopy() *Otoroshi {
	if o == nil {
		return nil
	}
	out := new(Otoroshi)
	o.DeepCopyInto(out)
	return out
}

func (o *Otoroshi) DeepCopyObject() runtime.Object {
	return o.DeepCopy()
}

func (in *OtoroshiList) DeepCopyInto(out *OtoroshiList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Otoroshi, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *OtoroshiList) DeepCopy() *OtoroshiList {
	if in == nil {
		return nil
	}
	out := new(OtoroshiList)
	in.DeepCopyInto(out)
	return out
}

func (in *OtoroshiList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&Otoroshi{}, &OtoroshiList{})
}
