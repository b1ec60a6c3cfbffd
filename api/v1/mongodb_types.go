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
	mongoDBFinalizer  = "api.clever-cloud.com/mongodb"
	mongoDBProviderID = "mongodb-addon"
)

// MongoDbOptions carries the add-on's version/encryption toggle.
// +kubebuilder:object:generate=true
type MongoDbOptions struct {
	Version    string `json:"version"`
	Encryption bool   `json:"encryption"`
}

// MongoDbSpec defines the desired state of a MongoDb add-on.
// +kubebuilder:object:generate=true
type MongoDbSpec struct {
	Organisation string         `json:"organisation"`
	Instance     Instance       `json:"instance"`
	Options      MongoDbOptions `json:"options"`
}

// MongoDbStatus defines the observed state of a MongoDb add-on.
// +kubebuilder:object:generate=true
type MongoDbStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// MongoDb is the Schema for the mongodbs API.
type MongoDb struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   MongoDbSpec   `json:"spec,omitempty"`
	Status MongoDbStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// MongoDbList contains a list of MongoDb.
type MongoDbList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []MongoDb `json:"items"`
}

func (m *MongoDb) GetAddonID() *string  { return m.Status.GetAddon() }
func (m *MongoDb) SetAddonID(id string) { m.Status.SetAddon(id) }
func (m *MongoDb) ClearAddonID()        { m.Status.ClearAddon() }
func (m *MongoDb) Organisation() string { return m.Spec.Organisation }
func (m *MongoDb) Finalizer() string    { return mongoDBFinalizer }

func (m *MongoDb) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     m.Spec.Instance.Region,
		ProviderID: mongoDBProviderID,
		Plan:       m.Spec.Instance.Plan,
		Options: map[string]string{
			"version":    m.Spec.Options.Version,
			"encryption": boolString(m.Spec.Options.Encryption),
		},
	}
}

func (m *MongoDb) ProviderID() string     { return mongoDBProviderID }
func (m *MongoDb) PlanValue() string      { return m.Spec.Instance.Plan }
func (m *MongoDb) SetPlanValue(id string) { m.Spec.Instance.Plan = id }

func (m *MongoDb) DeepCopyInto(out *MongoDb) {
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

func (m *MongoDb) DeepCopy() *MongoDb {
	if m == nil {
		return nil
	}
	out := new(MongoDb)
	m.DeepCopyInto(out)
	return out
}

func (m *MongoDb) DeepCopyObject() runtime.Object {
	return m.DeepCopy()
}

func (in *MongoDbList) DeepCopyInto(out *MongoDbList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]MongoDb, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *MongoDbList) DeepCopy() *MongoDbList {
	if in == nil {
		return nil
	}
	out := new(MongoDbList)
	in.DeepCopyInto(out)
	return out
}

func (in *MongoDbList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&MongoDb{}, &MongoDbList{})
}
