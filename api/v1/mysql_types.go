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
	mySQLFinalizer  = "api.clever-cloud.com/mysql"
	mySQLProviderID = "mysql-addon"
)

// MySqlOptions carries the add-on's version/encryption toggle.
// +kubebuilder:object:generate=true
type MySqlOptions struct {
	Version    string `json:"version"`
	Encryption bool   `json:"encryption"`
}

// MySqlSpec defines the desired state of a MySql add-on.
// +kubebuilder:object:generate=true
type MySqlSpec struct {
	Organisation string       `json:"organisation"`
	Instance     Instance     `json:"instance"`
	Options      MySqlOptions `json:"options"`
}

// MySqlStatus defines the observed state of a MySql add-on.
// +kubebuilder:object:generate=true
type MySqlStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// MySql is the Schema for the mysqls API.
type MySql struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   MySqlSpec   `json:"spec,omitempty"`
	Status MySqlStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// MySqlList contains a list of MySql.
type MySqlList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []MySql `json:"items"`
}

func (m *MySql) GetAddonID() *string  { return m.Status.GetAddon() }
func (m *MySql) SetAddonID(id string) { m.Status.SetAddon(id) }
func (m *MySql) ClearAddonID()        { m.Status.ClearAddon() }
func (m *MySql) Organisation() string { return m.Spec.Organisation }
func (m *MySql) Finalizer() string    { return mySQLFinalizer }

func (m *MySql) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     m.Spec.Instance.Region,
		ProviderID: mySQLProviderID,
		Plan:       m.Spec.Instance.Plan,
		Options: map[string]string{
			"version":    m.Spec.Options.Version,
			"encryption": boolString(m.Spec.Options.Encryption),
		},
	}
}

func (m *MySql) ProviderID() string     { return mySQLProviderID }
func (m *MySql) PlanValue() string      { return m.Spec.Instance.Plan }
func (m *MySql) SetPlanValue(id string) { m.Spec.Instance.Plan = id }

func (m *MySql) DeepCopyInto(out *MySql) {
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

func (m *MySql) DeepCopy() *MySql {
	if m == nil {
		return nil
	}
	out := new(MySql)
	m.DeepCopyInto(out)
	return out
}

func (m *MySql) DeepCopyObject() runtime.Object {
	return m.DeepCopy()
}

func (in *MySqlList) DeepCopyInto(out *MySqlList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]MySql, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *MySqlList) DeepCopy() *MySqlList {
	if in == nil {
		return nil
	}
	out := new(MySqlList)
	in.DeepCopyInto(out)
	return out
}

func (in *MySqlList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&MySql{}, &MySqlList{})
}
