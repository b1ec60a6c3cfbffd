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

// postgreSQLFinalizer and postgreSQLProviderID are preserved from the
// upstream add-on definitions.
const (
	postgreSQLFinalizer  = "api.clever-cloud.com/postgresql"
	postgreSQLProviderID = "postgresql-addon"
)

// PostgreSqlOptions carries the add-on's version/encryption toggle.
// +kubebuilder:object:generate=true
type PostgreSqlOptions struct {
	Version    string `json:"version"`
	Encryption bool   `json:"encryption"`
}

// PostgreSqlSpec defines the desired state of a PostgreSql add-on.
// +kubebuilder:object:generate=true
type PostgreSqlSpec struct {
	Organisation string            `json:"organisation"`
	Instance     Instance          `json:"instance"`
	Options      PostgreSqlOptions `json:"options"`
}

// PostgreSqlStatus defines the observed state of a PostgreSql add-on.
// +kubebuilder:object:generate=true
type PostgreSqlStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=pg
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// PostgreSql is the Schema for the postgresqls API.
type PostgreSql struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   PostgreSqlSpec   `json:"spec,omitempty"`
	Status PostgreSqlStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PostgreSqlList contains a list of PostgreSql.
type PostgreSqlList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PostgreSql `json:"items"`
}

func (p *PostgreSql) GetAddonID() *string  { return p.Status.GetAddon() }
func (p *PostgreSql) SetAddonID(id string) { p.Status.SetAddon(id) }
func (p *PostgreSql) ClearAddonID()        { p.Status.ClearAddon() }
func (p *PostgreSql) Organisation() string { return p.Spec.Organisation }
func (p *PostgreSql) Finalizer() string    { return postgreSQLFinalizer }

func (p *PostgreSql) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     p.Spec.Instance.Region,
		ProviderID: postgreSQLProviderID,
		Plan:       p.Spec.Instance.Plan,
		Options: map[string]string{
			"version":    p.Spec.Options.Version,
			"encryption": boolString(p.Spec.Options.Encryption),
		},
	}
}

func (p *PostgreSql) ProviderID() string     { return postgreSQLProviderID }
func (p *PostgreSql) PlanValue() string      { return p.Spec.Instance.Plan }
func (p *PostgreSql) SetPlanValue(id string) { p.Spec.Instance.Plan = id }

func (p *PostgreSql) DeepCopyInto(out *PostgreSql) {
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

func (p *PostgreSql) DeepCopy() *PostgreSql {
	if p == nil {
		return nil
	}
	out := new(PostgreSql)
	p.DeepCopyInto(out)
	return out
}

func (p *PostgreSql) DeepCopyObject() runtime.Object {
	return p.DeepCopy()
}

func (in *PostgreSqlList) DeepCopyInto(out *PostgreSqlList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]PostgreSql, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *PostgreSqlList) DeepCopy() *PostgreSqlList {
	if in == nil {
		return nil
	}
	out := new(PostgreSqlList)
	in.DeepCopyInto(out)
	return out
}

func (in *PostgreSqlList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func init() {
	SchemeBuilder.Register(&PostgreSql{}, &PostgreSqlList{})
}
