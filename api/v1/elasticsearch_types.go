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
	elasticSearchFinalizer  = "api.clever-cloud.com/elasticsearch"
	elasticSearchProviderID = "es-addon"
)

// ElasticSearchOptions carries the cluster's version.
// +kubebuilder:object:generate=true
type ElasticSearchOptions struct {
	Version string `json:"version"`
}

// ElasticSearchSpec defines the desired state of an ElasticSearch add-on.
// +kubebuilder:object:generate=true
type ElasticSearchSpec struct {
	Organisation string               `json:"organisation"`
	Instance     Instance             `json:"instance"`
	Options      ElasticSearchOptions `json:"options"`
}

// ElasticSearchStatus defines the observed state of an ElasticSearch add-on.
// +kubebuilder:object:generate=true
type ElasticSearchStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// ElasticSearch is the Schema for the elasticsearches API.
type ElasticSearch struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ElasticSearchSpec   `json:"spec,omitempty"`
	Status ElasticSearchStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ElasticSearchList contains a list of ElasticSearch.
type ElasticSearchList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ElasticSearch `json:"items"`
}

func (e *ElasticSearch) GetAddonID() *string  { return e.Status.GetAddon() }
func (e *ElasticSearch) SetAddonID(id string) { e.Status.SetAddon(id) }
func (e *ElasticSearch) ClearAddonID()        { e.Status.ClearAddon() }
func (e *ElasticSearch) Organisation() string { return e.Spec.Organisation }
func (e *ElasticSearch) Finalizer() string    { return elasticSearchFinalizer }

func (e *ElasticSearch) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     e.Spec.Instance.Region,
		ProviderID: elasticSearchProviderID,
		Plan:       e.Spec.Instance.Plan,
		Options: map[string]string{
			"version": e.Spec.Options.Version,
		},
	}
}

func (e *ElasticSearch) ProviderID() string     { return elasticSearchProviderID }
func (e *ElasticSearch) PlanValue() string      { return e.Spec.Instance.Plan }
func (e *ElasticSearch) SetPlanValue(id string) { e.Spec.Instance.Plan = id }

func (e *ElasticSearch) DeepCopyInto(out *ElasticSearch) {
	*out = *e
	out.TypeMeta = e.TypeMeta
	e.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = e.Spec
	out.Status = e.Status
	if e.Status.Addon != nil {
		addon := *e.Status.Addon
		out.Status.Addon = &addon
	}
	if e.Status.Conditions != nil {
		out.Status.Conditions = make([]Condition, len(e.Status.Conditions))
		copy(out.Status.Conditions, e.Status.Conditions)
	}
}

func (e *ElasticSearch) DeepCopy() *ElasticSearch {
	if e == nil {
		return nil
	}
	out := new(ElasticSearch)
	e.DeepCopyInto(out)
	return out
}

func (e *ElasticSearch) DeepCopyObject() runtime.Object {
	return e.DeepCopy()
}

func (in *ElasticSearchList) DeepCopyInto(out *ElasticSearchList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]ElasticSearch, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *ElasticSearchList) DeepCopy() *ElasticSearchList {
	if in == nil {
		return nil
	}
	out := new(ElasticSearchList)
	in.DeepCopyInto(out)
	return out
}

func (in *ElasticSearchList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&ElasticSearch{}, &ElasticSearchList{})
}
