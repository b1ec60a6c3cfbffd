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
	redisFinalizer  = "api.clever-cloud.com/redis"
	redisProviderID = "redis-addon"
)

// RedisOptions carries the add-on's version/encryption toggle.
// +kubebuilder:object:generate=true
type RedisOptions struct {
	Version    string `json:"version"`
	Encryption bool   `json:"encryption"`
}

// RedisSpec defines the desired state of a Redis add-on.
// +kubebuilder:object:generate=true
type RedisSpec struct {
	Organisation string       `json:"organisation"`
	Instance     Instance     `json:"instance"`
	Options      RedisOptions `json:"options"`
}

// RedisStatus defines the observed state of a Redis add-on.
// +kubebuilder:object:generate=true
type RedisStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"
// +kubebuilder:printcolumn:name="region",type=string,JSONPath=".spec.instance.region"

// Redis is the Schema for the redis API.
type Redis struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   RedisSpec   `json:"spec,omitempty"`
	Status RedisStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// RedisList contains a list of Redis.
type RedisList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Redis `json:"items"`
}

func (r *Redis) GetAddonID() *string  { return r.Status.GetAddon() }
func (r *Redis) SetAddonID(id string) { r.Status.SetAddon(id) }
func (r *Redis) ClearAddonID()        { r.Status.ClearAddon() }
func (r *Redis) Organisation() string { return r.Spec.Organisation }
func (r *Redis) Finalizer() string    { return redisFinalizer }

func (r *Redis) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     r.Spec.Instance.Region,
		ProviderID: redisProviderID,
		Plan:       r.Spec.Instance.Plan,
		Options: map[string]string{
			"version":    r.Spec.Options.Version,
			"encryption": boolString(r.Spec.Options.Encryption),
		},
	}
}

func (r *Redis) ProviderID() string     { return redisProviderID }
func (r *Redis) PlanValue() string      { return r.Spec.Instance.Plan }
func (r *Redis) SetPlanValue(id string) { r.Spec.Instance.Plan = id }

func (r *Redis) DeepCopyInto(out *Redis) {
	*out = *r
	out.TypeMeta = r.TypeMeta
	r.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = r.Spec
	out.Status = r.Status
	if r.Status.Addon != nil {
		addon := *r.Status.Addon
		out.Status.Addon = &addon
	}
	if r.Status.Conditions != nil {
		out.Status.Conditions = make([]Condition, len(r.Status.Conditions))
		copy(out.Status.Conditions, r.Status.Conditions)
	}
}

func (r *Redis) DeepCopy() *Redis {
	if r == nil {
		return nil
	}
	out := new(Redis)
	r.DeepCopyInto(out)
	return out
}

func (r *Redis) DeepCopyObject() runtime.Object {
	return r.DeepCopy()
}

func (in *RedisList) DeepCopyInto(out *RedisList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]Redis, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *RedisList) DeepCopy() *RedisList {
	if in == nil {
		return nil
	}
	out := new(RedisList)
	in.DeepCopyInto(out)
	return out
}

func (in *RedisList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&Redis{}, &RedisList{})
}
