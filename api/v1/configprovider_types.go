/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package v1

import (
	"context"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/CleverCloud/clever-operator/internal/clevercloud"
)

const (
	configProviderFinalizer  = "api.clever-cloud.com/config-provider"
	configProviderProviderID = "config-provider"
	// configProviderRegion is the sole datacenter config-provider add-ons are
	// available in.
	configProviderRegion = "par"
	// configProviderPlan is the add-on's one fixed plan; config-provider has
	// no PlanResolver implementation, so this value is used verbatim.
	configProviderPlan = "plan_config-provider"
)

// ConfigProviderSpec defines the desired state of a ConfigProvider add-on:
// unlike every other kind, it has no instance/options shape and instead
// carries the key/value pairs to push into the add-on's environment.
// +kubebuilder:object:generate=true
type ConfigProviderSpec struct {
	Organisation string            `json:"organisation"`
	Variables    map[string]string `json:"variables,omitempty"`
}

// ConfigProviderStatus defines the observed state of a ConfigProvider add-on.
// +kubebuilder:object:generate=true
type ConfigProviderStatus struct {
	AddonStatus `json:",inline"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="organisation",type=string,JSONPath=".spec.organisation"
// +kubebuilder:printcolumn:name="addon",type=string,JSONPath=".status.addon"

// ConfigProvider is the Schema for the configproviders API.
type ConfigProvider struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ConfigProviderSpec   `json:"spec,omitempty"`
	Status ConfigProviderStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ConfigProviderList contains a list of ConfigProvider.
type ConfigProviderList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ConfigProvider `json:"items"`
}

func (c *ConfigProvider) GetAddonID() *string  { return c.Status.GetAddon() }
func (c *ConfigProvider) SetAddonID(id string) { c.Status.SetAddon(id) }
func (c *ConfigProvider) ClearAddonID()        { c.Status.ClearAddon() }
func (c *ConfigProvider) Organisation() string { return c.Spec.Organisation }
func (c *ConfigProvider) Finalizer() string    { return configProviderFinalizer }

// CreateOpts fixes region and plan: config-provider add-ons live only in
// "par", at a single plan, and never go through plan resolution.
func (c *ConfigProvider) CreateOpts(name string) clevercloud.CreateAddonOpts {
	return clevercloud.CreateAddonOpts{
		Name:       name,
		Region:     configProviderRegion,
		ProviderID: configProviderProviderID,
		Plan:       configProviderPlan,
	}
}

// DesiredVariables implements addon.EnvironmentSyncer: the remote
// environment is a write target driven by spec.variables.
func (c *ConfigProvider) DesiredVariables() map[string]string {
	return c.Spec.Variables
}

// SecretValues implements addon.SecretValuer: the projected Secret mirrors
// spec.variables directly rather than the (identical, just-pushed) remote
// environment the reconciler already fetched.
func (c *ConfigProvider) SecretValues(_ context.Context, _ map[string]string) map[string]string {
	return c.Spec.Variables
}

func (c *ConfigProvider) DeepCopyInto(out *ConfigProvider) {
	*out = *c
	out.TypeMeta = c.TypeMeta
	c.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Status = c.Status
	if c.Status.Addon != nil {
		addon := *c.Status.Addon
		out.Status.Addon = &addon
	}
	if c.Status.Conditions != nil {
		out.Status.Conditions = make([]Condition, len(c.Status.Conditions))
		copy(out.Status.Conditions, c.Status.Conditions)
	}
	out.Spec.Organisation = c.Spec.Organisation
	if c.Spec.Variables != nil {
		out.Spec.Variables = make(map[string]string, len(c.Spec.Variables))
		for k, v := range c.Spec.Variables {
			out.Spec.Variables[k] = v
		}
	}
}

func (c *ConfigProvider) DeepCopy() *ConfigProvider {
	if c == nil {
		return nil
	}
	out := new(ConfigProvider)
	c.DeepCopyInto(out)
	return out
}

func (c *ConfigProvider) DeepCopyObject() runtime.Object {
	return c.DeepCopy()
}

func (in *ConfigProviderList) DeepCopyInto(out *ConfigProviderList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		out.Items = make([]ConfigProvider, len(in.Items))
		for i := range in.Items {
			in.Items[i].DeepCopyInto(&out.Items[i])
		}
	}
}

func (in *ConfigProviderList) DeepCopy() *ConfigProviderList {
	if in == nil {
		return nil
	}
	out := new(ConfigProviderList)
	in.DeepCopyInto(out)
	return out
}

func (in *ConfigProviderList) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

func init() {
	SchemeBuilder.Register(&ConfigProvider{}, &ConfigProviderList{})
}
