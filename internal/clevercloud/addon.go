/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package clevercloud

import (
	"context"
	"fmt"
	"net/url"
)

// Addon is a remote managed instance (database, broker, ...) provisioned on the PaaS.
type Addon struct {
	ID           string   `json:"id"`
	RealID       string   `json:"realId"`
	Name         *string  `json:"name,omitempty"`
	Region       string   `json:"region"`
	Provider     Provider `json:"provider"`
	Plan         Plan     `json:"plan"`
	CreationDate int64    `json:"creationDate"`
	ConfigKeys   []string `json:"configKeys,omitempty"`
}

// Provider is the PaaS concept grouping add-ons by technology.
type Provider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateAddonOpts is the request body for creating an add-on.
type CreateAddonOpts struct {
	Name       string `json:"name"`
	Region     string `json:"region"`
	ProviderID string `json:"providerId"`
	Plan       string `json:"plan"`
	Options    any    `json:"options,omitempty"`
}

// EnvironmentVariable is one entry of an add-on's remote environment, in the
// order the PaaS API returns it.
type EnvironmentVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func orgAddonsPath(org string) string {
	return fmt.Sprintf("/v2/organisations/%s/addons", url.PathEscape(org))
}

func orgAddonPath(org, id string) string {
	return fmt.Sprintf("/v2/organisations/%s/addons/%s", url.PathEscape(org), url.PathEscape(id))
}

func orgAddonEnvPath(org, id string) string {
	return orgAddonPath(org, id) + "/env"
}

// ListAddons lists every add-on belonging to org.
func ListAddons(ctx context.Context, client *Client, org string) ([]Addon, error) {
	var addons []Addon
	if err := client.Get(ctx, orgAddonsPath(org), &addons); err != nil {
		return nil, err
	}
	return addons, nil
}

// GetAddon fetches a single add-on by id. A 404 is returned as a *StatusError
// (test with NotFound) rather than special-cased here: callers that want the
// "recoverable signal" semantics call NotFound(err) themselves, mirroring the
// per-kind adapter's get()-then-list-by-name fallback.
func GetAddon(ctx context.Context, client *Client, org, id string) (Addon, error) {
	var addon Addon
	if err := client.Get(ctx, orgAddonPath(org, id), &addon); err != nil {
		return Addon{}, err
	}
	return addon, nil
}

// CreateAddon provisions a new add-on under org.
func CreateAddon(ctx context.Context, client *Client, org string, opts CreateAddonOpts) (Addon, error) {
	var addon Addon
	if err := client.Post(ctx, orgAddonsPath(org), opts, &addon); err != nil {
		return Addon{}, err
	}
	return addon, nil
}

// DeleteAddon removes an add-on by id. Deletion is a single, irreversible API call.
func DeleteAddon(ctx context.Context, client *Client, org, id string) error {
	return client.Delete(ctx, orgAddonPath(org, id))
}

// Environment retrieves an add-on's environment variables and flattens them
// into a map: later entries in the PaaS response overwrite earlier ones with
// the same name.
func Environment(ctx context.Context, client *Client, org, id string) (map[string]string, error) {
	var variables []EnvironmentVariable
	if err := client.Get(ctx, orgAddonEnvPath(org, id), &variables); err != nil {
		return nil, err
	}

	flattened := make(map[string]string, len(variables))
	for _, v := range variables {
		flattened[v.Name] = v.Value
	}
	return flattened, nil
}

// configProviderEnvironmentPath builds the v4 environment endpoint, which,
// unlike every other add-on operation, is addressed by realId rather than id.
func configProviderEnvironmentPath(realID string) string {
	return fmt.Sprintf("/v4/addon-providers/config-provider/addons/%s/environment", url.PathEscape(realID))
}

// PutConfigProviderEnvironment replaces a config-provider add-on's full
// environment in one call, addressed by realId.
func PutConfigProviderEnvironment(ctx context.Context, client *Client, realID string, variables []EnvironmentVariable) error {
	return client.Put(ctx, configProviderEnvironmentPath(realID), variables, nil)
}
