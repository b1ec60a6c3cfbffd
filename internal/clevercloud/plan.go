/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package clevercloud

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// resolvedPlanPrefix marks a plan field as already holding an opaque remote
// identifier rather than a human-entered slug/name.
const resolvedPlanPrefix = "plan_"

// IsResolvedPlan reports whether plan already holds an opaque PaaS plan id.
func IsResolvedPlan(plan string) bool {
	return strings.HasPrefix(plan, resolvedPlanPrefix)
}

// Plan is one pricing tier offered by an addon provider.
type Plan struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// AddonProvider groups the plans available for one provider.
type AddonProvider struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Plans []Plan `json:"plans"`
}

func addonProviderPath(provider, org string) string {
	return fmt.Sprintf("/v2/products/addonproviders/%s?orga_id=%s", url.PathEscape(provider), url.QueryEscape(org))
}

// ListPlans lists every plan offered by provider for org.
func ListPlans(ctx context.Context, client *Client, provider, org string) (AddonProvider, error) {
	var addonProvider AddonProvider
	if err := client.Get(ctx, addonProviderPath(provider, org), &addonProvider); err != nil {
		return AddonProvider{}, err
	}
	return addonProvider, nil
}

// FindPlan looks up a plan by slug, id, or name (in that order of likelihood,
// though all three are tried without precedence) and returns the first match.
func FindPlan(ctx context.Context, client *Client, provider, org, pattern string) (*Plan, error) {
	addonProvider, err := ListPlans(ctx, client, provider, org)
	if err != nil {
		return nil, err
	}

	for _, plan := range addonProvider.Plans {
		if plan.Slug == pattern || plan.ID == pattern || plan.Name == pattern {
			found := plan
			return &found, nil
		}
	}
	return nil, nil
}
