/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package credentials

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/CleverCloud/clever-operator/internal/clevercloud"
)

// Factory builds a *clevercloud.Client per reconciliation: the operator-wide
// default unless the CR's namespace carries an override Secret, in which case
// an independent client is built from the override's credentials. The
// override client is owned by the caller's stack frame and discarded after
// use — nothing here is cached or shared across reconciliations.
type Factory struct {
	baseURL            string
	defaultCredentials clevercloud.Credentials
}

// NewFactory builds a Factory producing clients against baseURL, defaulting
// to defaultCredentials absent a namespace override.
func NewFactory(baseURL string, defaultCredentials clevercloud.Credentials) *Factory {
	return &Factory{baseURL: baseURL, defaultCredentials: defaultCredentials}
}

// ClientFor returns the PaaS client to use for a reconciliation in namespace:
// the per-namespace override if present, otherwise the operator-wide default.
func (f *Factory) ClientFor(ctx context.Context, c client.Client, namespace string) (*clevercloud.Client, error) {
	override, found, err := LookupOverride(ctx, c, namespace)
	if err != nil {
		return nil, err
	}
	if !found {
		return clevercloud.New(f.baseURL, f.defaultCredentials), nil
	}

	oauthCreds, err := override.API.OAuth1Credentials()
	if err != nil {
		return nil, err
	}
	return clevercloud.New(f.baseURL, oauthCreds), nil
}
