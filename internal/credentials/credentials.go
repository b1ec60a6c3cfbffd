/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package credentials models the operator's PaaS credential sum type and the
// per-namespace override mechanism (4.F): a Secret named "clever-operator" in
// a CR's namespace may carry an alternative configuration document, used
// instead of the operator-wide default for every reconciliation in that
// namespace.
package credentials

import (
	"fmt"

	"github.com/CleverCloud/clever-operator/internal/oauth1"
)

// Kind discriminates the Credentials sum type. Go has no native sum types;
// this operator follows the explicit discriminant-field approach the source
// spec calls out as the fallback for languages without one.
type Kind string

const (
	KindOAuth1 Kind = "oauth1"
	KindBasic  Kind = "basic"
	KindBearer Kind = "bearer"
)

// Credentials is a tagged union over the three authentication schemes the
// PaaS API accepts. Only the fields matching Kind are meaningful.
type Credentials struct {
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty" mapstructure:"kind"`

	// Endpoint is the PaaS API's base URL (api.endpoint).
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" mapstructure:"endpoint"`

	// OAuth1
	ConsumerKey    string `json:"consumer-key,omitempty" yaml:"consumer-key,omitempty" mapstructure:"consumer-key"`
	ConsumerSecret string `json:"consumer-secret,omitempty" yaml:"consumer-secret,omitempty" mapstructure:"consumer-secret"`
	Token          string `json:"token,omitempty" yaml:"token,omitempty" mapstructure:"token"`
	Secret         string `json:"secret,omitempty" yaml:"secret,omitempty" mapstructure:"secret"`

	// Basic
	Username string `json:"username,omitempty" yaml:"username,omitempty" mapstructure:"username"`
	Password string `json:"password,omitempty" yaml:"password,omitempty" mapstructure:"password"`

	// Bearer
	BearerToken string `json:"bearer-token,omitempty" yaml:"bearer-token,omitempty" mapstructure:"bearer-token"`
}

// EffectiveKind infers the discriminant when Kind was left unset: untagged
// documents (as produced by the layered configuration's flat `api.*` keys)
// are inferred from which fields are populated, OAuth1 first since it is the
// operator's default and most common case.
func (c Credentials) EffectiveKind() Kind {
	if c.Kind != "" {
		return c.Kind
	}
	switch {
	case c.ConsumerKey != "" || c.ConsumerSecret != "" || c.Token != "" || c.Secret != "":
		return KindOAuth1
	case c.Username != "" || c.Password != "":
		return KindBasic
	case c.BearerToken != "":
		return KindBearer
	default:
		return KindOAuth1
	}
}

// OAuth1Credentials converts to the signer's credential type. Only valid when
// EffectiveKind() == KindOAuth1; other credential kinds are not wired to a
// request signer because the Clever Cloud v2/v4 API this operator talks to
// only ever issues OAuth1 tokens — Basic/Bearer are modeled for forward
// compatibility with the sum type the source configuration format allows, but
// have no current call site.
func (c Credentials) OAuth1Credentials() (oauth1.Credentials, error) {
	if c.EffectiveKind() != KindOAuth1 {
		return oauth1.Credentials{}, fmt.Errorf("credentials: kind %q is not oauth1", c.EffectiveKind())
	}
	return oauth1.Credentials{
		Token:          c.Token,
		Secret:         c.Secret,
		ConsumerKey:    c.ConsumerKey,
		ConsumerSecret: c.ConsumerSecret,
	}, nil
}
