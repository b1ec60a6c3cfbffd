/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package oauth1

import "testing"

func TestSignatureReproducible(t *testing.T) {
	signer := Signer{
		Nonce:     "fixed-nonce",
		Timestamp: 1700000000,
		Credentials: Credentials{
			Token:          "tok",
			Secret:         "toksecret",
			ConsumerKey:    "consumer",
			ConsumerSecret: "consumersecret",
		},
	}

	first, err := signer.Signature("GET", "https://api.example.com/v2/organisations/orga_x/addons?limit=10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := signer.Signature("GET", "https://api.example.com/v2/organisations/orga_x/addons?limit=10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatalf("signature not reproducible: %q != %q", first, second)
	}
}

func TestQueryParamsDoNotOverrideOAuthParams(t *testing.T) {
	signer := Signer{
		Nonce:     "fixed-nonce",
		Timestamp: 1700000000,
		Credentials: Credentials{
			Token:          "tok",
			Secret:         "toksecret",
			ConsumerKey:    "consumer",
			ConsumerSecret: "consumersecret",
		},
	}

	withQuery, err := signer.Signature("GET", "https://api.example.com/path?oauth_token=attacker-supplied")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withoutQuery, err := signer.Signature("GET", "https://api.example.com/path")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if withQuery != withoutQuery {
		t.Fatalf("a query-string oauth_token must not override the real token")
	}
}

func TestSignFormatsAuthorizationHeader(t *testing.T) {
	signer := Signer{
		Nonce:     "fixed-nonce",
		Timestamp: 1700000000,
		Credentials: Credentials{
			Token:          "tok",
			Secret:         "toksecret",
			ConsumerKey:    "consumer",
			ConsumerSecret: "consumersecret",
		},
	}

	header, err := signer.Sign("POST", "https://api.example.com/v2/organisations/orga_x/addons")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if header[:6] != "OAuth " {
		t.Fatalf("expected header to start with %q, got %q", "OAuth ", header)
	}
}
