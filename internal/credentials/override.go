/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package credentials

import (
	"context"
	"encoding/base64"
	"os"

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/yaml"

	"github.com/CleverCloud/clever-operator/internal/k8sresource"
)

// OverrideSecretName is the fixed name of the per-namespace override Secret.
const OverrideSecretName = "clever-operator"

// overrideSecretKey is the data key holding the base64-encoded configuration document.
const overrideSecretKey = "config"

// NamespaceConfiguration is the document an override Secret's "config" key
// decodes to: just enough configuration to build an alternative client.
type NamespaceConfiguration struct {
	API Credentials `json:"api" yaml:"api"`
}

// LookupOverride looks up the "clever-operator" Secret in namespace. It
// returns (nil, false, nil) if the Secret is absent — callers then fall back
// to the operator-wide default client.
func LookupOverride(ctx context.Context, c client.Client, namespace string) (*NamespaceConfiguration, bool, error) {
	secret := &corev1.Secret{}
	found, err := k8sresource.Get(ctx, c, namespace, OverrideSecretName, secret)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to look up credential override secret")
	}
	if !found {
		return nil, false, nil
	}

	config, err := parseOverrideSecret(secret)
	if err != nil {
		return nil, false, err
	}
	return config, true, nil
}

// parseOverrideSecret decodes secret's "config" key (base64) to a temp file —
// deleted again before this function returns, exactly as the Rust original
// drops its NamedTempFile at the end of the scope — then parses it as a
// NamespaceConfiguration document.
func parseOverrideSecret(secret *corev1.Secret) (*NamespaceConfiguration, error) {
	raw, ok := secret.Data[overrideSecretKey]
	if !ok {
		return nil, errors.Errorf("credential override secret %s/%s has no %q key", secret.Namespace, secret.Name, overrideSecretKey)
	}

	decoded, err := decodeBase64(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to base64-decode %q key of credential override secret %s/%s", overrideSecretKey, secret.Namespace, secret.Name)
	}

	tmp, err := os.CreateTemp("", "clever-operator-override-*.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp file for credential override")
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.Write(decoded); err != nil {
		return nil, errors.Wrap(err, "failed to write temp file for credential override")
	}

	var config NamespaceConfiguration
	if err := yaml.Unmarshal(decoded, &config); err != nil {
		return nil, errors.Wrap(err, "failed to parse credential override configuration")
	}
	return &config, nil
}

// decodeBase64 accepts standard or raw-standard base64, matching the leniency
// of common encoders that omit padding.
func decodeBase64(raw []byte) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(string(raw))
	if err == nil {
		return decoded, nil
	}
	return base64.RawStdEncoding.DecodeString(string(raw))
}
