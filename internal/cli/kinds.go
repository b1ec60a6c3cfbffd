/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	clevercloudv1 "github.com/CleverCloud/clever-operator/api/v1"
	clevercloudv1alpha1 "github.com/CleverCloud/clever-operator/api/v1alpha1"
)

// kindDescriptor names one reconciled kind for the CLI: its Kubernetes Kind,
// plural/singular/shortnames, and the API version it is served at (every kind
// is v1 except KV, which stays at v1alpha1).
type kindDescriptor struct {
	Kind     string
	Plural   string
	Singular string
	Short    []string
	Version  string
}

// kinds enumerates every CR kind this operator reconciles, in the order
// they're registered with the controller runner.
var kinds = []kindDescriptor{
	{Kind: "PostgreSql", Plural: "postgresqls", Singular: "postgresql", Short: []string{"pg"}, Version: clevercloudv1.GroupVersion.Version},
	{Kind: "MySql", Plural: "mysqls", Singular: "mysql", Version: clevercloudv1.GroupVersion.Version},
	{Kind: "MongoDb", Plural: "mongodbs", Singular: "mongodb", Version: clevercloudv1.GroupVersion.Version},
	{Kind: "Redis", Plural: "redis", Singular: "redis", Version: clevercloudv1.GroupVersion.Version},
	{Kind: "Pulsar", Plural: "pulsars", Singular: "pulsar", Version: clevercloudv1.GroupVersion.Version},
	{Kind: "ElasticSearch", Plural: "elasticsearches", Singular: "elasticsearch", Version: clevercloudv1.GroupVersion.Version},
	{Kind: "ConfigProvider", Plural: "configproviders", Singular: "configprovider", Version: clevercloudv1.GroupVersion.Version},
	{Kind: "KV", Plural: "kvs", Singular: "kv", Version: clevercloudv1alpha1.GroupVersion.Version},
	{Kind: "Metabase", Plural: "metabases", Singular: "metabase", Version: clevercloudv1.GroupVersion.Version},
	{Kind: "Keycloak", Plural: "keycloaks", Singular: "keycloak", Version: clevercloudv1.GroupVersion.Version},
	{Kind: "Matomo", Plural: "matomos", Singular: "matomo", Version: clevercloudv1.GroupVersion.Version},
	{Kind: "Otoroshi", Plural: "otoroshis", Singular: "otoroshi", Version: clevercloudv1.GroupVersion.Version},
	{Kind: "Azimutt", Plural: "azimutts", Singular: "azimutt", Version: clevercloudv1.GroupVersion.Version},
	{Kind: "Cellar", Plural: "cellars", Singular: "cellar", Version: clevercloudv1.GroupVersion.Version},
}

func findKind(name string) (kindDescriptor, bool) {
	for _, k := range kinds {
		if equalFold(k.Kind, name) || equalFold(k.Singular, name) || equalFold(k.Plural, name) {
			return k, true
		}
	}
	return kindDescriptor{}, false
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// crd builds a minimal CustomResourceDefinition object for d: enough to
// round-trip group/version/kind/names for `crd view`. Its OpenAPI schema is a
// bare object type with x-kubernetes-preserve-unknown-fields, so no field is
// validated (this repository does not run controller-gen).
func crd(d kindDescriptor, group string) *apiextensionsv1.CustomResourceDefinition {
	return &apiextensionsv1.CustomResourceDefinition{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apiextensions.k8s.io/v1",
			Kind:       "CustomResourceDefinition",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: d.Plural + "." + group,
		},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: group,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Kind:       d.Kind,
				Plural:     d.Plural,
				Singular:   d.Singular,
				ShortNames: d.Short,
			},
			Scope: apiextensionsv1.NamespaceScoped,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{
				{
					Name:    d.Version,
					Served:  true,
					Storage: true,
					Schema: &apiextensionsv1.CustomResourceValidation{
						OpenAPIV3Schema: &apiextensionsv1.JSONSchemaProps{
							Type:                   "object",
							XPreserveUnknownFields: ref(true),
						},
					},
					Subresources: &apiextensionsv1.CustomResourceSubresources{
						Status: &apiextensionsv1.CustomResourceSubresourceStatus{},
					},
				},
			},
		},
	}
}

func ref[T any](v T) *T {
	return &v
}
