/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	kyaml "sigs.k8s.io/yaml"
)

const configMapTemplate = `api:
  endpoint: https://api.clever-cloud.com
  consumer-key: ""
  consumer-secret: ""
  token: ""
  secret: ""
operator:
  listen: "0.0.0.0:8080"
`

func newConfigMapCmd() *cobra.Command {
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Print a template operator ConfigMap",
		RunE: func(c *cobra.Command, args []string) error {
			cm := &corev1.ConfigMap{
				TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
				ObjectMeta: metav1.ObjectMeta{
					Name: "clever-operator-config",
				},
				Data: map[string]string{
					"config": configMapTemplate,
				},
			}
			out, err := kyaml.Marshal(cm)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:   "configmap",
		Short: "Generate operator ConfigMap manifests",
	}
	cmd.AddCommand(generate)
	return cmd
}
