/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	kyaml "sigs.k8s.io/yaml"
)

const secretUsage = `Print a template "clever-operator" credential-override Secret.

Applied in a namespace, it replaces the operator-wide default credentials for
every custom resource reconciled in that namespace (4.F). The "config" key
holds the same document format read by -c/--config.`

func newSecretCmd() *cobra.Command {
	generate := &cobra.Command{
		Use:   "generate",
		Short: "Print a template credential-override Secret",
		Long:  secretUsage,
		RunE: func(c *cobra.Command, args []string) error {
			secret := &corev1.Secret{
				TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
				ObjectMeta: metav1.ObjectMeta{
					Name: "clever-operator",
				},
				Type: corev1.SecretTypeOpaque,
				Data: map[string][]byte{
					// The override loader base64-decodes this key itself
					// (4.F), independently of the Secret's own wire
					// encoding, so the value here is the config document
					// base64-encoded a second time.
					"config": []byte(base64.StdEncoding.EncodeToString([]byte(configMapTemplate))),
				},
			}
			out, err := kyaml.Marshal(secret)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Generate credential-override Secret manifests",
	}
	cmd.AddCommand(generate)
	return cmd
}
