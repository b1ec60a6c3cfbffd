/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	kyaml "sigs.k8s.io/yaml"

	clevercloudv1 "github.com/CleverCloud/clever-operator/api/v1"
)

const crdUsage = `Print the CustomResourceDefinition for one kind, or every kind if none is given`

func newCRDCmd() *cobra.Command {
	view := &cobra.Command{
		Use:   "view [kind]",
		Short: "Print a kind's CustomResourceDefinition",
		Long:  crdUsage,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				names := make([]string, 0, len(kinds))
				for _, k := range kinds {
					names = append(names, k.Kind)
				}
				sort.Strings(names)
				for _, name := range names {
					if err := printCRD(name); err != nil {
						return err
					}
				}
				return nil
			}
			return printCRD(args[0])
		},
	}

	cmd := &cobra.Command{
		Use:   "crd",
		Short: "Inspect CustomResourceDefinitions",
	}
	cmd.AddCommand(view)
	return cmd
}

func printCRD(name string) error {
	d, found := findKind(name)
	if !found {
		return fmt.Errorf("unknown kind %q", name)
	}
	group := clevercloudv1.GroupName
	out, err := kyaml.Marshal(crd(d, group))
	if err != nil {
		return err
	}
	fmt.Println("---")
	fmt.Print(string(out))
	return nil
}
