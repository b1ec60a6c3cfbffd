/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli builds the clever-operator command line: a default daemon mode
// plus CLI subcommands that help operators inspect and bootstrap the
// resources the daemon expects (crd view, configmap generate, secret
// generate), grounded on the teacher's clm/cmd cobra layout.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CleverCloud/clever-operator/internal/logging"
	"github.com/CleverCloud/clever-operator/internal/version"
)

const rootUsage = `clever-operator reconciles Clever Cloud add-ons from Kubernetes custom resources

Running with no subcommand starts the reconciliation daemon. Other actions:
- clever-operator crd view [kind]        Print a kind's CustomResourceDefinition
- clever-operator configmap generate     Print a template operator ConfigMap
- clever-operator secret generate        Print a template credential-override Secret
`

// globalOptions holds flags shared by every subcommand, including the
// implicit daemon mode run by the root command itself.
type globalOptions struct {
	verbosity  int
	kubeconfig string
	configPath string
	check      bool
}

// Execute builds and runs the root command under ctx; ctx's cancellation
// (SIGINT/SIGTERM, wired by the caller) stops the reconciliation daemon.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	options := &globalOptions{}

	cmd := &cobra.Command{
		Use:          "clever-operator",
		Short:        "Clever Cloud add-on operator",
		Long:         rootUsage,
		SilenceUsage: true,
		Version:      version.GetVersion(),
		RunE: func(c *cobra.Command, args []string) error {
			logging.Setup(options.verbosity)
			if options.check {
				return runCheck(options)
			}
			return runDaemon(c.Context(), options)
		},
	}

	flags := cmd.PersistentFlags()
	flags.CountVarP(&options.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVarP(&options.kubeconfig, "kubeconfig", "k", "", "path to a kubeconfig file; defaults to in-cluster config")
	flags.StringVarP(&options.configPath, "config", "c", "", "path to the operator configuration file")
	flags.BoolVarP(&options.check, "check", "t", false, "validate configuration and exit")

	cmd.AddCommand(newCRDCmd(), newConfigMapCmd(), newSecretCmd())

	return cmd
}

func runCheck(options *globalOptions) error {
	cfg, err := loadConfig(options.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Healthy(); err != nil {
		return fmt.Errorf("clever-operator configuration is unhealthy: %w", err)
	}
	fmt.Println("clever-operator configuration is healthy!")
	return nil
}
