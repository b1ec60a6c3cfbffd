/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"os"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client"

	clevercloudv1 "github.com/CleverCloud/clever-operator/api/v1"
	clevercloudv1alpha1 "github.com/CleverCloud/clever-operator/api/v1alpha1"
	"github.com/CleverCloud/clever-operator/internal/config"
)

func loadConfig(path string) (*config.Configuration, error) {
	return config.Load(path)
}

// scheme builds the runtime.Scheme covering every kind the operator serves.
func scheme() (*runtime.Scheme, error) {
	s := runtime.NewScheme()
	if err := clevercloudv1.AddToScheme(s); err != nil {
		return nil, err
	}
	if err := clevercloudv1alpha1.AddToScheme(s); err != nil {
		return nil, err
	}
	return s, nil
}

// getClient builds a controller-runtime client from an explicit kubeconfig
// path, KUBECONFIG, or the in-cluster config, in that order.
func getClient(kubeconfigPath string) (client.Client, error) {
	restConfig, err := restConfig(kubeconfigPath)
	if err != nil {
		return nil, err
	}
	s, err := scheme()
	if err != nil {
		return nil, err
	}
	return client.New(restConfig, client.Options{Scheme: s})
}

func restConfig(kubeconfigPath string) (*rest.Config, error) {
	if kubeconfigPath == "" {
		kubeconfigPath = os.Getenv("KUBECONFIG")
	}
	if kubeconfigPath != "" {
		return clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	}
	return rest.InClusterConfig()
}
