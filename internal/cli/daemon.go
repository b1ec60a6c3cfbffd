/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	ctrl "sigs.k8s.io/controller-runtime"
	ctrlmetrics "sigs.k8s.io/controller-runtime/pkg/metrics"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	clevercloudv1 "github.com/CleverCloud/clever-operator/api/v1"
	clevercloudv1alpha1 "github.com/CleverCloud/clever-operator/api/v1alpha1"
	"github.com/CleverCloud/clever-operator/internal/addon"
	"github.com/CleverCloud/clever-operator/internal/clevercloud"
	"github.com/CleverCloud/clever-operator/internal/config"
	"github.com/CleverCloud/clever-operator/internal/credentials"
	"github.com/CleverCloud/clever-operator/internal/events"
	"github.com/CleverCloud/clever-operator/internal/version"
)

// runDaemon starts the reconciliation daemon: one controller per CR kind
// (component I), all sharing a manager and a credentials.Factory, plus the
// HTTP health/metrics server (component J). It blocks until ctx is
// cancelled (SIGINT/SIGTERM, wired by cobra's ExecuteContext caller) or a
// component fails.
func runDaemon(ctx context.Context, options *globalOptions) error {
	cfg, err := loadConfig(options.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	restConfig, err := restConfig(options.kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to build Kubernetes client config: %w", err)
	}
	s, err := scheme()
	if err != nil {
		return fmt.Errorf("failed to build scheme: %w", err)
	}

	mgr, err := ctrl.NewManager(restConfig, ctrl.Options{
		Scheme: s,
		// The manager's own metrics bind address stays off; this daemon
		// serves /metrics itself (component J) against the same registry.
		Metrics:                metricsserver.Options{BindAddress: "0"},
		HealthProbeBindAddress: "0",
	})
	if err != nil {
		return fmt.Errorf("failed to build manager: %w", err)
	}

	recorder := events.NewRecorder(mgr.GetClient(), s, version.GetVersion())

	defaultCredentials, err := cfg.API.OAuth1Credentials()
	if err != nil {
		return fmt.Errorf("failed to build default PaaS credentials: %w", err)
	}
	credentialsFactory := credentials.NewFactory(cfg.API.Endpoint, clevercloud.Credentials(defaultCredentials))

	if err := registerControllers(mgr, recorder, credentialsFactory); err != nil {
		return fmt.Errorf("failed to register controllers: %w", err)
	}

	serverErr := make(chan error, 1)
	server := newHealthServer(cfg.Operator.Listen)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	mgrErr := make(chan error, 1)
	go func() {
		mgrErr <- mgr.Start(ctx)
	}()

	select {
	case err := <-mgrErr:
		shutdownServer(server)
		return err
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownServer(server)
		return <-mgrErr
	}
}

// registerControllers wires one controller per CR kind onto mgr, each
// driving internal/addon.Reconciler with that kind's type.
func registerControllers(mgr ctrl.Manager, recorder *events.Recorder, credentialsFactory *credentials.Factory) error {
	if err := registerKind(mgr, "postgresql", func() *clevercloudv1.PostgreSql { return &clevercloudv1.PostgreSql{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "mysql", func() *clevercloudv1.MySql { return &clevercloudv1.MySql{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "mongodb", func() *clevercloudv1.MongoDb { return &clevercloudv1.MongoDb{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "redis", func() *clevercloudv1.Redis { return &clevercloudv1.Redis{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "pulsar", func() *clevercloudv1.Pulsar { return &clevercloudv1.Pulsar{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "elasticsearch", func() *clevercloudv1.ElasticSearch { return &clevercloudv1.ElasticSearch{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "configprovider", func() *clevercloudv1.ConfigProvider { return &clevercloudv1.ConfigProvider{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "kv", func() *clevercloudv1alpha1.KV { return &clevercloudv1alpha1.KV{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "metabase", func() *clevercloudv1.Metabase { return &clevercloudv1.Metabase{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "keycloak", func() *clevercloudv1.Keycloak { return &clevercloudv1.Keycloak{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "matomo", func() *clevercloudv1.Matomo { return &clevercloudv1.Matomo{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "otoroshi", func() *clevercloudv1.Otoroshi { return &clevercloudv1.Otoroshi{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "azimutt", func() *clevercloudv1.Azimutt { return &clevercloudv1.Azimutt{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	if err := registerKind(mgr, "cellar", func() *clevercloudv1.Cellar { return &clevercloudv1.Cellar{} }, recorder, credentialsFactory); err != nil {
		return err
	}
	return nil
}

func registerKind[T addon.Object](mgr ctrl.Manager, kind string, newObject func() T, recorder *events.Recorder, credentialsFactory *credentials.Factory) error {
	reconciler := addon.NewReconciler[T](kind, newObject, mgr.GetClient(), mgr.GetScheme(), recorder, credentialsFactory)
	return ctrl.NewControllerManagedBy(mgr).
		For(newObject()).
		Named(kind).
		Complete(reconciler)
}

// newHealthServer builds the HTTP server backing component J: liveness,
// readiness and status probes all answer 200 with no body, /metrics exposes
// the controller-runtime registry this operator's own counters share.
func newHealthServer(addr string) *http.Server {
	mux := http.NewServeMux()
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }
	mux.HandleFunc("/healthz", ok)
	mux.HandleFunc("/livez", ok)
	mux.HandleFunc("/readyz", ok)
	mux.HandleFunc("/status", ok)
	mux.Handle("/metrics", promhttp.HandlerFor(ctrlmetrics.Registry, promhttp.HandlerOpts{}))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func shutdownServer(server *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}
