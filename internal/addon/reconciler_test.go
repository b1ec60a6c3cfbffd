/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package addon_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	clevercloudv1 "github.com/CleverCloud/clever-operator/api/v1"
	"github.com/CleverCloud/clever-operator/internal/addon"
	"github.com/CleverCloud/clever-operator/internal/clevercloud"
	"github.com/CleverCloud/clever-operator/internal/credentials"
	"github.com/CleverCloud/clever-operator/internal/events"

	corev1 "k8s.io/api/core/v1"
)

// fakePaaS is a minimal stand-in for the Clever Cloud v2/v4 API, enough to
// drive the reconciler's upsert and delete pipelines end to end.
type fakePaaS struct {
	addons      []clevercloud.Addon
	environment map[string]string
	created     []clevercloud.CreateAddonOpts
	deletedID   string
}

func newFakePaaS() *fakePaaS {
	return &fakePaaS{environment: map[string]string{"POSTGRESQL_ADDON_URI": "postgresql://user:pw@host/db"}}
}

func (f *fakePaaS) server() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/organisations/org_test/addons", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, f.addons)
		case http.MethodPost:
			var opts clevercloud.CreateAddonOpts
			_ = json.NewDecoder(r.Body).Decode(&opts)
			f.created = append(f.created, opts)
			created := clevercloud.Addon{ID: "addon_created", RealID: "real_created", Name: &opts.Name, Region: opts.Region}
			f.addons = append(f.addons, created)
			writeJSON(w, created)
		}
	})
	mux.HandleFunc("/v2/organisations/org_test/addons/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/v2/organisations/org_test/addons/"):]
		switch {
		case r.Method == http.MethodDelete:
			f.deletedID = id
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodGet && len(id) > 4 && id[len(id)-4:] == "/env":
			writeEnv(w, f.environment)
		case r.Method == http.MethodGet:
			for _, a := range f.addons {
				if a.ID == id {
					writeJSON(w, a)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		}
	})
	return httptest.NewServer(mux)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeEnv(w http.ResponseWriter, values map[string]string) {
	vars := make([]clevercloud.EnvironmentVariable, 0, len(values))
	for k, v := range values {
		vars = append(vars, clevercloud.EnvironmentVariable{Name: k, Value: v})
	}
	writeJSON(w, vars)
}

var _ = Describe("Reconciler", func() {
	var (
		scheme     *runtime.Scheme
		fakeClient client.Client
		recorder   *events.Recorder
		paas       *fakePaaS
		server     *httptest.Server
		factory    *credentials.Factory
		reconciler *addon.Reconciler[*clevercloudv1.PostgreSql]
		ctx        context.Context
	)

	BeforeEach(func() {
		scheme = runtime.NewScheme()
		Expect(clevercloudv1.AddToScheme(scheme)).To(Succeed())
		Expect(corev1.AddToScheme(scheme)).To(Succeed())

		fakeClient = fake.NewClientBuilder().
			WithScheme(scheme).
			WithStatusSubresource(&clevercloudv1.PostgreSql{}).
			Build()

		recorder = events.NewRecorder(fakeClient, scheme, "test")

		paas = newFakePaaS()
		server = paas.server()
		DeferCleanup(server.Close)

		factory = credentials.NewFactory(server.URL, clevercloud.Credentials{})

		reconciler = addon.NewReconciler[*clevercloudv1.PostgreSql](
			"postgresql",
			func() *clevercloudv1.PostgreSql { return &clevercloudv1.PostgreSql{} },
			fakeClient,
			scheme,
			recorder,
			factory,
		)

		ctx = context.Background()
	})

	newCR := func(name string) *clevercloudv1.PostgreSql {
		return &clevercloudv1.PostgreSql{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default"},
			Spec: clevercloudv1.PostgreSqlSpec{
				Organisation: "org_test",
				Instance:     clevercloudv1.Instance{Region: "par", Plan: "plan_already-resolved"},
				Options:      clevercloudv1.PostgreSqlOptions{Version: "15", Encryption: true},
			},
		}
	}

	It("adds the finalizer, creates the add-on, and projects the secret", func() {
		cr := newCR("my-db")
		Expect(fakeClient.Create(ctx, cr)).To(Succeed())

		_, err := reconciler.Reconcile(ctx, ctrl.Request{NamespacedName: client.ObjectKeyFromObject(cr)})
		Expect(err).NotTo(HaveOccurred())

		var got clevercloudv1.PostgreSql
		Expect(fakeClient.Get(ctx, client.ObjectKeyFromObject(cr), &got)).To(Succeed())

		Expect(got.Finalizers).To(ContainElement("api.clever-cloud.com/postgresql"))
		Expect(got.Status.Addon).NotTo(BeNil())
		Expect(*got.Status.Addon).To(Equal("addon_created"))
		Expect(paas.created).To(HaveLen(1))
		Expect(paas.created[0].ProviderID).To(Equal("postgresql-addon"))

		var secret corev1.Secret
		Expect(fakeClient.Get(ctx, client.ObjectKey{Namespace: "default", Name: "my-db-secrets"}, &secret)).To(Succeed())
		Expect(secret.OwnerReferences).To(HaveLen(1))
	})

	It("is idempotent across repeated reconciliations", func() {
		cr := newCR("stable-db")
		Expect(fakeClient.Create(ctx, cr)).To(Succeed())

		req := ctrl.Request{NamespacedName: client.ObjectKeyFromObject(cr)}
		_, err := reconciler.Reconcile(ctx, req)
		Expect(err).NotTo(HaveOccurred())
		_, err = reconciler.Reconcile(ctx, req)
		Expect(err).NotTo(HaveOccurred())

		Expect(paas.created).To(HaveLen(1), "a second reconciliation must not create a second add-on")
	})

	It("recovers status.addon by listing and matching deterministic name (S2)", func() {
		cr := newCR("recovered-db")
		Expect(fakeClient.Create(ctx, cr)).To(Succeed())

		name := fmt.Sprintf("kubernetes::PostgreSql::%s", cr.GetUID())
		paas.addons = append(paas.addons, clevercloud.Addon{ID: "addon_lost", RealID: "real_lost", Name: &name})

		_, err := reconciler.Reconcile(ctx, ctrl.Request{NamespacedName: client.ObjectKeyFromObject(cr)})
		Expect(err).NotTo(HaveOccurred())

		var got clevercloudv1.PostgreSql
		Expect(fakeClient.Get(ctx, client.ObjectKeyFromObject(cr), &got)).To(Succeed())
		Expect(*got.Status.Addon).To(Equal("addon_lost"))
		Expect(paas.created).To(BeEmpty(), "a recovered add-on must not be recreated")
	})

	It("deletes the remote add-on and removes the finalizer", func() {
		cr := newCR("doomed-db")
		Expect(fakeClient.Create(ctx, cr)).To(Succeed())

		req := ctrl.Request{NamespacedName: client.ObjectKeyFromObject(cr)}
		_, err := reconciler.Reconcile(ctx, req)
		Expect(err).NotTo(HaveOccurred())

		var live clevercloudv1.PostgreSql
		Expect(fakeClient.Get(ctx, client.ObjectKeyFromObject(cr), &live)).To(Succeed())
		Expect(fakeClient.Delete(ctx, &live)).To(Succeed())

		_, err = reconciler.Reconcile(ctx, req)
		Expect(err).NotTo(HaveOccurred())

		Expect(paas.deletedID).To(Equal("addon_created"))

		var after clevercloudv1.PostgreSql
		getErr := fakeClient.Get(ctx, client.ObjectKeyFromObject(cr), &after)
		Expect(getErr).To(HaveOccurred(), "the fake client should have garbage-collected the object once its last finalizer was removed")
	})
})
