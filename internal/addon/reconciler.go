/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package addon

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"

	"github.com/CleverCloud/clever-operator/internal/clevercloud"
	"github.com/CleverCloud/clever-operator/internal/credentials"
	"github.com/CleverCloud/clever-operator/internal/events"
	"github.com/CleverCloud/clever-operator/internal/k8sresource"
	"github.com/CleverCloud/clever-operator/internal/metrics"
	"github.com/CleverCloud/clever-operator/internal/secretproj"
)

// Event reasons, reused verbatim as both the Kubernetes Event reason and (in
// lowercase) its name suffix, exactly as the original implementation does.
const (
	actionUpsertFinalizer       = "UpsertFinalizer"
	actionOverridesInstancePlan = "OverridesInstancePlan"
	actionUpsertAddon           = "UpsertAddon"
	actionUpsertSecret          = "UpsertSecret"
	actionUpdateURL             = "UpdateUrl"
	actionDeleteAddon           = "DeleteAddon"
	actionDeleteFinalizer       = "DeleteFinalizer"
)

// addonNamePrefix and addonNameDelimiter make up the deterministic remote
// add-on name protocol: "kubernetes" + "::" + Kind + "::" + uid. Preserved
// byte-for-byte from the original implementation — S2 (crash-after-create
// recovery) depends on it.
const (
	addonNamePrefix    = "kubernetes"
	addonNameDelimiter = "::"
)

// retryInterval is the flat requeue delay on any reconciliation failure.
// Spec.md's concurrency model deliberately chooses a flat delay over
// exponential backoff for simplicity; nothing in this operator's scope
// requires per-key backoff state, so the teacher's exponential internal/backoff
// package has no home here (see DESIGN.md).
const retryInterval = 500 * time.Millisecond

// Reconciler is the generic per-kind reconciler: one instance per CR kind,
// all driven by the same upsert/delete pipeline (4.G), differing only in the
// Object implementation newObject constructs.
type Reconciler[T Object] struct {
	kind        string
	newObject   func() T
	client      client.Client
	scheme      *runtime.Scheme
	recorder    *events.Recorder
	credentials *credentials.Factory
}

// NewReconciler builds a Reconciler for one CR kind. kind is used only for
// metrics labels and log fields; the CR's actual Kubernetes Kind is derived
// from newObject()'s registered GVK.
func NewReconciler[T Object](
	kind string,
	newObject func() T,
	c client.Client,
	scheme *runtime.Scheme,
	recorder *events.Recorder,
	credentialsFactory *credentials.Factory,
) *Reconciler[T] {
	return &Reconciler[T]{
		kind:        kind,
		newObject:   newObject,
		client:      c,
		scheme:      scheme,
		recorder:    recorder,
		credentials: credentialsFactory,
	}
}

// Reconcile implements reconcile.Reconciler.
func (r *Reconciler[T]) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	metrics.Reconciles.WithLabelValues(r.kind).Inc()

	obj := r.newObject()
	found, err := k8sresource.Get(ctx, r.client, req.Namespace, req.Name, obj)
	if err != nil {
		return r.fail(ctx, "load", obj, err)
	}
	if !found {
		return ctrl.Result{}, nil
	}

	paasClient, err := r.credentials.ClientFor(ctx, r.client, obj.GetNamespace())
	if err != nil {
		return r.fail(ctx, "credentials", obj, err)
	}

	if k8sresource.Deleted(obj) {
		if !k8sresource.HasFinalizer(obj, obj.Finalizer()) {
			return ctrl.Result{}, nil
		}
		return r.reconcileDelete(ctx, obj, paasClient)
	}

	return r.reconcileUpsert(ctx, obj, paasClient)
}

func (r *Reconciler[T]) fail(ctx context.Context, step string, obj T, err error) (ctrl.Result, error) {
	metrics.ReconcileErrors.WithLabelValues(r.kind, step).Inc()
	_ = r.recorder.Warning(ctx, obj, step, err.Error())
	return ctrl.Result{RequeueAfter: retryInterval}, nil
}

// deterministicName computes "kubernetes::Kind::uid" for obj.
func (r *Reconciler[T]) deterministicName(obj T) (string, error) {
	gvk, err := apiutil.GVKForObject(obj, r.scheme)
	if err != nil {
		return "", errors.Wrap(err, "failed to determine object kind")
	}
	return fmt.Sprintf("%s%s%s%s%s", addonNamePrefix, addonNameDelimiter, gvk.Kind, addonNameDelimiter, obj.GetUID()), nil
}

// reconcileUpsert runs steps 2-7 of the upsert pipeline described in 4.G.
func (r *Reconciler[T]) reconcileUpsert(ctx context.Context, obj T, paasClient *clevercloud.Client) (ctrl.Result, error) {
	// Step 2: add finalizer (set-union, safe to retry).
	if !k8sresource.HasFinalizer(obj, obj.Finalizer()) {
		before := obj.DeepCopyObject().(T)
		obj.SetFinalizers(k8sresource.AddFinalizer(obj, obj.Finalizer()))
		if err := r.patchAndEvent(ctx, before, obj, actionUpsertFinalizer, "added add-on finalizer"); err != nil {
			return r.fail(ctx, "add-finalizer", obj, err)
		}
	}

	// Step 3: resolve plan, kinds with instance.plan only.
	if resolver, ok := any(obj).(PlanResolver); ok {
		if !clevercloud.IsResolvedPlan(resolver.PlanValue()) {
			plan, err := clevercloud.FindPlan(ctx, paasClient, resolver.ProviderID(), obj.Organisation(), resolver.PlanValue())
			if err != nil {
				return r.fail(ctx, "resolve-plan", obj, err)
			}
			if plan != nil {
				before := obj.DeepCopyObject().(T)
				resolver.SetPlanValue(plan.ID)
				if err := r.patchAndEvent(ctx, before, obj, actionOverridesInstancePlan, "resolved instance plan to "+plan.ID); err != nil {
					return r.fail(ctx, "resolve-plan", obj, err)
				}
				// The patch above triggers the next reconciliation; stop here.
				return ctrl.Result{}, nil
			}
			// No match: proceed with the literal value, as documented.
		}
	}

	// Step 4: upsert the remote add-on.
	remoteAddon, err := r.getOrCreateAddon(ctx, obj, paasClient)
	if err != nil {
		return r.fail(ctx, "upsert-addon", obj, err)
	}
	if obj.GetAddonID() == nil || *obj.GetAddonID() != remoteAddon.ID {
		before := obj.DeepCopyObject().(T)
		obj.SetAddonID(remoteAddon.ID)
		if err := r.patchStatusAndEvent(ctx, before, obj, actionUpsertAddon, "add-on "+remoteAddon.ID+" ready"); err != nil {
			return r.fail(ctx, "upsert-addon", obj, err)
		}
	}

	// Step 5: config-provider environment sync.
	if syncer, ok := any(obj).(EnvironmentSyncer); ok {
		if err := r.syncConfigProviderEnvironment(ctx, syncer, remoteAddon, paasClient); err != nil {
			return r.fail(ctx, "sync-environment", obj, err)
		}
	}

	// Step 6: project the Secret.
	values, err := r.resolveSecretValues(ctx, obj, remoteAddon, paasClient)
	if err != nil {
		return r.fail(ctx, "project-secret", obj, err)
	}
	if err := secretproj.Upsert(ctx, r.client, obj, r.scheme, values); err != nil {
		return r.fail(ctx, "project-secret", obj, err)
	}
	_ = r.recorder.Normal(ctx, obj, actionUpsertSecret, "projected secret "+secretproj.Name(obj.GetName()))

	// Step 7: surface distinguished fields (Otoroshi's URL).
	if surfacer, ok := any(obj).(URLSurfacer); ok {
		key := surfacer.DistinguishedEnvKey()
		if value, present := values[key]; present {
			current := surfacer.CurrentURL()
			if current == nil || *current != value {
				before := obj.DeepCopyObject().(T)
				surfacer.SetURL(value)
				if err := r.patchStatusAndEvent(ctx, before, obj, actionUpdateURL, "surfaced "+key); err != nil {
					return r.fail(ctx, "surface-url", obj, err)
				}
			}
		}
	}

	return ctrl.Result{}, nil
}

// reconcileDelete runs the delete pipeline described in 4.G.
func (r *Reconciler[T]) reconcileDelete(ctx context.Context, obj T, paasClient *clevercloud.Client) (ctrl.Result, error) {
	if id := obj.GetAddonID(); id != nil {
		existing, found, err := r.findAddon(ctx, obj, paasClient)
		if err != nil {
			return r.fail(ctx, "delete-addon", obj, err)
		}
		if found {
			if err := clevercloud.DeleteAddon(ctx, paasClient, obj.Organisation(), existing.ID); err != nil {
				return r.fail(ctx, "delete-addon", obj, err)
			}
		}

		before := obj.DeepCopyObject().(T)
		obj.ClearAddonID()
		if surfacer, ok := any(obj).(URLSurfacer); ok {
			surfacer.SetURL("")
		}
		if err := r.patchStatusAndEvent(ctx, before, obj, actionDeleteAddon, "deleted add-on"); err != nil {
			return r.fail(ctx, "delete-addon", obj, err)
		}
	}

	before := obj.DeepCopyObject().(T)
	obj.SetFinalizers(k8sresource.RemoveFinalizer(obj, obj.Finalizer()))
	if err := r.patchAndEvent(ctx, before, obj, actionDeleteFinalizer, "removed add-on finalizer"); err != nil {
		return r.fail(ctx, "delete-finalizer", obj, err)
	}

	return ctrl.Result{}, nil
}

// getOrCreateAddon implements adapter.get()-then-create: fetch by
// status.addon if set; on 404, fall back to listing the organisation's
// add-ons and matching by deterministic name; otherwise create.
func (r *Reconciler[T]) getOrCreateAddon(ctx context.Context, obj T, paasClient *clevercloud.Client) (clevercloud.Addon, error) {
	existing, found, err := r.findAddon(ctx, obj, paasClient)
	if err != nil {
		return clevercloud.Addon{}, err
	}
	if found {
		return existing, nil
	}

	name, err := r.deterministicName(obj)
	if err != nil {
		return clevercloud.Addon{}, err
	}
	return clevercloud.CreateAddon(ctx, paasClient, obj.Organisation(), obj.CreateOpts(name))
}

// findAddon fetches by status.addon if set, falling back to a list-by-name
// lookup on 404 — the mechanism that recovers a lost status.addon (S2).
func (r *Reconciler[T]) findAddon(ctx context.Context, obj T, paasClient *clevercloud.Client) (clevercloud.Addon, bool, error) {
	name, err := r.deterministicName(obj)
	if err != nil {
		return clevercloud.Addon{}, false, err
	}

	if id := obj.GetAddonID(); id != nil {
		found, err := clevercloud.GetAddon(ctx, paasClient, obj.Organisation(), *id)
		switch {
		case err == nil:
			return found, true, nil
		case clevercloud.NotFound(err):
			// fall through to list-by-name
		default:
			return clevercloud.Addon{}, false, err
		}
	}

	addons, err := clevercloud.ListAddons(ctx, paasClient, obj.Organisation())
	if err != nil {
		return clevercloud.Addon{}, false, err
	}
	for _, a := range addons {
		if a.Name != nil && *a.Name == name {
			return a, true, nil
		}
	}
	return clevercloud.Addon{}, false, nil
}

// syncConfigProviderEnvironment implements step 5: compare the add-on's
// remote environment with the CR's desired variables and PUT the full set on
// any difference. The current environment is read from the v2 /env endpoint
// by add-on id; only the PUT is addressed by realId.
func (r *Reconciler[T]) syncConfigProviderEnvironment(ctx context.Context, syncer EnvironmentSyncer, remoteAddon clevercloud.Addon, paasClient *clevercloud.Client) error {
	current, err := clevercloud.Environment(ctx, paasClient, syncer.Organisation(), remoteAddon.ID)
	if err != nil {
		return err
	}

	desired := syncer.DesiredVariables()
	if environmentsEqual(current, desired) {
		return nil
	}

	variables := make([]clevercloud.EnvironmentVariable, 0, len(desired))
	for name, value := range desired {
		variables = append(variables, clevercloud.EnvironmentVariable{Name: name, Value: value})
	}
	return clevercloud.PutConfigProviderEnvironment(ctx, paasClient, remoteAddon.RealID, variables)
}

func environmentsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// resolveSecretValues determines what the projected Secret should contain:
// an adapter's SecretValues() override (ConfigProvider mirrors spec.variables
// directly) if implemented, otherwise the add-on's remote environment.
func (r *Reconciler[T]) resolveSecretValues(ctx context.Context, obj T, remoteAddon clevercloud.Addon, paasClient *clevercloud.Client) (map[string]string, error) {
	remoteEnv, err := clevercloud.Environment(ctx, paasClient, obj.Organisation(), remoteAddon.ID)
	if err != nil {
		return nil, err
	}

	if valuer, ok := any(obj).(SecretValuer); ok {
		return valuer.SecretValues(ctx, remoteEnv), nil
	}
	return remoteEnv, nil
}

func (r *Reconciler[T]) patchAndEvent(ctx context.Context, before, after T, action, message string) error {
	patch, err := k8sresource.Diff(before, after)
	if err != nil {
		return err
	}
	if err := k8sresource.ApplyPatch(ctx, r.client, after, patch); err != nil {
		return err
	}
	return r.recorder.Normal(ctx, after, action, message)
}

func (r *Reconciler[T]) patchStatusAndEvent(ctx context.Context, before, after T, action, message string) error {
	patch, err := k8sresource.Diff(before, after)
	if err != nil {
		return err
	}
	if err := k8sresource.ApplyPatchStatus(ctx, r.client, after, patch); err != nil {
		return err
	}
	return r.recorder.Normal(ctx, after, action, message)
}
