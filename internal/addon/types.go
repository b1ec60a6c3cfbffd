/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package addon implements the generic reconciler (4.G): a single state
// machine, reused across every add-on kind, driven by a small set of
// interfaces each per-kind adapter (4.H) implements. Optional behavior (plan
// resolution, config-provider environment sync, URL surfacing) is expressed
// as additional interfaces the reconciler type-asserts for, the same pattern
// the teacher's component.Reconciler uses for RequeueConfiguration and
// friends.
package addon

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/CleverCloud/clever-operator/internal/clevercloud"
)

// Object is the minimum every per-kind adapter must implement: identity of
// the remote add-on, the organisation it belongs to, the finalizer name, and
// the conversion to a create request.
type Object interface {
	client.Object

	// GetAddonID returns the current status.addon, or nil if unset.
	GetAddonID() *string
	// SetAddonID records a newly observed or created remote add-on id.
	SetAddonID(id string)
	// ClearAddonID clears status.addon (used by the delete pipeline).
	ClearAddonID()

	// Organisation returns spec.organisation.
	Organisation() string

	// CreateOpts converts the current spec into a create request, using name
	// as the deterministic remote add-on name (computed centrally by the
	// reconciler from the object's GVK and uid, not by the adapter).
	CreateOpts(name string) clevercloud.CreateAddonOpts

	// Finalizer returns this kind's finalizer string,
	// "api.clever-cloud.com/<kind-slug>".
	Finalizer() string
}

// PlanResolver is implemented by kinds whose spec.instance.plan may hold a
// human slug/name/id that must be resolved to an opaque "plan_..." id before
// the add-on can be created. Kinds with a fixed plan (ConfigProvider, KV) do
// not implement this interface, and step 3 of the upsert pipeline is skipped
// for them.
type PlanResolver interface {
	Object

	// ProviderID is the addon-provider identifier plan lookups are scoped to
	// (e.g. "postgresql-addon").
	ProviderID() string
	// PlanValue returns the current spec.instance.plan value.
	PlanValue() string
	// SetPlanValue overwrites spec.instance.plan with a resolved id.
	SetPlanValue(id string)
}

// EnvironmentSyncer is implemented solely by the ConfigProvider kind: its
// remote environment is a write target, pushed from spec.variables, rather
// than a read-only reflection of provisioning.
type EnvironmentSyncer interface {
	Object

	// DesiredVariables returns spec.variables.
	DesiredVariables() map[string]string
}

// SecretValuer lets an adapter override what goes into the projected Secret.
// The default (every kind except ConfigProvider) is the add-on's remote
// environment, fetched by the reconciler itself; ConfigProvider instead
// mirrors spec.variables directly.
type SecretValuer interface {
	Object

	// SecretValues receives the add-on's remote environment (already fetched
	// by the reconciler) and returns what the projected Secret should
	// contain.
	SecretValues(ctx context.Context, remoteEnvironment map[string]string) map[string]string
}

// URLSurfacer is implemented by kinds (Otoroshi) whose projected secret
// carries a distinguished key that should additionally be mirrored into
// status.url.
type URLSurfacer interface {
	Object

	// DistinguishedEnvKey names the secret key to mirror (e.g. "CC_OTOROSHI_URL").
	DistinguishedEnvKey() string
	// CurrentURL returns the current status.url, or nil if unset.
	CurrentURL() *string
	// SetURL overwrites status.url.
	SetURL(value string)
}
