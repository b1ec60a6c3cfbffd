/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package k8sresource provides small, generic helpers for diffing, patching,
// and upserting Kubernetes objects against the API server, instrumented with
// the kubernetes_client_request_* counters defined below.
package k8sresource

import (
	"context"
	"encoding/json"
	"time"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	ctrlmetrics "sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Patch is a JSON Merge Patch (RFC 7396) document, as produced by Diff and
// consumed by Patch/PatchStatus. The upstream Clever Cloud client models the
// same diff-then-patch protocol with an RFC 6902 JSON Patch; a merge patch is
// the equivalent idiom on top of evanphx/json-patch and controller-runtime's
// own RawPatch, and satisfies the same invariants (Diff(a, a) is empty,
// applying Diff(a, b) to a yields b).
type Patch []byte

var (
	requestSuccess = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kubernetes_client_request_success",
		Help: "Number of successful Kubernetes API requests issued by the operator.",
	}, []string{"action", "namespace"})

	requestFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kubernetes_client_request_failure",
		Help: "Number of failed Kubernetes API requests issued by the operator.",
	}, []string{"action", "namespace"})

	requestDuration = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kubernetes_client_request_duration",
		Help: "Cumulative duration of Kubernetes API requests issued by the operator, in microseconds.",
	}, []string{"action", "namespace", "unit"})
)

func init() {
	ctrlmetrics.Registry.MustRegister(requestSuccess, requestFailure, requestDuration)
}

func observe(action, namespace string, start time.Time, err error) {
	requestDuration.WithLabelValues(action, namespace, "us").Add(float64(time.Since(start).Microseconds()))
	if err != nil {
		requestFailure.WithLabelValues(action, namespace).Inc()
	} else {
		requestSuccess.WithLabelValues(action, namespace).Inc()
	}
}

// Deleted reports whether obj carries a deletion timestamp.
func Deleted(obj client.Object) bool {
	return obj.GetDeletionTimestamp() != nil
}

// Diff returns the JSON Merge Patch that transforms origin into modified.
// Diff(a, a) is always the empty patch.
func Diff(origin, modified client.Object) (Patch, error) {
	originJSON, err := json.Marshal(origin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal origin object")
	}
	modifiedJSON, err := json.Marshal(modified)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal modified object")
	}

	raw, err := jsonpatch.CreateMergePatch(originJSON, modifiedJSON)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute diff")
	}
	return Patch(raw), nil
}

// Empty reports whether patch carries no changes.
func Empty(patch Patch) bool {
	return len(patch) == 0 || string(patch) == "{}"
}

// ApplyPatch applies patch to obj's spec (main resource document) if non-empty.
func ApplyPatch(ctx context.Context, c client.Client, obj client.Object, patch Patch) error {
	if Empty(patch) {
		return nil
	}

	start := time.Now()
	err := c.Patch(ctx, obj, client.RawPatch(types.MergePatchType, patch))
	observe("PATCH", obj.GetNamespace(), start, err)
	return err
}

// ApplyPatchStatus applies patch to obj's status subresource if non-empty.
func ApplyPatchStatus(ctx context.Context, c client.Client, obj client.Object, patch Patch) error {
	if Empty(patch) {
		return nil
	}

	start := time.Now()
	err := c.Status().Patch(ctx, obj, client.RawPatch(types.MergePatchType, patch))
	observe("PATCH", obj.GetNamespace(), start, err)
	return err
}

// Get fetches an object by namespace/name into out, returning (false, nil) on
// a 404 rather than treating it as an error.
func Get(ctx context.Context, c client.Client, namespace, name string, out client.Object) (bool, error) {
	start := time.Now()
	err := c.Get(ctx, client.ObjectKey{Namespace: namespace, Name: name}, out)
	if apierrors.IsNotFound(err) {
		observe("GET", namespace, start, nil)
		return false, nil
	}
	observe("GET", namespace, start, err)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create creates obj.
func Create(ctx context.Context, c client.Client, obj client.Object) error {
	start := time.Now()
	err := c.Create(ctx, obj)
	observe("POST", obj.GetNamespace(), start, err)
	return err
}

// Upsert fetches the object matching want's namespace/name into existing; if
// found, it diffs want against the fetched copy and patches (and, if status is
// true, patches the status subresource too); otherwise it creates want.
// existing must be a freshly-allocated object of want's type; it is filled with
// the object as fetched before any patch, while want receives the server-side
// object returned by the patch or create.
func Upsert(ctx context.Context, c client.Client, want, existing client.Object, status bool) error {
	found, err := Get(ctx, c, want.GetNamespace(), want.GetName(), existing)
	if err != nil {
		return err
	}

	if !found {
		return Create(ctx, c, want)
	}

	want.SetResourceVersion(existing.GetResourceVersion())
	patch, err := Diff(existing, want)
	if err != nil {
		return err
	}
	if err := ApplyPatch(ctx, c, want, patch); err != nil {
		return err
	}
	if status {
		return ApplyPatchStatus(ctx, c, want, patch)
	}
	return nil
}
