/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package events records one core/v1 Event per reconciliation step, built the
// way the Clever Cloud operator builds them (a fully-populated Event object
// upserted directly, rather than left to client-go's EventBroadcaster), with
// duplicate suppression layered on top so a tight retry loop doesn't flood
// the API server with identical events.
package events

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/CleverCloud/clever-operator/internal/k8sresource"
)

// Level is the Kubernetes event type.
type Level string

const (
	Normal  Level = "Normal"
	Warning Level = "Warning"
)

const reportingComponent = "clever-operator"

// Recorder builds and upserts Events the way the original operator does. It
// remembers the last event recorded per object (by uid) for a window of a few
// minutes and drops a new event whose level, action and message are identical
// to that last one; an identical event that follows a different one is
// recorded again.
type Recorder struct {
	client        client.Client
	scheme        *runtime.Scheme
	moduleVersion string
	host          string

	mutex       sync.Mutex
	seen        map[string]seenEvent
	dedupWindow time.Duration
}

type seenEvent struct {
	digest    string
	timestamp time.Time
}

// NewRecorder builds a Recorder that upserts Events via c, identifying itself
// as reportingInstance "clever-operator/<moduleVersion>".
func NewRecorder(c client.Client, scheme *runtime.Scheme, moduleVersion string) *Recorder {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return &Recorder{
		client:        c,
		scheme:        scheme,
		moduleVersion: moduleVersion,
		host:          host,
		seen:          make(map[string]seenEvent),
		dedupWindow:   5 * time.Minute,
	}
}

// Record builds and upserts an Event of the given level and action (used as
// both the event's name component and its reason) against obj.
func (r *Recorder) Record(ctx context.Context, obj client.Object, level Level, action string, message string) error {
	digest := calculateDigest(string(obj.GetUID()), string(level), action, message)
	if r.isDuplicate(obj.GetUID(), digest) {
		return nil
	}

	event, err := r.newEvent(obj, level, action, message)
	if err != nil {
		return err
	}

	existing := &corev1.Event{}
	return k8sresource.Upsert(ctx, r.client, event, existing, false)
}

// Normal is a convenience wrapper around Record(..., Normal, ...).
func (r *Recorder) Normal(ctx context.Context, obj client.Object, action, message string) error {
	return r.Record(ctx, obj, Normal, action, message)
}

// Warning is a convenience wrapper around Record(..., Warning, ...).
func (r *Recorder) Warning(ctx context.Context, obj client.Object, action, message string) error {
	return r.Record(ctx, obj, Warning, action, message)
}

func (r *Recorder) isDuplicate(uid any, digest string) bool {
	key := fmt.Sprintf("%v", uid)
	now := time.Now()
	expired := now.Add(-r.dedupWindow)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for k, e := range r.seen {
		if e.timestamp.Before(expired) {
			delete(r.seen, k)
		}
	}

	if existing, ok := r.seen[key]; ok && existing.digest == digest {
		return true
	}
	r.seen[key] = seenEvent{digest: digest, timestamp: now}
	return false
}

// newEvent builds a fully-populated Event the way the original implementation
// does: name "<cr-name>-<action-lowercase>-<unix-ts>", reportingComponent and
// source.component fixed to "clever-operator", source.host the process's own
// hostname.
func (r *Recorder) newEvent(obj client.Object, level Level, action string, message string) (*corev1.Event, error) {
	involvedObject, err := k8sresource.ObjectReference(obj, r.scheme)
	if err != nil {
		return nil, err
	}

	now := metav1.Now()
	name := fmt.Sprintf("%s-%s-%d", obj.GetName(), strings.ToLower(action), now.Unix())

	return &corev1.Event{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: obj.GetNamespace(),
		},
		InvolvedObject:      involvedObject,
		Reason:              action,
		Action:              action,
		Message:             message,
		Type:                string(level),
		Count:               1,
		EventTime:           metav1.NewMicroTime(now.Time),
		FirstTimestamp:      now,
		LastTimestamp:       now,
		ReportingController: reportingComponent,
		ReportingInstance:   "clever-operator/" + r.moduleVersion,
		Source: corev1.EventSource{
			Component: reportingComponent,
			Host:      r.host,
		},
	}, nil
}

func calculateDigest(values ...any) string {
	encoded, err := json.Marshal(values)
	if err != nil {
		panic(err)
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:])
}
