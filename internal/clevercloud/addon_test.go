/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and component-operator-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package clevercloud

import "testing"

func TestIsResolvedPlan(t *testing.T) {
	cases := map[string]bool{
		"xs_sml": false,
		"plan_53a1728d-4b9e-4254-94c4-b19163af587b": true,
		"": false,
	}
	for plan, want := range cases {
		if got := IsResolvedPlan(plan); got != want {
			t.Errorf("IsResolvedPlan(%q) = %v, want %v", plan, got, want)
		}
	}
}

func TestNotFound(t *testing.T) {
	if NotFound(nil) {
		t.Fatal("nil error must not be NotFound")
	}
	if !NotFound(&StatusError{StatusCode: 404}) {
		t.Fatal("a 404 StatusError must be NotFound")
	}
	if NotFound(&StatusError{StatusCode: 500}) {
		t.Fatal("a 500 StatusError must not be NotFound")
	}
}
