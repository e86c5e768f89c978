// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/tracing"
)

func newTestClient(endpoint string) *Client {
	return NewClient(endpoint, "target.com", tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestFindUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/john@b.com" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("tenant") != "target.com" {
			t.Errorf("tenant = %s", r.URL.Query().Get("tenant"))
		}
		json.NewEncoder(w).Encode(User{Login: "john@b.com", DisplayName: "John"})
	}))
	defer server.Close()

	user, err := newTestClient(server.URL).FindUser(context.Background(), "john@b.com")
	if err != nil {
		t.Fatal(err)
	}
	if user == nil || user.Login != "john@b.com" || user.DisplayName != "John" {
		t.Errorf("user = %+v", user)
	}
}

func TestFindUserAbsenceIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	user, err := newTestClient(server.URL).FindUser(context.Background(), "ghost@b.com")
	if err != nil {
		t.Fatalf("absence must not be an error, got %v", err)
	}
	if user != nil {
		t.Errorf("user = %+v", user)
	}
}

func TestEnsureUserSurfacesGatewayMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "login not known to tenant target.com"})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).EnsureUser(context.Background(), "ghost@b.com")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "login not known to tenant target.com" {
		t.Errorf("error = %q, want the gateway message verbatim", err.Error())
	}
}

func TestEnsureUserCreated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(User{Login: "new@b.com"})
	}))
	defer server.Close()

	user, err := newTestClient(server.URL).EnsureUser(context.Background(), "new@b.com")
	if err != nil {
		t.Fatal(err)
	}
	if user.Login != "new@b.com" {
		t.Errorf("user = %+v", user)
	}
}

func TestListGroupMembers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/groups/Site%20Owners/members" && r.URL.Path != "/api/v1/groups/Site Owners/members" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]*User{{Login: "a@b.com"}, {Login: "b@b.com"}})
	}))
	defer server.Close()

	users, err := newTestClient(server.URL).ListGroupMembers(context.Background(), "Site Owners")
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Errorf("got %d members", len(users))
	}
}

func TestListGroups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]string{"Site Owners", "Site Members"})
	}))
	defer server.Close()

	groups, err := newTestClient(server.URL).ListGroups(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Errorf("groups = %v", groups)
	}
}

func TestServerErrorWithoutMessageBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ListUsers(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}
