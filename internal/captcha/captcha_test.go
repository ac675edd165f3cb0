package captcha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGoogleVerifierSuccess(t *testing.T) {
	var gotToken, gotSecret, gotRemoteIP string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		gotSecret = r.FormValue("secret")
		gotToken = r.FormValue("response")
		gotRemoteIP = r.FormValue("remoteip")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	v, err := NewGoogleVerifier("shhh")
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	v.WithEndpoint(srv.URL)

	if err := v.Verify(context.Background(), "tok-1", "203.0.113.7"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if gotSecret != "shhh" || gotToken != "tok-1" || gotRemoteIP != "203.0.113.7" {
		t.Fatalf("unexpected form values: secret=%q token=%q ip=%q", gotSecret, gotToken, gotRemoteIP)
	}
}

func TestGoogleVerifierFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	}))
	defer srv.Close()

	v, err := NewGoogleVerifier("shhh")
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	v.WithEndpoint(srv.URL)

	if err := v.Verify(context.Background(), "bad-token", ""); !errors.Is(err, ErrFailed) {
		t.Fatalf("expected ErrFailed, got %v", err)
	}
}

func TestGoogleVerifierEmptyTokenSkipsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("siteverify should not be called for an empty token")
	}))
	defer srv.Close()

	v, err := NewGoogleVerifier("shhh")
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	v.WithEndpoint(srv.URL)

	if err := v.Verify(context.Background(), "  ", ""); !errors.Is(err, ErrFailed) {
		t.Fatalf("expected ErrFailed, got %v", err)
	}
}

func TestNewGoogleVerifierRequiresSecret(t *testing.T) {
	if _, err := NewGoogleVerifier(" "); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestDisabledAlwaysPasses(t *testing.T) {
	if err := (Disabled{}).Verify(context.Background(), "", ""); err != nil {
		t.Fatalf("disabled verifier should pass, got %v", err)
	}
}
