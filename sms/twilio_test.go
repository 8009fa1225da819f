package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTwilioSenderRequestShape(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sender := NewTwilioSender("AC123", "token-abc", "+15550001111")
	sender.BaseURL = server.URL

	err := sender.Send(context.Background(), "+5511999990000", "Your verification code is: 123456")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if gotPath != "/2010-04-01/Accounts/AC123/Messages.json" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotUser != "AC123" || gotPass != "token-abc" {
		t.Fatal("expected account credentials as basic auth")
	}
	if gotTo != "+5511999990000" || gotFrom != "+15550001111" {
		t.Fatalf("unexpected parties: to=%q from=%q", gotTo, gotFrom)
	}
	if gotBody != "Your verification code is: 123456" {
		t.Fatalf("unexpected body %q", gotBody)
	}
}

func TestTwilioSenderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid number"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	sender := NewTwilioSender("AC123", "token-abc", "+15550001111")
	sender.BaseURL = server.URL

	if err := sender.Send(context.Background(), "bad", "body"); err == nil {
		t.Fatal("expected an error on a non-2xx response")
	}
}
