package usecase

import (
	"testing"
	"time"

	"direct-chat-api/entity"
)

func TestCopyForForward(t *testing.T) {
	original := entity.Message{
		BaseEntity:     entity.BaseEntity{ID: "m-original", CreatedAt: time.Now()},
		SenderID:       "u1",
		ReceiverID:     "u2",
		Body:           "look at this",
		AttachmentURL:  "/uploads/a.png",
		AttachmentKind: "image",
		AttachmentName: "a.png",
		Read:           true,
	}

	forwarded := CopyForForward(&original, "u2", "u3")

	if forwarded.ForwardedFrom == nil || *forwarded.ForwardedFrom != "m-original" {
		t.Fatal("forwarded message must point at the original")
	}
	if forwarded.Body != original.Body {
		t.Fatal("body must be copied verbatim")
	}
	if forwarded.AttachmentURL != original.AttachmentURL ||
		forwarded.AttachmentKind != original.AttachmentKind ||
		forwarded.AttachmentName != original.AttachmentName {
		t.Fatal("attachment must be copied verbatim")
	}
	if forwarded.SenderID != "u2" || forwarded.ReceiverID != "u3" {
		t.Fatalf("unexpected parties: %s -> %s", forwarded.SenderID, forwarded.ReceiverID)
	}
	if forwarded.ID != "" {
		t.Fatal("forwarded message must get its own id on insert")
	}
	if forwarded.Read {
		t.Fatal("forwarded message starts unread")
	}
}

func TestToMessageResponseForwardedFrom(t *testing.T) {
	originalID := "m-original"
	message := entity.Message{
		BaseEntity:    entity.BaseEntity{ID: "m2", CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		SenderID:      "u1",
		ReceiverID:    "u2",
		Body:          "hi",
		ForwardedFrom: &originalID,
	}

	response := ToMessageResponse(&message)

	if response.ForwardedFrom != originalID {
		t.Fatalf("expected provenance %q, got %q", originalID, response.ForwardedFrom)
	}
	if response.CreatedAt != "2025-06-01 12:00:00" {
		t.Fatalf("unexpected timestamp format: %q", response.CreatedAt)
	}
}

func TestDefaultUserName(t *testing.T) {
	if got := DefaultUserName("+5511999990123"); got != "User 0123" {
		t.Fatalf("expected last four digits, got %q", got)
	}
	if got := DefaultUserName("123"); got != "User 123" {
		t.Fatalf("short numbers are used whole, got %q", got)
	}
}
