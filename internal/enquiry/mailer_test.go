package enquiry

import (
	"strings"
	"testing"
)

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:  "",
		ToEmail: "owner@example.com",
	}, nil)

	if sender != nil {
		t.Error("expected nil sender when API key is empty")
	}
}

func TestNewSendGridSender_DefaultFromName(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "test-key",
		ToEmail:   "owner@example.com",
		FromEmail: "noreply@example.com",
	}, nil)

	if sender == nil {
		t.Fatal("expected non-nil sender")
	}
	if sender.fromName != "Portfolio Enquiries" {
		t.Errorf("expected default from name, got %q", sender.fromName)
	}
}

func TestEmailForSubmission_Content(t *testing.T) {
	e := Enquiry{
		Type:    CategoryOther,
		Other:   "Speaking",
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "+94 77 123 4567",
		Message: "Line one\n  indented line two",
	}

	msg := EmailForSubmission(e)

	if !strings.Contains(msg.Subject, "Other") || !strings.Contains(msg.Subject, "Jane Doe") {
		t.Fatalf("expected subject with category and name, got %q", msg.Subject)
	}
	if msg.ReplyTo != "jane@x.com" || msg.ReplyToName != "Jane Doe" {
		t.Fatalf("expected reply-to set to the submitter, got %q/%q", msg.ReplyTo, msg.ReplyToName)
	}
	for _, want := range []string{"Speaking", "Jane Doe", "jane@x.com", "+94 77 123 4567"} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("expected HTML body to contain %q", want)
		}
		if !strings.Contains(msg.Text, want) {
			t.Errorf("expected text body to contain %q", want)
		}
	}
	if !strings.Contains(msg.Text, "Line one\n  indented line two") {
		t.Fatalf("expected message whitespace preserved in text body")
	}
	if !strings.Contains(msg.HTML, "Line one\n  indented line two") {
		t.Fatalf("expected message whitespace preserved in HTML body")
	}
}

func TestEmailForSubmission_EscapesMarkup(t *testing.T) {
	e := Enquiry{
		Type:    CategoryGrowth,
		Name:    `<script>alert("x")</script>`,
		Email:   "jane@x.com",
		Message: `Tom & Jerry <b>bold</b> "quoted"`,
	}

	msg := EmailForSubmission(e)

	if strings.Contains(msg.HTML, "<script>") || strings.Contains(msg.HTML, "<b>") {
		t.Fatalf("expected markup escaped in HTML body: %q", msg.HTML)
	}
	for _, want := range []string{"&lt;script&gt;", "&amp;", "&lt;b&gt;", "&#34;quoted&#34;"} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("expected escaped sequence %q in HTML body", want)
		}
	}
}

func TestEmailForSubmission_OmitsEmptyOptionalRows(t *testing.T) {
	e := Enquiry{
		Type:    CategoryCreative,
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Message: "Hello",
	}

	msg := EmailForSubmission(e)

	if strings.Contains(msg.HTML, "Phone") || strings.Contains(msg.Text, "Phone") {
		t.Fatalf("expected no phone row for an empty phone")
	}
	if strings.Contains(msg.HTML, "Category detail") {
		t.Fatalf("expected no detail row outside the catch-all category")
	}
}
