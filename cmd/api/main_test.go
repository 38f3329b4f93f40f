package main

import (
	"testing"

	appconfig "github.com/rnperera/portfolio-backend/internal/config"
	"github.com/rnperera/portfolio-backend/pkg/logging"
)

func TestSetupEmailSenderLogOnlyWithoutKey(t *testing.T) {
	logger := logging.New("error")
	cfg := &appconfig.Config{}

	if sender := setupEmailSender(cfg, logger); sender != nil {
		t.Fatalf("expected nil sender without a SendGrid credential")
	}
}

func TestSetupEmailSenderConfigured(t *testing.T) {
	logger := logging.New("error")
	cfg := &appconfig.Config{
		SendGridAPIKey:   "SG.test-key",
		EnquiryToEmail:   "owner@example.com",
		EnquiryFromEmail: "noreply@example.com",
	}

	if sender := setupEmailSender(cfg, logger); sender == nil {
		t.Fatalf("expected sender with a SendGrid credential")
	}
}
