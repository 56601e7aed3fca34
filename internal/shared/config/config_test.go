package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("Port: got %q", cfg.Port)
	}
	if cfg.TesseractLang != "eng" {
		t.Fatalf("TesseractLang: got %q", cfg.TesseractLang)
	}
	if !cfg.VerifyDocuments {
		t.Fatal("VerifyDocuments should default to true")
	}
	if cfg.MatchThreshold != 0.7 {
		t.Fatalf("MatchThreshold: got %v", cfg.MatchThreshold)
	}
}

func TestGetEnvFloatRejectsOutOfRange(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD", "1.5")
	if got := getEnvFloat("MATCH_THRESHOLD", 0.7); got != 0.7 {
		t.Fatalf("expected fallback 0.7, got %v", got)
	}

	t.Setenv("MATCH_THRESHOLD", "0.6")
	if got := getEnvFloat("MATCH_THRESHOLD", 0.7); got != 0.6 {
		t.Fatalf("expected 0.6, got %v", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("VERIFY_DOCUMENTS", "off")
	if getEnvBool("VERIFY_DOCUMENTS", true) {
		t.Fatal("expected off to disable")
	}
	t.Setenv("VERIFY_DOCUMENTS", "garbage")
	if !getEnvBool("VERIFY_DOCUMENTS", true) {
		t.Fatal("expected fallback to default on garbage")
	}
}
