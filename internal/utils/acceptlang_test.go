package utils

import "testing"

func TestDetermineLocale_QueryParamWins(t *testing.T) {
	got := DetermineLocale("en-US", "ja-JP,ja;q=0.9,en;q=0.8", []string{"ja", "en"}, "ja")
	if got != "en" {
		t.Fatalf("want en, got %s", got)
	}
}

func TestDetermineLocale_AcceptLanguageOrder(t *testing.T) {
	got := DetermineLocale("", "ja-JP,ja;q=0.9,en;q=0.8", []string{"ja", "en"}, "en")
	if got != "ja" {
		t.Fatalf("want ja, got %s", got)
	}
}

func TestDetermineLocale_AcceptLanguagePrefersHigherQ(t *testing.T) {
	got := DetermineLocale("", "en;q=0.9,ja;q=0.8", []string{"ja", "en"}, "ja")
	if got != "en" {
		t.Fatalf("want en, got %s", got)
	}
}

func TestDetermineLocale_DefaultFallback(t *testing.T) {
	got := DetermineLocale("", "fr-FR,es;q=0.9", []string{"ja", "en"}, "ja")
	if got != "ja" {
		t.Fatalf("want ja fallback, got %s", got)
	}
}
