package schema

import (
	"errors"
	"testing"
)

func TestValidateSessionID(t *testing.T) {
	valid := []SessionID{"default", "user-1", "a.b_c", "ABC123"}
	for _, id := range valid {
		if err := ValidateSessionID(id); err != nil {
			t.Fatalf("expected %q valid, got %v", id, err)
		}
	}
	invalid := []SessionID{"", " default", "default ", "a b", "a/b", "a:b"}
	for _, id := range invalid {
		if err := ValidateSessionID(id); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected %q invalid, got %v", id, err)
		}
	}
}

func TestNormalizeSourceType(t *testing.T) {
	cases := map[string]SourceType{
		"table":  SourceTable,
		"Table":  SourceTable,
		" image": SourceImage,
		"text":   SourceText,
		"":       SourceText,
		"chart":  SourceType("chart"),
	}
	for in, want := range cases {
		if got := NormalizeSourceType(in); got != want {
			t.Fatalf("NormalizeSourceType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeServiceConfigDefaults(t *testing.T) {
	cfg, err := NormalizeServiceConfig(ServiceConfig{SessionID: "default"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.HistoryMax != DefaultHistoryMax {
		t.Fatalf("expected history max %d, got %d", DefaultHistoryMax, cfg.HistoryMax)
	}
	if _, err := NormalizeServiceConfig(ServiceConfig{}); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected invalid session, got %v", err)
	}
}
