package config

import "testing"

func TestParseEnvFillsTaggedFields(t *testing.T) {
	type testConfig struct {
		Addr string `env:"QUANTUMRAND_TEST_ADDR"`
		Bits int    `env:"QUANTUMRAND_TEST_BITS"`
	}

	t.Setenv("QUANTUMRAND_TEST_ADDR", "localhost:9999")
	t.Setenv("QUANTUMRAND_TEST_BITS", "512")

	var cfg testConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}
	if cfg.Addr != "localhost:9999" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "localhost:9999")
	}
	if cfg.Bits != 512 {
		t.Fatalf("Bits = %d, want %d", cfg.Bits, 512)
	}
}

func TestParseEnvKeepsDefaultsWhenUnset(t *testing.T) {
	type testConfig struct {
		Addr string `env:"QUANTUMRAND_TEST_UNSET_ADDR"`
	}

	cfg := testConfig{Addr: "localhost:8080"}
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}
	if cfg.Addr != "localhost:8080" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "localhost:8080")
	}
}

func TestParseEnvRejectsMalformedValue(t *testing.T) {
	type testConfig struct {
		Bits int `env:"QUANTUMRAND_TEST_BAD_BITS"`
	}

	t.Setenv("QUANTUMRAND_TEST_BAD_BITS", "not-a-number")

	var cfg testConfig
	if err := ParseEnv(&cfg); err == nil {
		t.Fatal("ParseEnv() error = nil, want parse failure")
	}
}
