package config

import (
	"errors"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/padiccalc/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("padiccalc", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prime != "7" || cfg.Prec != 10 || cfg.Op != "exp" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	args := []string{"-p", "5", "-prec", "12", "-op", "sqrt", "-x", "6", "-mode", "series"}
	cfg, err := ParseConfig("padiccalc", args, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prime != "5" || cfg.Prec != 12 || cfg.Op != "sqrt" || cfg.X != "6" || cfg.Mode != "series" {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestParseConfig_EnvOverride(t *testing.T) {
	t.Setenv(EnvPrefix+"P", "13")
	t.Setenv(EnvPrefix+"PREC", "8")

	cfg, err := ParseConfig("padiccalc", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prime != "13" || cfg.Prec != 8 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestParseConfig_FlagBeatsEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"P", "13")

	cfg, err := ParseConfig("padiccalc", []string{"-p", "3"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prime != "3" {
		t.Errorf("flag should beat env, got p = %s", cfg.Prime)
	}
}

func TestValidate_Failures(t *testing.T) {
	base := defaultConfig()

	cases := []struct {
		name  string
		tweak func(*AppConfig)
		field string
	}{
		{"composite prime", func(c *AppConfig) { c.Prime = "9" }, "p"},
		{"prime below two", func(c *AppConfig) { c.Prime = "1" }, "p"},
		{"garbage prime", func(c *AppConfig) { c.Prime = "seven" }, "p"},
		{"zero precision", func(c *AppConfig) { c.Prec = 0 }, "prec"},
		{"unknown mode", func(c *AppConfig) { c.Mode = "roman" }, "mode"},
		{"unknown op", func(c *AppConfig) { c.Op = "cbrt" }, "op"},
		{"bad timeout", func(c *AppConfig) { c.Timeout = -time.Second }, "timeout"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.tweak(&cfg)
			err := Validate(cfg)
			var ve apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate error = %v, want ValidationError", err)
			}
			if ve.Field != tc.field {
				t.Errorf("field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}

func TestValidate_LargePrime(t *testing.T) {
	cfg := defaultConfig()
	cfg.Prime = "170141183460469231731687303715884105727" // 2^127 - 1
	if err := Validate(cfg); err != nil {
		t.Errorf("Mersenne prime rejected: %v", err)
	}
}

func TestSievedPrime(t *testing.T) {
	primes := []uint{2, 3, 5, 7, 101, 65537, 999983}
	composites := []uint{0, 1, 4, 9, 100, 65536, 999981}

	for _, p := range primes {
		if !sievedPrime(p) {
			t.Errorf("sievedPrime(%d) = false, want true", p)
		}
	}
	for _, c := range composites {
		if sievedPrime(c) {
			t.Errorf("sievedPrime(%d) = true, want false", c)
		}
	}
}

func TestParseOperand(t *testing.T) {
	q, err := ParseOperand("12/7")
	if err != nil {
		t.Fatal(err)
	}
	if q.Num().Int64() != 12 || q.Denom().Int64() != 7 {
		t.Errorf("ParseOperand(12/7) = %s", q)
	}

	if _, err := ParseOperand(""); err == nil {
		t.Error("empty operand should fail")
	}
	if _, err := ParseOperand("x+y"); err == nil {
		t.Error("garbage operand should fail")
	}
}
