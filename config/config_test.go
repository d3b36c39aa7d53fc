/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty input", func(c *Config) { c.Input = "" }, true},
		{"empty output", func(c *Config) { c.Output = "" }, true},
		{"reference with directory", func(c *Config) { c.Reference = "out/all.json" }, true},
		{"unknown decode", func(c *Config) { c.Decode = "strict" }, true},
		{"unknown color category", func(c *Config) { c.Colors = map[string]string{"KEYWORD9": "red"} }, true},
		{"known color category", func(c *Config) { c.Colors = map[string]string{"literal3": "red"} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	cfg := &Config{Input: "modes", Output: "/abs/out"}
	cfg.Resolve("/project")

	if cfg.Input != filepath.Join("/project", "modes") {
		t.Errorf("expected input joined with root, got %q", cfg.Input)
	}
	if cfg.Output != "/abs/out" {
		t.Errorf("expected absolute output unchanged, got %q", cfg.Output)
	}
}

func TestModeList_YAMLForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"sequence", "modes: [sde, emw]", []string{"sde", "emw"}},
		{"string", "modes: sde, emw , ", []string{"sde", "emw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			if err := yaml.Unmarshal([]byte(tt.input), &cfg); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if len(cfg.Modes) != len(tt.want) {
				t.Fatalf("got %v, want %v", cfg.Modes, tt.want)
			}
			for i := range tt.want {
				if cfg.Modes[i] != tt.want[i] {
					t.Errorf("modes[%d] = %q, want %q", i, cfg.Modes[i], tt.want[i])
				}
			}
		})
	}
}
