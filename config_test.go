package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	env := func(v string) func(string) string {
		return func(key string) string {
			if key == envDir {
				return v
			}
			return ""
		}
	}

	tests := []struct {
		name   string
		args   []string
		getenv func(string) string
		want   config
	}{
		{"positional", []string{"/icons"}, noEnv, config{Dir: "/icons"}},
		{"flag", []string{"-dir", "/icons"}, noEnv, config{Dir: "/icons"}},
		{"env", nil, env("/from/env"), config{Dir: "/from/env"}},
		{"positional beats env", []string{"/icons"}, env("/from/env"), config{Dir: "/icons"}},
		{"positional beats flag", []string{"-dir", "/flag", "/icons"}, noEnv, config{Dir: "/icons"}},
		{"switches", []string{"-n", "-v", "-no-color", "/icons"}, noEnv, config{Dir: "/icons", DryRun: true, Verbose: true, NoColor: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseConfig(tt.args, tt.getenv, io.Discard)
			if err != nil {
				t.Fatalf("parseConfig(%q) error: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("parseConfig(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := parseConfig(nil, noEnv, io.Discard); errors.Cause(err) != errNoDir {
		t.Errorf("parseConfig(nil) error = %v, want %v", err, errNoDir)
	}
	if _, err := parseConfig([]string{"a", "b"}, noEnv, io.Discard); err == nil {
		t.Error("parseConfig(a, b) error = nil, want error")
	}
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"directory", dir, false},
		{"file", file, true},
		{"missing", filepath.Join(dir, "missing"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDir(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDir(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
