// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"testing"
)

func TestProvider_Load(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "tape_size: 64\n")

	p := NewProvider()
	cfg, err := p.Load(context.Background(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Provider.Load returned error: %v", err)
	}
	if cfg.TapeSize != 64 {
		t.Errorf("tape_size = %d, want 64", cfg.TapeSize)
	}
}

func TestProvider_LoadError(t *testing.T) {
	p := NewProvider()
	_, err := p.Load(context.Background(), LoadOptions{ConfigFilePath: "/does/not/exist.cue"})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
