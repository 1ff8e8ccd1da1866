package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/napmn/project-loader/internal/config"
	"github.com/napmn/project-loader/internal/prompt"
	"github.com/napmn/project-loader/internal/runenv"
	"github.com/napmn/project-loader/internal/selector"
)

func TestResolveModeExactlyOne(t *testing.T) {
	if _, err := resolveMode("", false); err == nil {
		t.Fatalf("expected error with no mode selected")
	}
	if _, err := resolveMode("work", true); err == nil {
		t.Fatalf("expected error with both modes selected")
	}
	mode, err := resolveMode("work", false)
	if err != nil || mode != config.ModeDirect {
		t.Fatalf("resolveMode(project) = %v, %v", mode, err)
	}
	mode, err = resolveMode("", true)
	if err != nil || mode != config.ModeFind {
		t.Fatalf("resolveMode(find) = %v, %v", mode, err)
	}
}

func TestExitCodeMapping(t *testing.T) {
	if got := exitCode(prompt.ErrCancelled); got != exitCancelled {
		t.Fatalf("exitCode(cancelled) = %d, want %d", got, exitCancelled)
	}
	if got := exitCode(context.Canceled); got != exitCancelled {
		t.Fatalf("exitCode(ctx cancelled) = %d, want %d", got, exitCancelled)
	}
	if got := exitCode(selector.ErrNoProjects); got != exitCancelled {
		t.Fatalf("exitCode(no projects) = %d, want %d", got, exitCancelled)
	}
	if got := exitCode(errors.New("boom")); got != exitConfigError {
		t.Fatalf("exitCode(other) = %d, want %d", got, exitConfigError)
	}
}

func TestLoadConfigWritesDefaultAndValidates(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(runenv.ConfigDirEnv, dir)
	cfg, err := loadConfig(dir, "", config.ModeFind)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if len(cfg.Roots) == 0 || cfg.Editor == "" {
		t.Fatalf("loadConfig() = %+v, want populated defaults", cfg)
	}
	if _, err := os.Stat(config.DefaultGlobalPath(dir)); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoadConfigMergesProjectOverlay(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(runenv.ConfigDirEnv, dir)
	projects := filepath.Join(dir, "projects")
	if err := os.MkdirAll(projects, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	overlay := []byte("project_path: " + t.TempDir() + "\neditor: nvim\n")
	if err := os.WriteFile(filepath.Join(projects, "work.yml"), overlay, 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	cfg, err := loadConfig(dir, "work", config.ModeDirect)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Editor != "nvim" || cfg.ProjectPath == "" {
		t.Fatalf("loadConfig() = %+v, want overlay applied", cfg)
	}
}

func TestLoadConfigUnknownProject(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(runenv.ConfigDirEnv, dir)
	if _, err := loadConfig(dir, "missing", config.ModeDirect); err == nil {
		t.Fatalf("expected error for unknown project config")
	}
}
