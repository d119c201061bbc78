// Package script generates the self-contained update entry point dropped
// into the virtual environment's bin directory.
package script

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// ScriptName is the generated executable's file name.
const ScriptName = "bedrock-update"

// Generator writes the update script with the install-time configuration
// baked into its flags.
type Generator struct {
	logger ports.Logger
}

// NewGenerator creates a generator.
func NewGenerator(logger ports.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate writes <venv>/bin/bedrock-update. Installs without a virtual
// environment have no bin directory to own the script, so nothing is
// generated for them.
func (g *Generator) Generate(cfg *domain.Config) (string, error) {
	venv := cfg.Venv()
	if venv == "" {
		g.logger.Info("no virtual environment, skipping update script generation")
		return "", nil
	}

	path := filepath.Join(venv, "bin", ScriptName)
	if err := os.WriteFile(path, []byte(Render(cfg)), 0o755); err != nil { //nolint:gosec // executable by design
		return "", zerr.With(zerr.Wrap(domain.ErrUpdateScriptFailed, err.Error()), "path", path)
	}
	g.logger.Info(fmt.Sprintf("wrote update script %s", path))
	return path, nil
}

// Render produces the script text. The flags mirror the configuration the
// install ran with, so a bare invocation repeats it faithfully.
func Render(cfg *domain.Config) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("# Generated by bedrock install. Re-invokes the updater with the\n")
	b.WriteString("# configuration this installation was created with.\n")
	b.WriteString("set -e\n\n")

	args := []string{"bedrock", "update"}
	if cfg.Developer() {
		args = append(args, "--dev")
	}
	if cfg.VenvName != "" {
		args = append(args, "--venv", shellQuote(cfg.VenvName))
	}
	if cfg.MPICompiler != "" {
		args = append(args, "--mpicc", shellQuote(cfg.MPICompiler))
	}
	if cfg.NoSSH {
		args = append(args, "--no-ssh")
	}
	for _, pkg := range slices.Sorted(maps.Keys(cfg.BranchOverrides)) {
		args = append(args, "--package-branch", shellQuote(pkg+"="+cfg.BranchOverrides[pkg]))
	}
	if cfg.Verbose {
		args = append(args, "--verbose")
	}
	if cfg.LogFile != "" {
		args = append(args, "--log", shellQuote(cfg.LogFile))
	}
	if cfg.HonourStrataDir {
		args = append(args, "--honour-strata-dir")
	}

	b.WriteString("exec " + strings.Join(args, " ") + " \"$@\"\n")
	return b.String()
}

// shellQuote single-quotes a value for safe interpolation into the script.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
