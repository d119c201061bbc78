package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bedrock-fem/bedrock/internal/core/domain"
	"github.com/bedrock-fem/bedrock/internal/core/ports/mocks"
	"github.com/bedrock-fem/bedrock/internal/engine/script"
)

func newLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return log
}

func TestRender_BakesConfiguration(t *testing.T) {
	cfg := &domain.Config{
		Kind:            domain.InstallVenv,
		Verbose:         true,
		LogFile:         "install.log",
		HonourStrataDir: true,
	}

	text := script.Render(cfg)
	assert.Contains(t, text, "#!/bin/sh")
	assert.Contains(t, text, "exec bedrock update --verbose --log 'install.log' --honour-strata-dir \"$@\"")
}

func TestRender_BakesInstallKindAndBuildOptions(t *testing.T) {
	cfg := &domain.Config{
		Kind:        domain.InstallDeveloper,
		VenvName:    "research-env",
		MPICompiler: "mpicc",
		NoSSH:       true,
	}

	text := script.Render(cfg)
	assert.Contains(t, text,
		"exec bedrock update --dev --venv 'research-env' --mpicc 'mpicc' --no-ssh \"$@\"")
}

func TestRender_BakesBranchOverridesInStableOrder(t *testing.T) {
	cfg := &domain.Config{
		Kind: domain.InstallVenv,
		BranchOverrides: map[string]string{
			"strata": "release",
			"fiat":   "experimental",
		},
	}

	text := script.Render(cfg)
	assert.Contains(t, text,
		"--package-branch 'fiat=experimental' --package-branch 'strata=release'")
}

func TestRender_MinimalConfiguration(t *testing.T) {
	text := script.Render(&domain.Config{Kind: domain.InstallVenv})
	assert.Contains(t, text, "exec bedrock update \"$@\"")
}

func TestGenerate_WritesExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	venv := filepath.Join(t.TempDir(), "bedrock-env")
	require.NoError(t, os.MkdirAll(filepath.Join(venv, "bin"), 0o755))

	g := script.NewGenerator(newLogger(ctrl))
	cfg := &domain.Config{Kind: domain.InstallVenv, VenvName: venv}

	path, err := g.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(venv, "bin", script.ScriptName), path)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), fi.Mode().Perm())
}

func TestGenerate_SkippedWithoutVenv(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := script.NewGenerator(newLogger(ctrl))
	path, err := g.Generate(&domain.Config{Kind: domain.InstallSystem})
	require.NoError(t, err)
	assert.Empty(t, path)
}
