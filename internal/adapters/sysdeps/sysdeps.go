// Package sysdeps implements platform package manager adapters for native
// toolchain provisioning.
package sysdeps

import (
	"os/exec"

	"github.com/bedrock-fem/bedrock/internal/core/ports"
)

// Detection is the result of probing the host. Manager is nil when no
// supported package manager is available; consumers degrade to a warning
// rather than failing the run.
type Detection struct {
	Manager ports.SystemPackageManager
}

// Detect probes the host for a supported package manager, in preference
// order. It returns nil when none is available.
func Detect(executor ports.Executor) ports.SystemPackageManager {
	if _, err := exec.LookPath("apt-get"); err == nil {
		return NewApt(executor)
	}
	if _, err := exec.LookPath("dnf"); err == nil {
		return NewDnf(executor)
	}
	if _, err := exec.LookPath("brew"); err == nil {
		return NewBrew(executor)
	}
	return nil
}

func sudoWrap(argv []string, sudo bool) []string {
	if !sudo {
		return argv
	}
	return append([]string{"sudo"}, argv...)
}
