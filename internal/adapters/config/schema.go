package config

// Profile represents the structure of the optional bedrock.yaml profile
// file. Every field is optional; flags always win over profile values.
type Profile struct {
	// Venv names the virtual environment directory.
	Venv string `yaml:"venv"`

	// MPICC names the MPI C compiler wrapper for native builds.
	MPICC string `yaml:"mpicc"`

	// Branches maps package names to branch overrides.
	Branches map[string]string `yaml:"branches"`

	// SystemPackages are provisioned in addition to the platform set.
	SystemPackages []string `yaml:"systemPackages"`
}
