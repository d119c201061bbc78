package domain

// Command is one external invocation: the unit handed to the executor port.
// Env entries are "KEY=VALUE" pairs merged over the process environment.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

// NewCommand builds a Command from an argv-style list.
func NewCommand(argv ...string) Command {
	if len(argv) == 0 {
		return Command{}
	}
	return Command{Name: argv[0], Args: argv[1:]}
}

// InDir returns a copy of the command with the working directory set.
func (c Command) InDir(dir string) Command {
	c.Dir = dir
	return c
}

// WithEnv returns a copy of the command with extra environment entries.
func (c Command) WithEnv(env ...string) Command {
	c.Env = append(append([]string(nil), c.Env...), env...)
	return c
}

// Argv returns the full argument vector, useful for diagnostics.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}
