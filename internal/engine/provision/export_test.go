package provision

// SetLookPath replaces the PATH lookup for tests.
func (p *Provisioner) SetLookPath(f func(string) (string, error)) {
	p.lookPath = f
}
