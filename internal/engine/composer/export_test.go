package composer

// SetRemoveAll replaces the function used to delete the workspace.
func (c *Composer) SetRemoveAll(fn func(path string) error) {
	c.removeAll = fn
}
