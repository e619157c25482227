package domain

// RoleCatalog maps role names to their backing storage identifiers and back.
// It is built once at startup and never mutated afterwards, so concurrent
// reads need no synchronization.
type RoleCatalog struct {
	ids   map[string]string // name -> storage id
	names map[string]string // storage id -> name
}

// NewRoleCatalog builds a catalog from a name -> id mapping.
func NewRoleCatalog(ids map[string]string) *RoleCatalog {
	names := make(map[string]string, len(ids))
	for name, id := range ids {
		names[id] = name
	}
	return &RoleCatalog{ids: ids, names: names}
}

// ID returns the storage identifier for a role name.
func (c *RoleCatalog) ID(name string) (string, bool) {
	id, ok := c.ids[name]
	return id, ok
}

// Name returns the role name for a storage identifier.
func (c *RoleCatalog) Name(id string) (string, bool) {
	name, ok := c.names[id]
	return name, ok
}
