// Package exports models the named values a workspace library publishes to its importers.
// A library builds a Table once at load time; an importer binds the names it needs onto a
// struct and gets a ResolutionError for each one the library does not provide.
package exports

import (
	"github.com/jbmonorepo/monorepo/pkg/workspace/support/util/configbinder"
)

// Table is the immutable set of values exported by one module.
type Table struct {
	module string
	values map[string]interface{}
}

// NewTable creates a Table for module. values is copied.
func NewTable(module string, values map[string]interface{}) *Table {
	copied := make(map[string]interface{}, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Table{module: module, values: copied}
}

// Empty returns a Table for a module that exports nothing.
// Importers use it when the module they depend on was never loaded.
func Empty(module string) *Table {
	return NewTable(module, nil)
}

// Module returns the name of the exporting module.
func (t *Table) Module() string {
	return t.module
}

// Len returns the number of exported names.
func (t *Table) Len() int {
	return len(t.values)
}

// Bind copies the exports named by target's `yaml` tags onto target, which must be a pointer
// to a struct. All missing names are reported together as ResolutionErrors and target is left
// partially populated; callers must not use it when Bind returns an error.
func (t *Table) Bind(target interface{}) error {
	return configbinder.BindExports(t.module, t.values, target)
}
