// Package app is the entry package of the app_a workspace application.
// Loading it resolves the values it imports from package_a, reports them together with the
// TZ environment variable on the diagnostic output, and exposes App to its own importers.
package app

import (
	"fmt"
	"io"

	"github.com/jbmonorepo/monorepo/pkg/workspace/core/config"
	"github.com/jbmonorepo/monorepo/pkg/workspace/core/exports"
	"github.com/jbmonorepo/monorepo/pkg/workspace/support/util/exception"
	"github.com/jbmonorepo/monorepo/pkg/workspace/support/util/logger"
)

// App is the value this application exports.
const App = "Hi, I'm an app"

const (
	moduleName    = "app_a"
	importedLabel = "Stuff imported from packages into app src"
	tzLabel       = "TZ in app is"
	tzVariable    = "TZ"
)

// Imports lists the values app_a requires from package_a.
type Imports struct {
	SuperCool interface{} `yaml:"superCool"`
}

// Loader performs the load-time work of the application.
type Loader struct {
	out io.Writer
	env config.Environment
}

// NewLoader creates a Loader writing diagnostics to out and reading variables from env.
func NewLoader(out io.Writer, env config.Environment) *Loader {
	return &Loader{out: out, env: env}
}

// Load resolves imports from lib and writes the two diagnostic lines.
// If lib does not export every name in Imports, Load returns the ResolutionError
// before writing anything.
func (l *Loader) Load(lib *exports.Table) error {
	var imports Imports
	if err := lib.Bind(&imports); err != nil {
		return err
	}
	logger.Debugf("Resolved imports of %s from %s.", moduleName, lib.Module())

	if _, err := fmt.Fprintln(l.out, importedLabel, render(imports.SuperCool)); err != nil {
		return exception.NewWorkspaceError(moduleName, "failed to write diagnostic output", err)
	}
	if _, err := fmt.Fprintln(l.out, tzLabel, l.env.Lookup(tzVariable)); err != nil {
		return exception.NewWorkspaceError(moduleName, "failed to write diagnostic output", err)
	}
	return nil
}

// render prints an imported value; a nil value is shown as config.Undefined.
func render(v interface{}) interface{} {
	if v == nil {
		return config.Undefined
	}
	return v
}
