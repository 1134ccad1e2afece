// Package packagea is the shared library consumed by the workspace applications.
package packagea

import (
	"go.uber.org/fx"

	"github.com/jbmonorepo/monorepo/pkg/workspace/core/exports"
)

// ModuleName is the name importers use to refer to this library.
const ModuleName = "package_a"

// SuperCool is the value this library exports as "superCool".
const SuperCool = "super cool stuff from package_a"

// Exports returns the export table of this library.
func Exports() *exports.Table {
	return exports.NewTable(ModuleName, map[string]interface{}{
		"superCool": SuperCool,
	})
}

// Module publishes the export table under the name "package_a".
var Module = fx.Options(
	fx.Provide(fx.Annotate(
		Exports,
		fx.ResultTags(`name:"package_a"`),
	)),
)
