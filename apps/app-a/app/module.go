package app

import (
	"io"

	"go.uber.org/fx"

	"github.com/jbmonorepo/monorepo/pkg/packagea"
	"github.com/jbmonorepo/monorepo/pkg/workspace/core/config"
	"github.com/jbmonorepo/monorepo/pkg/workspace/core/exports"
	"github.com/jbmonorepo/monorepo/pkg/workspace/support/util/logger"
)

// LoaderParams defines the dependencies of NewLoaderProvider.
type LoaderParams struct {
	fx.In
	Out io.Writer `name:"diagnosticOutput"`
	Env config.Environment
}

// NewLoaderProvider provides the Loader to Fx.
func NewLoaderProvider(p LoaderParams) *Loader {
	return NewLoader(p.Out, p.Env)
}

// LoadParams defines the dependencies of RunLoad.
// PackageA is optional so that a missing library surfaces as a ResolutionError rather than
// as a container wiring error.
type LoadParams struct {
	fx.In
	Loader   *Loader
	PackageA *exports.Table `name:"package_a" optional:"true"`
}

// RunLoad executes the application load during Fx construction.
func RunLoad(p LoadParams) error {
	lib := p.PackageA
	if lib == nil {
		logger.Warnf("Module '%s' is not loaded; %s has nothing to import.", packagea.ModuleName, moduleName)
		lib = exports.Empty(packagea.ModuleName)
	}
	if err := p.Loader.Load(lib); err != nil {
		logger.Errorf("Failed to load %s: %v", moduleName, err)
		return err
	}
	logger.Debugf("%s loaded.", moduleName)
	return nil
}

// Module wires the application loader. It expects package_a's Module, config.Module and a
// diagnosticOutput writer to be present in the same container.
var Module = fx.Options(
	fx.Provide(NewLoaderProvider),
	fx.Invoke(RunLoad),
)
