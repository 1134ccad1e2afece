// Package configbinder binds loosely typed value maps onto typed structs.
package configbinder

import (
	"reflect"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"

	"github.com/jbmonorepo/monorepo/pkg/workspace/support/util/exception"
)

const moduleName = "configbinder"

// BindExports binds the values exported by module onto target.
// target must be a pointer to a struct; each field's `yaml` tag names the export it requires.
// Names are matched exactly. Every tagged field with no matching export produces a
// ResolutionError, and all of them are returned together.
func BindExports(module string, values map[string]interface{}, target interface{}) error {
	if values == nil {
		values = map[string]interface{}{}
	}

	md := &mapstructure.Metadata{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: md,
		Result:   target,
		TagName:  "yaml",
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return exception.NewWorkspaceError(moduleName, "failed to create mapstructure decoder", err)
	}

	if err := decoder.Decode(values); err != nil {
		return exception.NewWorkspaceErrorf(moduleName, "failed to bind exports of '%s' to %s", module, targetName(target), err)
	}

	if len(md.Unset) == 0 {
		return nil
	}

	unset := append([]string(nil), md.Unset...)
	sort.Strings(unset)

	var multiErr *multierror.Error
	for _, name := range unset {
		multiErr = multierror.Append(multiErr, exception.NewResolutionError(module, name, nil))
	}
	return multiErr.ErrorOrNil()
}

func targetName(target interface{}) string {
	t := reflect.TypeOf(target)
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
