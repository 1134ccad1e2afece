package exports_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbmonorepo/monorepo/pkg/workspace/core/exports"
	"github.com/jbmonorepo/monorepo/pkg/workspace/support/util/exception"
)

type wants struct {
	SuperCool interface{} `yaml:"superCool"`
}

func TestTable_Bind(t *testing.T) {
	table := exports.NewTable("package_a", map[string]interface{}{"superCool": 42})

	var got wants
	require.NoError(t, table.Bind(&got))
	assert.Equal(t, 42, got.SuperCool)
	assert.Equal(t, "package_a", table.Module())
	assert.Equal(t, 1, table.Len())
}

func TestTable_IsolatedFromSourceMap(t *testing.T) {
	values := map[string]interface{}{"superCool": "original"}
	table := exports.NewTable("package_a", values)
	values["superCool"] = "mutated"
	delete(values, "superCool")

	var got wants
	require.NoError(t, table.Bind(&got))
	assert.Equal(t, "original", got.SuperCool)
}

func TestEmpty_BindFailsWithResolutionError(t *testing.T) {
	var got wants
	err := exports.Empty("package_a").Bind(&got)

	require.Error(t, err)
	var re *exception.ResolutionError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "package_a", re.Module)
	assert.Equal(t, "superCool", re.Name)
}
