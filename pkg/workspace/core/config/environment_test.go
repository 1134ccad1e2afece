package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jbmonorepo/monorepo/pkg/workspace/core/config"
)

func TestOsEnvironment_LookupSet(t *testing.T) {
	t.Setenv("TZ", "UTC")

	v := config.NewOsEnvironment().Lookup("TZ")

	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, "UTC", got)
	assert.Equal(t, "UTC", v.String())
	assert.Equal(t, "TZ", v.Name())
}

func TestOsEnvironment_LookupMissing(t *testing.T) {
	unsetEnv(t, "TZ")

	v := config.NewOsEnvironment().Lookup("TZ")

	assert.False(t, v.IsSet())
	assert.Equal(t, config.Undefined, v.String())
}

func TestValue_EmptyIsNotUndefined(t *testing.T) {
	v := config.NewValue("TZ", "")

	assert.True(t, v.IsSet())
	assert.Equal(t, "", v.String())
	assert.Equal(t, "undefined", config.Missing("TZ").String())
}

func TestOsEnvironment_Expand(t *testing.T) {
	t.Setenv("WORKSPACE_TEST_NAME", "app_a")
	unsetEnv(t, "WORKSPACE_TEST_ABSENT")

	got := config.NewOsEnvironment().Expand([]byte("name: ${WORKSPACE_TEST_NAME}/$WORKSPACE_TEST_ABSENT"))

	assert.Equal(t, "name: app_a/", string(got))
}
