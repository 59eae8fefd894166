package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupAdapter(t *testing.T) {
	t.Setenv("BRIDGE_DEPLOY_TEST_VALUE", "42")

	v, ok := NewLookupAdapter().LookupEnv("BRIDGE_DEPLOY_TEST_VALUE")
	assert.True(t, ok)
	assert.Equal(t, "42", v)

	_, ok = NewLookupAdapter().LookupEnv("BRIDGE_DEPLOY_TEST_MISSING")
	assert.False(t, ok)
}

func TestMapLookup(t *testing.T) {
	env := MapLookup{"TREE_DEPTH": "30", "EMPTY": ""}

	v, ok := env.LookupEnv("TREE_DEPTH")
	assert.True(t, ok)
	assert.Equal(t, "30", v)

	v, ok = env.LookupEnv("EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = env.LookupEnv("PRIVATE_KEY")
	assert.False(t, ok)
}
