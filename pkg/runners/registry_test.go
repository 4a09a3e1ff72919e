package runners_test

import (
	"errors"
	"testing"

	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/runners"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	r := runners.DefaultRegistry()

	for runner, want := range map[string]string{
		"mocha":       "mocha",
		"jest":        "jest",
		"jest-circus": "jest",
		"mocha/bin":   "mocha",
	} {
		d, err := r.Lookup(runner)
		require.NoError(t, err, runner)
		assert.Equal(t, want, d.Name, runner)
	}
}

func TestRegistry_Unsupported(t *testing.T) {
	_, err := runners.DefaultRegistry().Lookup("ava")
	require.Error(t, err)

	assert.True(t, errors.Is(err, domain.ErrUnsupportedRunner))
	var rt *domain.RuntimeError
	require.True(t, errors.As(err, &rt))
	assert.Equal(t, `"ava" is not supported in Detox CLI tools.`, rt.Message)
	assert.Contains(t, rt.Hint, "runner's own CLI tool")
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := runners.NewRegistry()
	r.Register("jest", runners.Mocha)
	r.Register("jest", runners.Jest)

	d, err := r.Lookup("jest")
	require.NoError(t, err)
	assert.Equal(t, "jest", d.Name)
}
