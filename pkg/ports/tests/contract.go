// Package tests holds contract suites shared by the adapters implementing the ports.
package tests

import (
	"context"
	"testing"

	"github.com/aretw0/detox-cli/pkg/domain"
	"github.com/aretw0/detox-cli/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FailedSpecsFixture gives the contract suite control over the record behind a source.
type FailedSpecsFixture struct {
	Source ports.FailedSpecsSource
	// Write replaces the raw record content.
	Write func(t *testing.T, content string)
	// Remove deletes the record.
	Remove func(t *testing.T)
}

// RunFailedSpecsSourceContract runs a suite of tests to verify that a FailedSpecsSource
// implementation adheres to the defined interface contract.
func RunFailedSpecsSourceContract(t *testing.T, f FailedSpecsFixture) {
	ctx := context.Background()

	t.Run("Read", func(t *testing.T) {
		f.Write(t, "e2e/login.test.js\ne2e/logout.test.js\n")

		specs, err := f.Source.ReadFailedSpecs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"e2e/login.test.js", "e2e/logout.test.js"}, specs)
	})

	t.Run("Read Empty", func(t *testing.T) {
		f.Write(t, "")

		specs, err := f.Source.ReadFailedSpecs(ctx)
		require.NoError(t, err)
		assert.Empty(t, specs)
	})

	t.Run("Read Single Empty Line", func(t *testing.T) {
		f.Write(t, "\n")

		specs, err := f.Source.ReadFailedSpecs(ctx)
		require.NoError(t, err)
		assert.Empty(t, specs)
	})

	t.Run("Read Missing", func(t *testing.T) {
		f.Remove(t)

		_, err := f.Source.ReadFailedSpecs(ctx)
		assert.ErrorIs(t, err, domain.ErrNoFailedSpecs)
	})
}
