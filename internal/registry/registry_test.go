package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/buildgridgo/internal/matrix"
)

func noopRunner() Runner {
	return RunnerFunc(func(context.Context, *matrix.ResolvedJob) error { return nil })
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()
	r.RegisterRunner("print", noopRunner())

	runner, err := r.Runner("print")
	require.NoError(t, err)
	assert.NotNil(t, runner)

	_, err = r.Runner("cargo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown runner 'cargo'")
	assert.Contains(t, err.Error(), "print", "the error should list what is available")
}

func TestRegistry_DuplicateRegistrationPanics(t *testing.T) {
	r := New()
	r.RegisterRunner("print", noopRunner())

	assert.Panics(t, func() {
		r.RegisterRunner("print", noopRunner())
	})
}

func TestRegistry_NamesAreSorted(t *testing.T) {
	r := New()
	r.RegisterRunner("cargo", noopRunner())
	r.RegisterRunner("print", noopRunner())
	r.RegisterRunner("archive", noopRunner())

	assert.Equal(t, []string{"archive", "cargo", "print"}, r.Names())
}
