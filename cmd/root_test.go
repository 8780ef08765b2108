package cmd

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skyenought/expressgen/internal/command"
)

func TestRunMapsGeneratorErrors(t *testing.T) {
	dir := projectDir
	projectDir = t.TempDir()
	t.Cleanup(func() { projectDir = dir })

	generate := func(err error) error {
		return run(func(*command.Env, []string) error { return err })(nil, nil)
	}
	assert.NoError(t, generate(nil))
	assert.NoError(t, generate(errors.Wrap(command.ErrCancelled, "overwrite")))

	boom := errors.New("boom")
	assert.Equal(t, boom, generate(boom))

	// no schema in the project: the entity generator prints the failure itself
	err := run(func(env *command.Env, _ []string) error {
		return command.Entity(env, "User", false)
	})(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errReported))
}
