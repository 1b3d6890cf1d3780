package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	for _, args := range [][]string{{"serve"}, {"migrate"}, {"events", "tail"}} {
		found, _, err := rootCmd.Find(args)
		require.NoError(t, err, args)
		assert.Equal(t, args[len(args)-1], found.Name())
		assert.NotNil(t, found.RunE, args)
	}
}

func TestMigrate_RejectsMemoryStore(t *testing.T) {
	t.Setenv("DATABASE_URL", "memory://")
	t.Setenv("LOG_LEVEL", "error")

	rootCmd.SetArgs([]string{"migrate"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to migrate")
}

func TestEventsTail_RequiresBroker(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("LOG_LEVEL", "error")

	rootCmd.SetArgs([]string{"events", "tail"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RABBITMQ_URL is not set")
}
