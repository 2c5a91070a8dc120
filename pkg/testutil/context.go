package testutil

import (
	"github.com/arthur-debert/agentkit/pkg/commands"
)

// Context builds an engine context over the environment's source tree.
// Call WithDefaultSource or WithSourceTree first.
func (env *Environment) Context() *commands.Context {
	env.t.Helper()

	ctx, err := commands.NewContext(commands.ContextOptions{
		FS:        env.FS,
		Paths:     env.Paths,
		SourceDir: env.Source,
	})
	if err != nil {
		env.t.Fatalf("Failed to create context: %v", err)
	}
	return ctx
}
