package commands

import (
	"github.com/arthur-debert/agentkit/pkg/assets"
	"github.com/arthur-debert/agentkit/pkg/datastore"
	"github.com/arthur-debert/agentkit/pkg/filesystem"
	"github.com/arthur-debert/agentkit/pkg/operations"
	"github.com/arthur-debert/agentkit/pkg/paths"
	"github.com/arthur-debert/agentkit/pkg/state"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// Context carries the collaborators of one command invocation. The Config
// Store is threaded through explicitly; nothing keeps it in a global.
type Context struct {
	FS      types.FS
	Paths   *paths.Paths
	Store   datastore.ConfigStore
	Catalog *assets.Catalog
}

// ContextOptions configures NewContext
type ContextOptions struct {
	// FS defaults to the OS filesystem
	FS types.FS
	// Paths is required
	Paths *paths.Paths
	// SourceDir overrides the bundled assets
	SourceDir string
}

// NewContext resolves the source assets and opens the Config Store. A missing
// source is returned as a fatal SOURCE_MISSING error.
func NewContext(opts ContextOptions) (*Context, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	root, err := assets.ResolveSource(fsys, opts.Paths, opts.SourceDir)
	if err != nil {
		return nil, err
	}
	catalog, err := assets.Load(fsys, root)
	if err != nil {
		return nil, err
	}

	return &Context{
		FS:      fsys,
		Paths:   opts.Paths,
		Store:   datastore.New(fsys, opts.Paths.ConfigStorePath()),
		Catalog: catalog,
	}, nil
}

// Syncer returns sync primitives over the context filesystem
func (c *Context) Syncer(dryRun bool) *operations.Syncer {
	return operations.New(c.FS).WithDryRun(dryRun)
}

// Reconciler returns the state reconciler over the context store
func (c *Context) Reconciler() *state.Reconciler {
	return state.NewReconciler(c.FS, c.Paths, c.Store)
}
