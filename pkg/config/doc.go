// Package config loads agentkit's application settings.
//
// Settings are layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/agentkit/config.toml
//  3. AGENTKIT_* environment variables (AGENTKIT_SOURCE_DIR -> source.dir)
//  4. explicit overrides, usually from command-line flags
//
// Settings are not the Config Store: they describe how agentkit behaves, while
// the Config Store (pkg/datastore) records what is installed and disabled.
package config
