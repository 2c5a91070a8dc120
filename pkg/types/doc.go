// Package types defines the core types shared by agentkit's engines: scopes,
// asset categories, per-item sync results and their tally, installed items,
// and the filesystem interface every engine performs I/O through.
package types
