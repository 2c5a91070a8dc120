// Package commands holds what every agentkit engine shares: the Context of
// collaborators and the merged rules generation used by both install and
// the enable/disable engine.
//
// Each engine lives in its own subdirectory:
//   - install/    - Install Engine
//   - uninstall/  - Uninstall Engine
//   - toggle/     - Enable/Disable Engine
//   - list/       - installed item listing
//   - status/     - per scope and target status report
//   - genconfig/  - default settings file generation
package commands
