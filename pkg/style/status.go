package style

import (
	"fmt"

	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/pterm/pterm"
)

// StatusStyle returns the pterm style for a sync status
func StatusStyle(status types.SyncStatus) *pterm.Style {
	switch status {
	case types.StatusCreated:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case types.StatusUpdated:
		return pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	case types.StatusRemoved:
		return pterm.NewStyle(pterm.FgYellow)
	case types.StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusLabel renders status padded to a fixed width and colored
func StatusLabel(status types.SyncStatus) string {
	return StatusStyle(status).Sprint(fmt.Sprintf("%-8s", status))
}
