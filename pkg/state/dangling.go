package state

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/operations"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// DanglingLink is an installed symlink whose source no longer exists
type DanglingLink struct {
	Path     string         `json:"path"`
	Target   string         `json:"target"`
	Category types.Category `json:"category"`
	Name     string         `json:"name"`
	Problem  string         `json:"problem"`
}

// LinkDetector finds dangling links in category directories
type LinkDetector struct {
	fs types.FS
}

// NewLinkDetector creates a new LinkDetector
func NewLinkDetector(fs types.FS) *LinkDetector {
	return &LinkDetector{fs: fs}
}

// DetectDanglingLinks scans the direct children of each category directory.
// Directories that cannot be read are logged and skipped.
func (ld *LinkDetector) DetectDanglingLinks(dirs map[types.Category]string) []DanglingLink {
	logger := logging.GetLogger("state.dangling")
	syncer := operations.New(ld.fs)
	var dangling []DanglingLink

	for _, category := range types.AllCategories {
		dir, ok := dirs[category]
		if !ok {
			continue
		}
		entries, err := syncer.ListItems(dir)
		if err != nil {
			logger.Error().Err(err).Str("dir", dir).Msg("error scanning for dangling links")
			continue
		}

		for _, entry := range entries {
			if !entry.IsSymlink {
				continue
			}
			if problem := ld.check(entry); problem != "" {
				dangling = append(dangling, DanglingLink{
					Path:     entry.Path,
					Target:   entry.Target,
					Category: category,
					Name:     types.CleanName(entry.Name),
					Problem:  problem,
				})
			}
		}
	}

	return dangling
}

func (ld *LinkDetector) check(entry types.Entry) string {
	if entry.Target == "" {
		return "cannot read symlink"
	}
	resolved := entry.Target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(entry.Path), resolved)
	}
	if _, err := ld.fs.Stat(resolved); err != nil {
		if os.IsNotExist(err) {
			return "source missing"
		}
		return "source unreadable"
	}
	return ""
}
