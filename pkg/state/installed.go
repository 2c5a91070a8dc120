package state

import (
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/agentkit/pkg/types"
)

// Installed lists the items in the native category directory of scope.
// Entries carrying the marker and entries the Config Store disables are both
// reported as disabled. known marks names that belong to the source catalog.
// An item present in both forms is reported once, as disabled.
func (r *Reconciler) Installed(scope types.Scope, category types.Category, known map[string]bool) ([]types.InstalledItem, error) {
	entries, err := r.syncer.ListItems(r.paths.CategoryDir(scope, category))
	if err != nil {
		return nil, err
	}

	doc := r.store.Load()
	byName := map[string]types.InstalledItem{}

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name, ".") || !belongs(category, entry) {
			continue
		}

		name := types.CleanName(entry.Name)
		marked := types.IsDisabledName(entry.Name)

		item := types.InstalledItem{
			Name:      name,
			Category:  category,
			Path:      entry.Path,
			IsSymlink: entry.IsSymlink,
			Target:    entry.Target,
			Enabled:   !(marked || doc.IsDisabled(category, name)),
			Known:     known[name],
		}
		if entry.IsSymlink {
			if _, err := r.fs.Stat(entry.Path); err != nil && os.IsNotExist(err) {
				item.Broken = true
			}
		}

		if _, ok := byName[name]; ok && !marked {
			continue
		}
		byName[name] = item
	}

	items := make([]types.InstalledItem, 0, len(byName))
	for _, item := range byName {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// belongs filters out entries that cannot be items of category: skills are
// directories, everything else is markdown files.
func belongs(category types.Category, entry types.Entry) bool {
	base := strings.TrimSuffix(entry.Name, types.DisabledSuffix)
	if category.IsDir() {
		return entry.IsDir || (entry.IsSymlink && !strings.HasSuffix(base, types.MarkdownExt))
	}
	return strings.HasSuffix(base, types.MarkdownExt)
}
