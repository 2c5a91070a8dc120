package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/types"
)

// AgentGroups are the source subfolders flattened into the agents namespace,
// in precedence order for duplicate names.
var AgentGroups = []string{"developers", "utilities"}

// SkillFile is the entry document of a skill directory
const SkillFile = "SKILL.md"

// Asset is one named unit of source content
type Asset struct {
	Name        string         `json:"name"`
	Category    types.Category `json:"category"`
	Path        string         `json:"path"`
	Group       string         `json:"group,omitempty"`
	Description string         `json:"description,omitempty"`
}

// FileName returns the destination entry name for the asset
func (a Asset) FileName(disabled bool) string {
	return a.Category.FileName(a.Name, disabled)
}

// Catalog is the set of assets found under a source root
type Catalog struct {
	root   string
	assets map[types.Category][]Asset
}

// Load scans root. A missing root or a root without an agents folder is an
// environment error: nothing can be installed without it.
func Load(fsys types.FS, root string) (*Catalog, error) {
	logger := logging.GetLogger("assets")

	if info, err := fsys.Stat(root); err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceMissing, "source assets directory not found: %s", root).
			WithDetail("path", root)
	}
	agentsRoot := filepath.Join(root, string(types.CategoryAgents))
	if info, err := fsys.Stat(agentsRoot); err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrSourceMissing, "source assets directory has no agents folder: %s", root).
			WithDetail("path", agentsRoot)
	}

	c := &Catalog{root: root, assets: map[types.Category][]Asset{}}

	agents, err := scanFiles(fsys, agentsRoot, types.CategoryAgents, "")
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for _, a := range agents {
		seen[a.Name] = true
	}
	for _, group := range AgentGroups {
		found, err := scanFiles(fsys, filepath.Join(agentsRoot, group), types.CategoryAgents, group)
		if err != nil {
			return nil, err
		}
		for _, a := range found {
			if seen[a.Name] {
				logger.Warn().Str("name", a.Name).Str("group", group).Msg("duplicate agent name ignored")
				continue
			}
			seen[a.Name] = true
			agents = append(agents, a)
		}
	}
	c.assets[types.CategoryAgents] = agents

	for _, category := range []types.Category{types.CategoryCommands, types.CategoryArchitecture} {
		found, err := scanFiles(fsys, filepath.Join(root, string(category)), category, "")
		if err != nil {
			return nil, err
		}
		c.assets[category] = found
	}

	skills, err := scanSkills(fsys, filepath.Join(root, string(types.CategorySkills)))
	if err != nil {
		return nil, err
	}
	c.assets[types.CategorySkills] = skills

	for category := range c.assets {
		sortAssets(c.assets[category])
	}

	logger.Debug().
		Str("root", root).
		Int("agents", len(c.assets[types.CategoryAgents])).
		Int("commands", len(c.assets[types.CategoryCommands])).
		Int("skills", len(c.assets[types.CategorySkills])).
		Int("architecture", len(c.assets[types.CategoryArchitecture])).
		Msg("catalog loaded")

	return c, nil
}

// Root returns the source root the catalog was loaded from
func (c *Catalog) Root() string {
	return c.root
}

// Assets returns the assets of a category sorted by name
func (c *Catalog) Assets(category types.Category) []Asset {
	out := make([]Asset, len(c.assets[category]))
	copy(out, c.assets[category])
	return out
}

// All returns every asset in category install order
func (c *Catalog) All() []Asset {
	var out []Asset
	for _, category := range types.AllCategories {
		out = append(out, c.assets[category]...)
	}
	return out
}

// Find looks up an asset by category and logical name
func (c *Catalog) Find(category types.Category, name string) (Asset, bool) {
	for _, a := range c.assets[category] {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

// KnownNames is the union of asset names across all categories. Uninstall
// only removes non-symlink entries whose cleaned name is in this set.
func (c *Catalog) KnownNames() map[string]bool {
	names := map[string]bool{}
	for _, list := range c.assets {
		for _, a := range list {
			names[a.Name] = true
		}
	}
	return names
}

func scanFiles(fsys types.FS, dir string, category types.Category, group string) ([]Asset, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", dir)
	}

	var out []Asset
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != types.MarkdownExt {
			continue
		}
		path := filepath.Join(dir, name)
		out = append(out, Asset{
			Name:        strings.TrimSuffix(name, types.MarkdownExt),
			Category:    category,
			Path:        path,
			Group:       group,
			Description: readDescription(fsys, path),
		})
	}
	return out, nil
}

func scanSkills(fsys types.FS, dir string) ([]Asset, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", dir)
	}

	var out []Asset
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		out = append(out, Asset{
			Name:        entry.Name(),
			Category:    types.CategorySkills,
			Path:        path,
			Description: readDescription(fsys, filepath.Join(path, SkillFile)),
		})
	}
	return out, nil
}

// readDescription returns the front matter description, or "" when the file
// has none or cannot be parsed.
func readDescription(fsys types.FS, path string) string {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return ""
	}
	fm, _, err := ParseFrontMatter(content)
	if err != nil {
		logger := logging.GetLogger("assets")
		logger.Debug().Err(err).Str("path", path).Msg("ignoring front matter")
		return ""
	}
	return strings.TrimSpace(fm.Description)
}

func sortAssets(list []Asset) {
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}
