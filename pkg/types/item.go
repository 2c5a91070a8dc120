package types

// Entry is one direct child of a directory, with symlink metadata
type Entry struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	IsDir     bool   `json:"isDir"`
	IsSymlink bool   `json:"isSymlink"`
	Target    string `json:"target,omitempty"`
}

// InstalledItem is the on-disk representation of an asset inside a target
type InstalledItem struct {
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Path      string   `json:"path"`
	IsSymlink bool     `json:"isSymlink"`
	Target    string   `json:"target,omitempty"`
	Enabled   bool     `json:"enabled"`
	Broken    bool     `json:"broken,omitempty"`
	Known     bool     `json:"known"`
}

// DisplayName prefixes the name with the category marker (@agent, /command)
func (i InstalledItem) DisplayName() string {
	return i.Category.Prefix() + i.Name
}
