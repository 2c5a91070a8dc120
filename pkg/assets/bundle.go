package assets

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/operations"
	"github.com/arthur-debert/agentkit/pkg/paths"
	"github.com/arthur-debert/agentkit/pkg/types"
)

//go:embed bundle
var bundleFS embed.FS

const bundleRoot = "bundle"

// Bundle returns the embedded default asset tree, rooted at the category folders
func Bundle() fs.FS {
	sub, err := fs.Sub(bundleFS, bundleRoot)
	if err != nil {
		panic(err)
	}
	return sub
}

// Materialize writes the embedded bundle to dest so global symlinks have a
// stable target on disk. Unchanged files are left alone.
func Materialize(s *operations.Syncer, dest string) (types.Tally, error) {
	tally := types.Tally{}
	bundle := Bundle()

	err := fs.WalkDir(bundle, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(bundle, path)
		if err != nil {
			return err
		}
		r := s.SyncContent(filepath.Join(dest, filepath.FromSlash(path)), data, 0644)
		tally[r.Status]++
		if r.Status == types.StatusError {
			return errors.New(errors.ErrSourceMissing, r.Message)
		}
		return nil
	})
	if err != nil {
		return tally, errors.Wrapf(err, errors.ErrSourceMissing, "cannot materialise bundled assets into %s", dest)
	}
	return tally, nil
}

// ResolveSource picks the source root: an explicit directory (flag or setting)
// wins, otherwise the embedded bundle is materialised under the data dir.
func ResolveSource(fsys types.FS, p *paths.Paths, explicit string) (string, error) {
	logger := logging.GetLogger("assets")

	if explicit = strings.TrimSpace(explicit); explicit != "" {
		dir := expandHome(explicit, p.Home())
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(p.Cwd(), dir)
		}
		if info, err := fsys.Stat(dir); err != nil || !info.IsDir() {
			return "", errors.Newf(errors.ErrSourceMissing, "source assets directory not found: %s", dir).
				WithDetail("path", dir)
		}
		logger.Debug().Str("source", dir).Msg("using explicit source")
		return dir, nil
	}

	dest := p.BundlePath()
	tally, err := Materialize(operations.New(fsys), dest)
	if err != nil {
		return "", err
	}
	logger.Debug().Str("source", dest).Str("tally", tally.String()).Msg("using bundled source")
	return dest, nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return filepath.Join(home, path[2:])
	}
	return path
}
