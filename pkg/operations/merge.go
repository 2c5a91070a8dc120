package operations

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/google/uuid"
)

// MergeBanner opens every generated rules document
const MergeBanner = "<!-- Generated by agentkit. Edits are overwritten on the next install. -->"

// MergeSection is one source file inside a merged document
type MergeSection struct {
	Name        string
	Description string
	Path        string
}

// BeginMarker returns the delimiter that opens a section
func BeginMarker(name string) string {
	return fmt.Sprintf("<!-- agentkit:begin %s -->", name)
}

// EndMarker returns the delimiter that closes a section
func EndMarker(name string) string {
	return fmt.Sprintf("<!-- agentkit:end %s -->", name)
}

// RenderMerged builds the merged document. Sections are ordered by name so the
// output is byte-identical for the same inputs.
func (s *Syncer) RenderMerged(sections []MergeSection) ([]byte, error) {
	sorted := make([]MergeSection, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var buf bytes.Buffer
	buf.WriteString(MergeBanner)
	buf.WriteString("\n")

	for _, section := range sorted {
		content, err := s.fs.ReadFile(section.Path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", section.Path)
		}

		buf.WriteString("\n")
		buf.WriteString(BeginMarker(section.Name))
		buf.WriteString("\n# Agent: ")
		buf.WriteString(section.Name)
		buf.WriteString("\n")
		if desc := strings.TrimSpace(section.Description); desc != "" {
			buf.WriteString("\n> ")
			buf.WriteString(desc)
			buf.WriteString("\n")
		}
		buf.WriteString("\n")
		buf.WriteString(strings.TrimRight(string(content), "\n"))
		buf.WriteString("\n")
		buf.WriteString(EndMarker(section.Name))
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// MergeFiles regenerates targetFile from sections. The file is always rebuilt
// in full, but an unchanged result reports exists rather than updated.
func (s *Syncer) MergeFiles(targetFile string, sections []MergeSection) types.Result {
	content, err := s.RenderMerged(sections)
	if err != nil {
		return s.fail(targetFile, err)
	}

	status := types.StatusCreated
	existing, err := s.fs.ReadFile(targetFile)
	switch {
	case err == nil && bytes.Equal(existing, content):
		return s.result(types.StatusExists, targetFile, "")
	case err == nil:
		status = types.StatusUpdated
	case !os.IsNotExist(err):
		return s.fail(targetFile, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", targetFile))
	}

	if !s.dryRun {
		if err := s.WriteFileAtomic(targetFile, content, filePerm); err != nil {
			return s.fail(targetFile, err)
		}
	}
	return s.result(status, targetFile, "")
}

// WriteFileAtomic writes data to a temp file beside path and renames it into
// place, so readers never observe a truncated file. A dry-run Syncer writes nothing.
func (s *Syncer) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := s.apply(mkdirStep(dir)); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := s.apply(writeStep(tmp, data, perm)); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", tmp)
	}
	if err := s.apply(renameStep(tmp, path)); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", path)
	}
	return nil
}
