package datastore

import (
	"os"
	"sync"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/logging"
	"github.com/arthur-debert/agentkit/pkg/operations"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/rs/zerolog"
)

type filesystemStore struct {
	fs     types.FS
	path   string
	syncer *operations.Syncer
	logger zerolog.Logger

	// mu serialises read-modify-write cycles within one process
	mu sync.Mutex
}

// New creates a ConfigStore backed by the JSON document at path
func New(fs types.FS, path string) ConfigStore {
	return &filesystemStore{
		fs:     fs,
		path:   path,
		syncer: operations.New(fs),
		logger: logging.GetLogger("datastore"),
	}
}

func (s *filesystemStore) Path() string {
	return s.path
}

func (s *filesystemStore) Load() *Document {
	doc, err := s.read()
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("cannot read config store, treating as empty")
		return NewDocument()
	}
	return doc
}

// read returns the stored document. A missing or malformed file is the empty
// document; any other read failure is returned, since saving over a file we
// could not read would lose it.
func (s *filesystemStore) read() (*Document, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDocument(), nil
		}
		return nil, err
	}

	doc, err := Decode(data)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("malformed config store, treating as empty")
		return NewDocument(), nil
	}
	return doc, nil
}

func (s *filesystemStore) Save(doc *Document) error {
	data, err := doc.Encode()
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "cannot encode config store")
	}
	if err := s.syncer.WriteFileAtomic(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "cannot write config store %s", s.path)
	}
	s.logger.Debug().Str("path", s.path).Msg("config store saved")
	return nil
}

// update runs a read-modify-write cycle, saving only when fn changed the document
func (s *filesystemStore) update(fn func(doc *Document) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "cannot read config store %s", s.path)
	}
	if !fn(doc) {
		return nil
	}
	return s.Save(doc)
}

func (s *filesystemStore) IsDisabled(category types.Category, name string) bool {
	return s.Load().IsDisabled(category, name)
}

func (s *filesystemStore) DisableItem(category types.Category, name string) error {
	return s.update(func(doc *Document) bool { return doc.Disable(category, name) })
}

func (s *filesystemStore) EnableItem(category types.Category, name string) error {
	return s.update(func(doc *Document) bool { return doc.Enable(category, name) })
}

func (s *filesystemStore) GetDisabledItems(category types.Category) []string {
	names := s.Load().Disabled[string(category)]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func (s *filesystemStore) AddTarget(id string) error {
	return s.update(func(doc *Document) bool { return doc.AddTarget(id) })
}

func (s *filesystemStore) RemoveTarget(id string) error {
	return s.update(func(doc *Document) bool { return doc.RemoveTarget(id) })
}

func (s *filesystemStore) GetTargets() []string {
	targets := s.Load().Targets
	out := make([]string, len(targets))
	copy(out, targets)
	return out
}
