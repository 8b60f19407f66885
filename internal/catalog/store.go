package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fruitdata/internal/logging"
)

// Store reads and writes one catalogue file. It holds no in-memory state;
// every Load and Save is a single full read or full overwrite of the file.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store bound to the given file path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logging.NewComponentLogger(logger, "catalog"),
	}
}

// Path returns the catalogue file path the store operates on.
func (s *Store) Path() string {
	return s.path
}

// recordFields shadows Record with pointer fields so a decode can tell a
// missing field from a zero value.
type recordFields struct {
	Name   *string  `json:"name"`
	Length *float64 `json:"length"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// Load reads the catalogue file and decodes it as a JSON array of records,
// preserving file order. Failures to read the file wrap ErrRead; content
// that is not a well-formed array of four-field records wraps ErrParse.
// Load does not validate uniqueness or positivity; the file is trusted.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, Wrap(ErrRead, "load", fmt.Sprintf("read catalogue file %s", s.path), err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, Wrap(ErrParse, "load", fmt.Sprintf("parse catalogue file %s", s.path), err)
	}

	s.logger.Debug("loaded catalogue",
		logging.Int("record_count", len(records)),
		logging.String("path", s.path))

	return records, nil
}

// Save serializes the records as a pretty-printed JSON array and overwrites
// the catalogue file. The write is a single direct overwrite with no
// temp-file-and-rename step; a failure mid-write can leave a truncated
// file, which matches the tool's trust model.
func (s *Store) Save(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return Wrap(ErrWrite, "save", "marshal catalogue", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return Wrap(ErrWrite, "save", fmt.Sprintf("write catalogue file %s", s.path), err)
	}

	s.logger.Debug("saved catalogue",
		logging.Int("record_count", len(records)),
		logging.Int("bytes", len(data)),
		logging.String("path", s.path))

	return nil
}

func decodeRecords(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var raw []recordFields
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing content after catalogue array")
	}

	records := make([]Record, 0, len(raw))
	for i, fields := range raw {
		switch {
		case fields.Name == nil:
			return nil, fmt.Errorf("record %d: missing field %q", i, "name")
		case fields.Length == nil:
			return nil, fmt.Errorf("record %d: missing field %q", i, "length")
		case fields.Width == nil:
			return nil, fmt.Errorf("record %d: missing field %q", i, "width")
		case fields.Height == nil:
			return nil, fmt.Errorf("record %d: missing field %q", i, "height")
		}
		records = append(records, Record{
			Name:   *fields.Name,
			Length: *fields.Length,
			Width:  *fields.Width,
			Height: *fields.Height,
		})
	}
	return records, nil
}
