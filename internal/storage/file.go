package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"workrest/internal/core/model"
	"workrest/internal/fsutil"

	"gopkg.in/yaml.v3"
)

const (
	dataDirPerm  os.FileMode = 0o755
	dataFilePerm os.FileMode = 0o644
)

type codec struct {
	name      string
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

var jsonCodec = codec{
	name: "json",
	marshal: func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	},
	unmarshal: json.Unmarshal,
}

var yamlCodec = codec{
	name:      "yaml",
	marshal:   yaml.Marshal,
	unmarshal: yaml.Unmarshal,
}

// File stores the statistics document as a single file, rewritten whole on
// every save.
type File struct {
	path  string
	codec codec
	now   func() time.Time
}

// NewJSONFile returns a backend writing the canonical JSON document.
func NewJSONFile(path string) *File {
	return &File{path: path, codec: jsonCodec, now: time.Now}
}

// NewYAMLFile returns a backend writing the document as YAML.
func NewYAMLFile(path string) *File {
	return &File{path: path, codec: yamlCodec, now: time.Now}
}

// Path returns the file location.
func (file *File) Path() string {
	return file.path
}

// Load reads the document. A missing or empty file yields a zero document.
// An unparsable file is moved aside and reported.
func (file *File) Load() (model.Document, error) {
	var doc model.Document

	rawData, err := os.ReadFile(file.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("read statistics file: %w", err)
	}
	if len(bytes.TrimSpace(rawData)) == 0 {
		return doc, nil
	}

	if err := file.codec.unmarshal(rawData, &doc); err != nil {
		moved := fsutil.Quarantine(file.path, file.now())
		return model.Document{}, fmt.Errorf("parse statistics %s (moved to %q): %w", file.codec.name, moved, err)
	}
	return doc, nil
}

// Save overwrites the file with doc.
func (file *File) Save(doc model.Document) error {
	if err := os.MkdirAll(filepath.Dir(file.path), dataDirPerm); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	serialized, err := file.codec.marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal statistics %s: %w", file.codec.name, err)
	}

	if err := fsutil.WriteFileAtomic(file.path, serialized, dataFilePerm); err != nil {
		return fmt.Errorf("write statistics file: %w", err)
	}
	return nil
}

// Close is a no-op; files are not held open between saves.
func (file *File) Close() error {
	return nil
}
