package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML UI schema files.
// When fsys is nil or no schema files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]FormHints)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for formID, raw := range doc.Forms {
			id := strings.TrimSpace(formID)
			if id == "" {
				return fmt.Errorf("uischema: file %s defines an empty form id", path)
			}
			if _, exists := store.forms[id]; exists {
				return fmt.Errorf("uischema: duplicate form %q (file %s)", id, path)
			}
			hints, err := normaliseForm(raw, id, path)
			if err != nil {
				return err
			}
			store.forms[id] = hints
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns the hints for the supplied form id.
func (s *Store) Form(id string) (FormHints, bool) {
	if s == nil {
		return FormHints{}, false
	}
	hints, ok := s.forms[id]
	return hints, ok
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Form   FormConfig             `json:"form" yaml:"form"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

func normaliseForm(raw formFile, id, source string) (FormHints, error) {
	hints := FormHints{
		ID:     id,
		Source: source,
		Form:   raw.Form,
		Fields: make(map[string]FieldConfig, len(raw.Fields)),
	}

	for key, cfg := range raw.Fields {
		normalised := NormalizeFieldPath(key)
		if normalised == "" {
			return FormHints{}, fmt.Errorf("uischema: form %q (file %s) field key %q normalises to empty path", id, source, key)
		}
		if _, exists := hints.Fields[normalised]; exists {
			return FormHints{}, fmt.Errorf("uischema: form %q (file %s) defines duplicate field path %q", id, source, normalised)
		}
		cloned := cloneFieldConfig(cfg)
		cloned.OriginalPath = key
		cloned.Icon = sanitizeIconMarkup(cfg.Icon)
		hints.Fields[normalised] = cloned
	}
	return hints, nil
}

func cloneFieldConfig(cfg FieldConfig) FieldConfig {
	out := cfg
	if len(cfg.UIHints) > 0 {
		out.UIHints = make(map[string]string, len(cfg.UIHints))
		for k, v := range cfg.UIHints {
			out.UIHints[k] = v
		}
	}
	return out
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
