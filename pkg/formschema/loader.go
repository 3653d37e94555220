package formschema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-confirmform/pkg/model"
)

// LoadFS walks the provided filesystem and parses JSON/YAML form schema
// files. When fsys is nil or no schema files are present, the returned store
// is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[model.IdentityAlias]Form)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formschema: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawAlias, raw := range doc.Forms {
			alias, err := model.ParseAlias(rawAlias)
			if err != nil {
				return fmt.Errorf("formschema: file %s: %w", path, err)
			}
			if _, exists := store.forms[alias]; exists {
				return fmt.Errorf("formschema: duplicate form %q (file %s)", alias, path)
			}

			form, err := normaliseForm(raw, alias, path)
			if err != nil {
				return err
			}
			store.forms[alias] = form
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Header      string        `json:"header" yaml:"header"`
	SubmitLabel string        `json:"submitLabel" yaml:"submitLabel"`
	Fields      []FieldConfig `json:"fields" yaml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("formschema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("formschema: parse %s: invalid JSON or YAML", source)
}

func normaliseForm(raw formFile, alias model.IdentityAlias, source string) (Form, error) {
	form := Form{
		Alias:       alias,
		Source:      source,
		Header:      strings.TrimSpace(raw.Header),
		SubmitLabel: strings.TrimSpace(raw.SubmitLabel),
		Fields:      make([]FieldConfig, 0, len(raw.Fields)),
	}

	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, cfg := range raw.Fields {
		fieldType := strings.TrimSpace(cfg.Type)
		if fieldType == "" {
			return Form{}, fmt.Errorf("formschema: form %q (file %s) field at index %d has no type", alias, source, idx)
		}
		cfg.Type = fieldType

		key := cfg.Name
		if key == "" {
			key = fieldType
		}
		if _, exists := seen[key]; exists {
			return Form{}, fmt.Errorf("formschema: form %q (file %s) defines duplicate field %q", alias, source, key)
		}
		seen[key] = struct{}{}

		if cfg.Hint != nil {
			hint := *cfg.Hint
			hint.Markup = sanitizeHintMarkup(hint.Markup)
			if hint.Text == "" && hint.Markup == "" && strings.TrimSpace(hint.ActionLabel) == "" {
				cfg.Hint = nil
			} else {
				cfg.Hint = &hint
			}
		}

		form.Fields = append(form.Fields, cfg)
	}

	return form, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
