package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// setFile is the on-disk shape shared by every set type: a header, the
// type's config under data, and the member questions under items.
type setFile[C any, Q any] struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Data  C      `yaml:"data"`
	Items []Q    `yaml:"items"`
}

// LoadFile parses and validates a single set definition file.
func LoadFile(path string) (*SetModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var hdr header
	if err := yaml.Unmarshal(raw, &hdr); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validate.Struct(hdr); err != nil {
		return nil, fmt.Errorf("invalid set file %s: %w", path, err)
	}

	var model *SetModel
	switch hdr.Type {
	case TypeDefault:
		model, err = parseSet[DefaultConfig, DefaultQuestion](raw, func(q DefaultQuestion) string { return q.ID })
	case TypeNumericRange:
		model, err = parseSet[NumericRangeConfig, NumericRangeQuestion](raw, func(q NumericRangeQuestion) string { return q.ID })
	case TypeVocab:
		model, err = parseSet[VocabConfig, Word](raw, func(q Word) string { return q.ID })
	case TypeUnion:
		model, err = parseSet[UnionConfig, struct{}](raw, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("set file %s: %w", path, err)
	}
	return model, nil
}

// parseSet decodes the typed file, validates config and items, and
// serializes the per-row payloads. nameOf extracts the question name; a
// nil nameOf means the type carries no questions (union).
func parseSet[C any, Q any](raw []byte, nameOf func(Q) string) (*SetModel, error) {
	var f setFile[C, Q]
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := validate.Struct(f.Data); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg, err := yaml.Marshal(f.Data)
	if err != nil {
		return nil, fmt.Errorf("serialize config: %w", err)
	}

	model := &SetModel{
		Name:   f.Name,
		Type:   f.Type,
		Config: cfg,
	}
	if nameOf == nil {
		return model, nil
	}

	seen := make(map[string]bool, len(f.Items))
	for i, item := range f.Items {
		if err := validate.Struct(item); err != nil {
			return nil, fmt.Errorf("invalid item %d: %w", i, err)
		}
		name := nameOf(item)
		if seen[name] {
			return nil, fmt.Errorf("duplicate question id %q", name)
		}
		seen[name] = true

		data, err := yaml.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("serialize item %q: %w", name, err)
		}
		model.Questions = append(model.Questions, QuestionModel{Name: name, Data: data})
	}
	return model, nil
}

// LoadDir parses every .yaml/.yml file under dir. Files that fail to
// parse are reported in the second return value without aborting the
// rest of the import.
func LoadDir(dir string) ([]SetModel, []error) {
	var models []SetModel
	var errs []error

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		model, err := LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		models = append(models, *model)
		return nil
	})
	if err != nil {
		errs = append(errs, fmt.Errorf("walk %s: %w", dir, err))
	}

	return models, errs
}
