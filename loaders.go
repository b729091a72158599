package numbers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// localeBundle is the on-disk shape a FileLoader reads: locale tables plus
// currency records, in JSON or YAML.
type localeBundle struct {
	Locales    map[string]*LocaleData `json:"locales" yaml:"locales"`
	Currencies map[string]*Currency   `json:"currencies" yaml:"currencies"`
}

// FileLoader reads locale bundles from disk so applications can extend or
// replace the embedded CLDR data.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load reads and merges all configured bundle files. Later files win on
// conflicting locales or currency codes.
func (l *FileLoader) Load() (map[string]*LocaleData, map[string]*Currency, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, nil, errors.New("numbers: no loader paths configured")
	}

	locales := make(map[string]*LocaleData)
	currencies := make(map[string]*Currency)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("numbers: read %s: %w", path, err)
		}

		bundle, err := decodeBundle(path, data)
		if err != nil {
			return nil, nil, fmt.Errorf("numbers: decode %s: %w", path, err)
		}

		for name, ld := range bundle.Locales {
			normalized := normalizeLocale(name)
			if normalized == "" || ld == nil {
				continue
			}
			if ld.Name == "" {
				ld.Name = normalized
			}
			if ld.DefaultNumberSystem == "" {
				ld.DefaultNumberSystem = "latn"
			}
			locales[normalized] = ld
		}
		for code, c := range bundle.Currencies {
			code = strings.ToUpper(strings.TrimSpace(code))
			if code == "" || c == nil {
				continue
			}
			if c.Code == "" {
				c.Code = code
			}
			currencies[code] = c
		}
	}

	return locales, currencies, nil
}

func decodeBundle(path string, data []byte) (localeBundle, error) {
	var bundle localeBundle
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &bundle); err != nil {
			return bundle, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &bundle); err != nil {
			return bundle, err
		}
	default:
		return bundle, fmt.Errorf("unsupported bundle format %q", filepath.Ext(path))
	}
	return bundle, nil
}

// WithLoader merges the loader's bundles into the formatter's backend. The
// backend must support merging; the embedded CLDRBackend does.
func WithLoader(loader *FileLoader) Option {
	return func(f *Formatter) error {
		if loader == nil {
			return fmt.Errorf("%w: nil loader", ErrInvalidOption)
		}
		locales, currencies, err := loader.Load()
		if err != nil {
			return err
		}
		if f.backend == nil {
			f.backend = NewCLDRBackend()
		}
		backend, ok := f.backend.(*CLDRBackend)
		if !ok {
			return fmt.Errorf("%w: backend %T does not support loader merges", ErrInvalidOption, f.backend)
		}
		backend.Merge(locales, currencies)
		return nil
	}
}
