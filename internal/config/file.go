package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile decodes a YAML or TOML tuning file over t.
// Settings missing from the file keep their current values.
func LoadFile(path string, t *Tuning) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, t)
	case ".toml":
		err = decodeTOML(data, t)
	default:
		return errors.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", ext)
	}
	if err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

func decodeYAML(data []byte, t *Tuning) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil {
		// An empty document leaves the defaults in place
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

func decodeTOML(data []byte, t *Tuning) error {
	md, err := toml.Decode(string(data), t)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return errors.Errorf("unknown settings: %s", strings.Join(keys, ", "))
	}
	return nil
}
