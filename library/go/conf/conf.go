// Package conf stores layered application configuration.
//
// Configuration is built from embedded defaults, the user's configuration
// file and any extra files, merged in this order with later layers taking
// precedence for every leaf value.
package conf

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"go.ytsaurus.tech/library/go/core/log"
	"go.ytsaurus.tech/library/go/core/log/nop"
	"go.ytsaurus.tech/library/go/core/xerrors"
	"go.ytsaurus.tech/library/go/ptr"

	"github.com/vbrozik/vb.utils/library/go/compress"
	"github.com/vbrozik/vb.utils/library/go/containers/maps"
	"github.com/vbrozik/vb.utils/library/go/containers/nested"
)

// FileName is the name of the user's configuration file inside UserDir.
const FileName = "config.yaml"

type Options struct {
	// AppName selects the user's configuration directory. Defaults to the executable name.
	AppName string
	// Defaults is a YAML document with default values.
	Defaults []byte
	// Files are merged after the user's file, in order. Compressed files are supported.
	Files []string
	// UserDir overrides the user's configuration directory.
	UserDir string
	// ReadUserFile controls reading of the user's file. Defaults to true.
	ReadUserFile *bool

	Logger log.Logger
}

// Config is a merged configuration tree.
type Config struct {
	userDir string
	tree    map[string]any
	l       log.Logger
}

// Load builds configuration from the layers described by opts.
func Load(opts Options) (*Config, error) {
	c := &Config{l: opts.Logger}
	if c.l == nil {
		c.l = &nop.Logger{}
	}

	appName := opts.AppName
	if appName == "" {
		appName = filepath.Base(os.Args[0])
	}

	c.userDir = opts.UserDir
	if c.userDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, xerrors.Errorf("unable to locate user config dir: %w", err)
		}
		c.userDir = filepath.Join(base, appName)
	}

	defaults, err := parse(opts.Defaults)
	if err != nil {
		return nil, xerrors.Errorf("invalid default config: %w", err)
	}
	layers := []map[string]any{defaults}

	if ptr.ValueOr(opts.ReadUserFile, true) {
		user, err := readFile(c.UserFile())
		switch {
		case errors.Is(err, os.ErrNotExist):
			c.l.Debug("User config not found", log.String("path", c.UserFile()))
		case err != nil:
			return nil, err
		default:
			c.l.Debug("User config loaded", log.String("path", c.UserFile()))
			layers = append(layers, user)
		}
	}

	for _, path := range opts.Files {
		layer, err := readFile(path)
		if err != nil {
			return nil, err
		}
		c.l.Debug("Config loaded", log.String("path", path))
		layers = append(layers, layer)
	}

	c.tree, err = maps.DeepMergeAll(layers...)
	if err != nil {
		return nil, xerrors.Errorf("unable to merge config: %w", err)
	}
	return c, nil
}

func readFile(path string) (map[string]any, error) {
	r, err := compress.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, xerrors.Errorf("unable to read %q: %w", path, err)
	}

	tree, err := parse(data)
	if err != nil {
		return nil, xerrors.Errorf("invalid config %q: %w", path, err)
	}
	return tree, nil
}

func parse(data []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	switch tree := nested.Normalize(doc).(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return tree, nil
	default:
		return nil, xerrors.Errorf("top level value must be a mapping, got %T", tree)
	}
}

// UserDir returns the user's configuration directory.
func (c *Config) UserDir() string {
	return c.userDir
}

// UserFile returns path of the user's configuration file.
func (c *Config) UserFile() string {
	return filepath.Join(c.userDir, FileName)
}

// Tree returns a copy of the merged configuration.
func (c *Config) Tree() map[string]any {
	res, _ := maps.DeepCopy(c.tree)
	return res
}

// Get returns value at dotted path or def.
func (c *Config) Get(path string, def any) any {
	return nested.SafeGet(c.tree, nested.ParsePath(path), def)
}

// Validate checks that every dotted path in required is present.
func (c *Config) Validate(required ...string) error {
	var missing []string
	for _, path := range required {
		if !nested.Has(c.tree, nested.ParsePath(path)) {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return xerrors.Errorf("missing config keys: %v", missing)
	}
	return nil
}

// Write saves the merged configuration into the user's file.
// With onlyNew an existing file is left untouched.
func (c *Config) Write(onlyNew bool) error {
	path := c.UserFile()
	if onlyNew {
		if _, err := os.Stat(path); err == nil {
			c.l.Debug("User config exists, not overwriting", log.String("path", path))
			return nil
		}
	}

	data, err := yaml.Marshal(c.tree)
	if err != nil {
		return xerrors.Errorf("unable to encode config: %w", err)
	}
	if err := os.MkdirAll(c.userDir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	c.l.Info("User config written", log.String("path", path))
	return nil
}
