package conf

import (
	"github.com/mitchellh/mapstructure"

	"go.ytsaurus.tech/library/go/core/xerrors"
)

// Decode stores the configuration into struct pointed to by out.
// Fields are matched by their yaml tags; durations may be given as strings like "1m30s".
func (c *Config) Decode(out any) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		TagName:          "yaml",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return xerrors.Errorf("unable to create config decoder: %w", err)
	}

	if err := d.Decode(c.tree); err != nil {
		return xerrors.Errorf("unable to decode config: %w", err)
	}
	return nil
}
