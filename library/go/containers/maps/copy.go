package maps

import (
	"github.com/mitchellh/copystructure"

	"go.ytsaurus.tech/library/go/core/xerrors"
)

// DeepCopy returns a copy of m sharing no maps or slices with it.
func DeepCopy(m map[string]any) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}

	c, err := copystructure.Copy(m)
	if err != nil {
		return nil, xerrors.Errorf("unable to copy map: %w", err)
	}
	return c.(map[string]any), nil
}

func deepCopyValue(v any) (any, error) {
	switch v.(type) {
	case nil, string, bool, int, int64, uint64, float64:
		return v, nil
	}

	c, err := copystructure.Copy(v)
	if err != nil {
		return nil, xerrors.Errorf("unable to copy value of type %T: %w", v, err)
	}
	return c, nil
}
