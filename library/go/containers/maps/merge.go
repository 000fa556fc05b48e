package maps

// DeepMerge returns a new map combining a and b.
//
// For a key present in both maps whose values are both map[string]any the
// values are merged recursively. Otherwise the value from b wins, also when
// only one of the two values is a map. Values in the result are copies, so
// neither a nor b is reachable from it.
func DeepMerge(a, b map[string]any) (map[string]any, error) {
	res := make(map[string]any, max(len(a), len(b)))
	for k, v := range a {
		c, err := deepCopyValue(v)
		if err != nil {
			return nil, err
		}
		res[k] = c
	}

	for k, bv := range b {
		am, aIsMap := res[k].(map[string]any)
		bm, bIsMap := bv.(map[string]any)
		if aIsMap && bIsMap {
			merged, err := DeepMerge(am, bm)
			if err != nil {
				return nil, err
			}
			res[k] = merged
			continue
		}

		c, err := deepCopyValue(bv)
		if err != nil {
			return nil, err
		}
		res[k] = c
	}
	return res, nil
}

// DeepMergeAll merges ms from left to right, so later maps take precedence.
func DeepMergeAll(ms ...map[string]any) (map[string]any, error) {
	res := map[string]any{}
	for _, m := range ms {
		merged, err := DeepMerge(res, m)
		if err != nil {
			return nil, err
		}
		res = merged
	}
	return res, nil
}
