// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package dealerconfig

// Merge deep-merges src onto dst and returns the result as a new map.
// Neither input is mutated.
//
// Rules:
//   - nested maps merge recursively, key by key
//   - non-map values and arrays are replaced wholesale by src
//   - a nil src value means "no override": the dst value is preserved
//     (an admin omitting a field in a partial update must not erase it;
//     the flip side is that null cannot clear a field back to inherit)
//
// Merging the same src twice yields the same result as merging it once.
func Merge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = cloneValue(v)
	}
	for k, v := range src {
		if v == nil {
			continue
		}
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := out[k].(map[string]any)
		if srcIsMap && dstIsMap {
			out[k] = Merge(dstMap, srcMap)
			continue
		}
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue copies maps and slices so merge results never alias their
// inputs. Scalars are returned as-is.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
