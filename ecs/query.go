package ecs

// IntersectEntities returns entities present in every set, iterating the
// first (caller passes the smallest first).
func IntersectEntities(sets ...*SparseSet) []Entity {
	if len(sets) == 0 || sets[0] == nil {
		return nil
	}
	base := sets[0]
	out := make([]Entity, 0, base.Len())
	for _, e := range base.Entities() {
		keep := true
		for _, other := range sets[1:] {
			if !other.Has(e) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, e)
		}
	}
	return out
}
