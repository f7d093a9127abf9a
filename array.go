package jsondelta

import (
	"reflect"
)

// compareArrays reconciles two arrays at path. deep-equal arrays
// short-circuit before any strategy runs, which must (and does) produce
// the same result as running the full reconciliation on equal inputs
func (d *Differ) compareArrays(path string, left, right []interface{}, patch *Patch) {
	if reflect.DeepEqual(left, right) {
		return
	}
	if d.byHash() {
		d.reconcileByHash(path, left, right, patch)
		return
	}
	d.reconcileByIndex(path, left, right, patch)
}

// reconcileByIndex walks both arrays positionally. the output index
// advances for kept & added elements but freezes on removal, so each
// removal path references the array state after the removals emitted
// before it
func (d *Differ) reconcileByIndex(path string, left, right []interface{}, patch *Patch) {
	outIdx := 0
	for i := 0; i < len(left) || i < len(right); i++ {
		switch {
		case i < len(left) && i < len(right):
			d.compare(appendIndex(path, outIdx), left[i], right[i], patch)
			outIdx++
		case i < len(right):
			*patch = append(*patch, NewAdd(appendIndex(path, outIdx), right[i]))
			outIdx++
		default:
			*patch = append(*patch, NewRemove(appendIndex(path, outIdx)))
		}
	}
}

// reconcileByHash pairs elements by fingerprint instead of position.
// unmatched left elements become removes, unmatched right elements become
// adds at their final index, & matched pairs recurse for nested changes.
// move detection runs last against a shadow copy of the element order
func (d *Differ) reconcileByHash(path string, left, right []interface{}, patch *Patch) {
	leftHashes := make([]string, len(left))
	for i, v := range left {
		leftHashes[i] = d.cfg.ObjectHash(v, Context{Side: SideLeft, Path: path})
	}
	rightHashes := make([]string, len(right))
	for i, v := range right {
		rightHashes[i] = d.cfg.ObjectHash(v, Context{Side: SideRight, Path: path})
	}

	matched := make([]bool, len(right))

	// shadow tracks the hashes of kept & added elements in their current
	// order, scoped to this call. it starts as the post-remove order &
	// has adds spliced in at their target indices, so by the time move
	// detection runs it mirrors the real array state exactly
	shadow := make([]string, 0, len(right))

	outIdx := 0
	for i, h := range leftHashes {
		j := firstUnmatched(rightHashes, matched, h)
		if j < 0 {
			*patch = append(*patch, NewRemove(appendIndex(path, outIdx)))
			continue
		}
		matched[j] = true
		d.compare(appendIndex(path, outIdx), left[i], right[j], patch)
		outIdx++
		shadow = append(shadow, h)
	}

	for j, h := range rightHashes {
		if matched[j] {
			continue
		}
		*patch = append(*patch, NewAdd(appendIndex(path, j), right[j]))
		matched[j] = true
		shadow = spliceIn(shadow, j, h)
	}

	if d.cfg.IgnoreArrayMove {
		return
	}

	// emit moves from the last target position to the first, reordering
	// the shadow after each one. processing right-to-left with immediate
	// reordering keeps every from-index valid against the array state
	// produced by the moves already emitted in this batch
	for pos := len(rightHashes) - 1; pos >= 0; pos-- {
		h := rightHashes[pos]
		current := indexOf(shadow, h)
		// target is found by hash lookup rather than taken from the loop
		// position, so colliding hashes settle on one position instead of
		// shuffling between their duplicates
		target := indexOf(rightHashes, h)
		if current < 0 || current == target {
			continue
		}
		*patch = append(*patch, NewMove(appendIndex(path, current), appendIndex(path, target)))
		shadow = spliceIn(spliceOut(shadow, current), target, h)
	}
}

// firstUnmatched finds the first right-side element with hash h that
// hasn't been claimed yet, or -1. colliding hashes pair silently: the
// hash function is trusted to distinguish elements the caller cares about
func firstUnmatched(hashes []string, matched []bool, h string) int {
	for j, rh := range hashes {
		if !matched[j] && rh == h {
			return j
		}
	}
	return -1
}

func indexOf(hashes []string, h string) int {
	for i, sh := range hashes {
		if sh == h {
			return i
		}
	}
	return -1
}

func spliceIn(hashes []string, idx int, h string) []string {
	hashes = append(hashes, "")
	copy(hashes[idx+1:], hashes[idx:])
	hashes[idx] = h
	return hashes
}

func spliceOut(hashes []string, idx int) []string {
	return append(hashes[:idx], hashes[idx+1:]...)
}
