package object

import "hash/fnv"

// hashBytes computes an FNV-1a hash, the basis for every Value's Hash().
// It's a well-known, fast, deterministic content hash; stdlib hash/fnv
// is enough here and keeps every hash a single uint64 with no
// dependency on comparison/ordering semantics.
func hashBytes(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}

func hashString(s string) uint64 {
	return hashBytes([]byte(s))
}

// combineOrdered folds hashes where order matters (List elements, a Dict
// entry's key then value),
// mirroring the classic polynomial string-hash recurrence.
func combineOrdered(hashes ...uint64) uint64 {
	var h uint64 = 14695981039346656037 // FNV offset basis
	for _, x := range hashes {
		h ^= x
		h *= 1099511628211 // FNV prime
	}
	return h
}

// combineUnordered folds hashes where order must not matter (Dict, Set):
// equal content in any insertion order must hash equal.
func combineUnordered(hashes ...uint64) uint64 {
	var h uint64
	for _, x := range hashes {
		h += x
	}
	return h
}
