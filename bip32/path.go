package bip32

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath parses a derivation path like "m/44'/0'/0'/0/1" into a slice
// of raw BIP32 indices, with each "'" or "h" suffix adding HardenedOffset.
func ParsePath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "m")
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil, nil
	}

	segments := strings.Split(path, "/")
	indices := make([]uint32, 0, len(segments))

	for _, seg := range segments {
		hardened := false
		if strings.HasSuffix(seg, "'") || strings.HasSuffix(seg, "h") || strings.HasSuffix(seg, "H") {
			hardened = true
			seg = seg[:len(seg)-1]
		}

		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bip32: invalid path segment %q: %w", seg, err)
		}

		idx := uint32(n)
		if hardened {
			idx += HardenedOffset
		}
		indices = append(indices, idx)
	}

	return indices, nil
}

// DerivePath walks master through each index in path in strict
// left-to-right order, zeroing every intermediate key's secret material
// once its child has been constructed. It returns the final key;
// callers own its lifetime (and its eventual Zero()).
func DerivePath(master *Key, path []uint32) (*Key, error) {
	current := master
	for _, idx := range path {
		next, err := DeriveChild(current, idx)
		if err != nil {
			return nil, err
		}

		if current != master {
			current.Zero()
		}
		current = next
	}

	return current, nil
}

// DerivePathString is a convenience combining ParsePath and DerivePath.
func DerivePathString(master *Key, path string) (*Key, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return DerivePath(master, indices)
}
