package extract

import (
	"os"
	"path"
	"sort"
	"strings"
)

// Inventory is the set of image filenames present in the images directory
// at build time. It is the source of truth for gallery discovery.
type Inventory struct {
	files []string
	set   map[string]struct{}
}

// LoadInventory reads the images directory. A missing or unreadable
// directory yields an empty inventory rather than an error; the builder
// favors best-effort emission over hard failure.
func LoadInventory(dir string) *Inventory {
	inv := &Inventory{set: make(map[string]struct{})}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return inv
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		inv.files = append(inv.files, e.Name())
		inv.set[e.Name()] = struct{}{}
	}
	return inv
}

// NewInventory builds an inventory from an explicit file list (used in tests
// and by callers that already know the directory contents).
func NewInventory(files []string) *Inventory {
	inv := &Inventory{set: make(map[string]struct{}, len(files))}
	for _, f := range files {
		if _, ok := inv.set[f]; ok {
			continue
		}
		inv.files = append(inv.files, f)
		inv.set[f] = struct{}{}
	}
	return inv
}

// Has reports whether the basename exists in the images directory
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.set[name]
	return ok
}

// Files returns the inventory filenames in directory order
func (inv *Inventory) Files() []string {
	return inv.files
}

// GalleryImages collects the gallery for a primary image: the primary itself
// plus every inventory file sharing the primary's stem as a prefix with the
// same extension (e.g. resin-bangle.jpg picks up resin-bangle2.jpg). The
// result is sorted ascending for deterministic output.
func (inv *Inventory) GalleryImages(primary string) []string {
	// External URLs have no siblings on disk
	if strings.HasPrefix(primary, "http") {
		return []string{primary}
	}

	base := strings.TrimPrefix(primary, "images/")
	ext := path.Ext(base)
	prefix := strings.TrimSuffix(base, ext)

	var candidates []string
	seen := make(map[string]struct{})
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		candidates = append(candidates, name)
	}

	if inv.Has(base) {
		add(base)
	}
	for _, f := range inv.files {
		if f == base {
			continue
		}
		if strings.HasPrefix(f, prefix) && path.Ext(f) == ext {
			add(f)
		}
	}

	if len(candidates) == 0 && base == placeholderImage {
		return []string{placeholderImage}
	}

	sort.Strings(candidates)
	return candidates
}
