package changes

import (
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/winpack/cli/internal/errors"
	"github.com/winpack/cli/internal/manifest"
	"github.com/winpack/cli/internal/output"
	"github.com/winpack/cli/internal/xmltree"
)

// Apply grafts every fragment of c onto m. Fragments equal to an existing
// child of the parent are skipped. Nothing is written to disk.
func Apply(m *manifest.Manifest, c Change) error {
	parent, err := resolveParent(m, c.Parent)
	if err != nil {
		return err
	}

	for _, raw := range c.XMLs {
		frag, err := xmltree.ParseFragment(raw)
		if err != nil {
			return oerrors.NewFormatError(err.Error(), m.Path(), c.Parent)
		}

		if hasEqualChild(parent, frag) {
			output.Debug("skipping existing element", "path", m.Path(), "tag", frag.Tag())
			continue
		}

		if c.After == "" {
			parent.Append(frag)
		} else {
			parent.InsertAt(insertIndex(parent, c.After), frag)
		}
	}
	return nil
}

// ApplyAll demultiplexes changes, applies each to dir/<target> obtained from
// cache and returns the touched manifests in first-touched order.
func ApplyAll(cache *manifest.Cache, dir string, list []Change) ([]*manifest.Manifest, error) {
	var touched []*manifest.Manifest
	seen := make(map[*manifest.Manifest]bool)

	for _, c := range Process(list) {
		m, err := cache.Get(filepath.Join(dir, c.Target), false)
		if err != nil {
			return touched, err
		}
		if err := Apply(m, c); err != nil {
			return touched, fmt.Errorf("applying change to %s: %w", c.Target, err)
		}
		if !seen[m] {
			seen[m] = true
			touched = append(touched, m)
		}
	}
	return touched, nil
}

// resolveParent returns the element selected by path, creating missing
// plain segments. "/Package/..." is taken relative to the root, as is a path
// without a leading slash. An empty path selects the root.
func resolveParent(m *manifest.Manifest, path string) (*xmltree.Element, error) {
	rel := strings.TrimPrefix(path, "/"+manifest.RootTag)
	rel = strings.TrimPrefix(rel, "./")
	rel = strings.Trim(rel, "/")

	el := m.Root()
	if rel == "" {
		return el, nil
	}

	for _, seg := range strings.Split(rel, "/") {
		next := el.Find("./" + seg)
		if next == nil {
			if !isPlainSegment(seg) {
				return nil, oerrors.NewNotFoundError(
					fmt.Sprintf("no element matches %s", path), m.Path(),
					"Only plain element names are created when missing")
			}
			next = xmltree.NewElement(seg)
			el.Append(next)
		}
		el = next
	}
	return el, nil
}

func isPlainSegment(seg string) bool {
	return seg != "" && !strings.ContainsAny(seg, "[]*@.()=")
}

// insertIndex is the child position after the last child carrying the first
// tag of after (a ';'-separated list) that is present, or 0 when none is.
func insertIndex(parent *xmltree.Element, after string) int {
	kids := parent.Children()
	for _, tag := range strings.Split(after, ";") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		last := -1
		for i, k := range kids {
			if k.Tag() == tag {
				last = i
			}
		}
		if last >= 0 {
			return last + 1
		}
	}
	return 0
}

func hasEqualChild(parent, frag *xmltree.Element) bool {
	for _, k := range parent.Children() {
		if k.Equal(frag) {
			return true
		}
	}
	return false
}
