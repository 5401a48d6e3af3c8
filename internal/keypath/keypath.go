// Package keypath implements the bidirectional codec between nested
// JSON values and flat dotted key paths. A key path joins the object
// keys and list indices from root to leaf with "." separators; list
// indices render as "[<n>]". In tree mode, literal dots inside object
// keys are escaped as `\.` so that nested structure survives a full
// flatten/nest round trip.
package keypath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrShapeConflict indicates two key paths disagree about whether a
// shared prefix addresses a list or an object. The input violates the
// codec's consistency precondition and cannot be nested.
var ErrShapeConflict = errors.New("key paths disagree about container shape")

// indexPattern matches a list-index segment. Anything that is not a
// full match is a literal object key, never an error.
var indexPattern = regexp.MustCompile(`^\[(\d+)\]$`)

// EscapeKey escapes literal dots in an object key so they are not
// mistaken for path separators.
func EscapeKey(key string) string {
	return strings.ReplaceAll(key, ".", `\.`)
}

// UnescapeKey reverses EscapeKey.
func UnescapeKey(key string) string {
	return strings.ReplaceAll(key, `\.`, ".")
}

// Flatten converts a JSON value into an ordered flat mapping from key
// path to leaf. Output order is the depth-first, in-order traversal of
// the input. With escapeDots, object keys are escaped (tree mode);
// without it, keys containing literal dots become indistinguishable
// from nested structure.
func Flatten(v Value, escapeDots bool) *Flat {
	flat := NewFlat()
	flattenInto(flat, v, "", escapeDots)
	return flat
}

func flattenInto(flat *Flat, v Value, prefix string, escapeDots bool) {
	switch t := v.(type) {
	case *Object:
		for _, key := range t.Keys() {
			seg := key
			if escapeDots {
				seg = EscapeKey(key)
			}
			child, _ := t.Get(key)
			flattenInto(flat, child, joinPath(prefix, seg), escapeDots)
		}
	case *Array:
		for i, item := range t.Items {
			flattenInto(flat, item, joinPath(prefix, "["+strconv.Itoa(i)+"]"), escapeDots)
		}
	default:
		// String or Null leaf.
		flat.Set(prefix, v)
	}
}

func joinPath(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}

// segment is one decoded step of a key path: either a list index or an
// object key with escapes resolved.
type segment struct {
	key     string
	index   int
	isIndex bool
}

// splitPath splits a key path on unescaped dots, keeping escape
// sequences intact for parseSegment to resolve.
func splitPath(path string) []string {
	var segs []string
	var cur strings.Builder
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '\\' && i+1 < len(path) {
			cur.WriteByte(c)
			i++
			cur.WriteByte(path[i])
			continue
		}
		if c == '.' {
			segs = append(segs, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	return append(segs, cur.String())
}

func parseSegment(raw string) segment {
	if m := indexPattern.FindStringSubmatch(raw); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return segment{index: n, isIndex: true}
		}
	}
	return segment{key: UnescapeKey(raw)}
}

// Nest reconstructs a JSON value from a flat key-path mapping,
// creating intermediate containers on demand. The container kind at
// each step is decided by the segment addressing it; list positions
// below the target index are padded with nulls. Paths that disagree
// about a prefix's container kind yield ErrShapeConflict.
func Nest(flat *Flat) (Value, error) {
	var root Value
	for _, path := range flat.Keys() {
		leaf, _ := flat.Get(path)
		raw := splitPath(path)
		segs := make([]segment, len(raw))
		for i, r := range raw {
			segs[i] = parseSegment(r)
		}
		var err error
		root, err = insert(root, segs, leaf, path)
		if err != nil {
			return nil, err
		}
	}
	if root == nil {
		root = NewObject()
	}
	return root, nil
}

func insert(container Value, segs []segment, leaf Value, path string) (Value, error) {
	seg := segs[0]
	if seg.isIndex {
		arr, ok := container.(*Array)
		if container == nil {
			arr = &Array{}
			ok = true
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q indexes into a non-list", ErrShapeConflict, path)
		}
		for len(arr.Items) <= seg.index {
			arr.Items = append(arr.Items, Null{})
		}
		if len(segs) == 1 {
			arr.Items[seg.index] = leaf
			return arr, nil
		}
		child, err := insert(placeholderToNil(arr.Items[seg.index]), segs[1:], leaf, path)
		if err != nil {
			return nil, err
		}
		arr.Items[seg.index] = child
		return arr, nil
	}
	obj, ok := container.(*Object)
	if container == nil {
		obj = NewObject()
		ok = true
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q keys into a non-object", ErrShapeConflict, path)
	}
	if len(segs) == 1 {
		obj.Set(seg.key, leaf)
		return obj, nil
	}
	existing, _ := obj.Get(seg.key)
	child, err := insert(placeholderToNil(existing), segs[1:], leaf, path)
	if err != nil {
		return nil, err
	}
	obj.Set(seg.key, child)
	return obj, nil
}

// placeholderToNil treats a null padding placeholder as an absent
// container so a later path can descend through it.
func placeholderToNil(v Value) Value {
	if _, ok := v.(Null); ok {
		return nil
	}
	return v
}
