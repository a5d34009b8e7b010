package adf

import (
	"fmt"
	"io"
	"slices"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/mcncl/goadf/internal/parser"
)

// DecodeText parses text as JSON and decodes it into a node tree. Text that is
// not valid JSON fails with a MalformedInput error.
func DecodeText(text string) (Node, error) {
	v, err := parser.ParseString(text)
	if err != nil {
		return nil, &DecodeError{Kind: MalformedInput, Err: err}
	}
	return DecodeValue(v)
}

// Decode reads a single JSON value from r and decodes it into a node tree.
func Decode(r io.Reader) (Node, error) {
	v, err := parser.Parse(r)
	if err != nil {
		return nil, &DecodeError{Kind: MalformedInput, Err: err}
	}
	return DecodeValue(v)
}

// DecodeValue decodes a generic JSON value into a node tree. On failure no
// partial tree is returned and the error is a *DecodeError.
func DecodeValue(v Value) (Node, error) {
	d := &decoder{}
	return d.node(v)
}

// DecodeDoc decodes text whose root must be a doc node.
func DecodeDoc(text string) (*Doc, error) {
	v, err := parser.ParseString(text)
	if err != nil {
		return nil, &DecodeError{Kind: MalformedInput, Err: err}
	}
	return decodeDoc(v)
}

func decodeDoc(v Value) (*Doc, error) {
	n, err := DecodeValue(v)
	if err != nil {
		return nil, err
	}
	doc, ok := n.(*Doc)
	if !ok {
		return nil, &DecodeError{Kind: TypeMismatch, Variant: string(n.Kind()), Expected: "a doc node at the root"}
	}
	return doc, nil
}

// nodeSpec is the field contract of one node variant.
type nodeSpec struct {
	keys   mapset.Set[string]
	decode func(f fields) (Node, error)
}

type markSpec struct {
	keys   mapset.Set[string]
	decode func(f fields) (Mark, error)
}

// attrsSpec is the field contract of one attrs record.
type attrsSpec[T any] struct {
	keys   mapset.Set[string]
	decode func(f fields) (T, error)
}

// keys builds the allowed key set of a node or mark object. The sets are only
// read after package initialization, so the unsynchronized variant is enough.
func keys(names ...string) mapset.Set[string] {
	return mapset.NewThreadUnsafeSet(append([]string{"type"}, names...)...)
}

// attrKeys builds the allowed key set of an attrs object.
func attrKeys(names ...string) mapset.Set[string] {
	return mapset.NewThreadUnsafeSet(names...)
}

// decoder tracks the path from the root to the value being decoded.
type decoder struct {
	path []string
}

func (d *decoder) push(segment string) {
	d.path = append(d.path, segment)
}

func (d *decoder) pop() {
	d.path = d.path[:len(d.path)-1]
}

func (d *decoder) fail(e *DecodeError) *DecodeError {
	e.Path = slices.Clone(d.path)
	if e.Field != "" {
		e.Path = append(e.Path, e.Field)
	}
	return e
}

func (d *decoder) node(v Value) (Node, error) {
	obj, ok := v.(Object)
	if !ok {
		return nil, d.fail(&DecodeError{Kind: TypeMismatch, Expected: "a node object"})
	}
	tag, _ := obj["type"].(string)
	spec, ok := nodeSpecs[NodeKind(tag)]
	if !ok {
		return nil, d.fail(&DecodeError{Kind: UnknownVariant, Tag: tag})
	}

	d.push(tag)
	defer d.pop()
	if err := d.checkKeys(tag, obj, spec.keys); err != nil {
		return nil, err
	}
	return spec.decode(fields{d: d, variant: tag, obj: obj})
}

func (d *decoder) mark(v Value) (Mark, error) {
	obj, ok := v.(Object)
	if !ok {
		return nil, d.fail(&DecodeError{Kind: TypeMismatch, Expected: "a mark object"})
	}
	tag, _ := obj["type"].(string)
	kind := MarkKind(tag)
	if alias, ok := markAliases[tag]; ok {
		kind = alias
	}
	spec, ok := markSpecs[kind]
	if !ok {
		return nil, d.fail(&DecodeError{Kind: UnknownVariant, Tag: tag})
	}

	d.push(tag)
	defer d.pop()
	if err := d.checkKeys(tag, obj, spec.keys); err != nil {
		return nil, err
	}
	return spec.decode(fields{d: d, variant: tag, obj: obj})
}

// checkKeys rejects keys the variant does not declare. The first offending key
// in sorted order is reported so that errors are deterministic.
func (d *decoder) checkKeys(variant string, obj Object, allowed mapset.Set[string]) error {
	var extra []string
	for key := range obj {
		if !allowed.Contains(key) {
			extra = append(extra, key)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)
	return d.fail(&DecodeError{Kind: UnexpectedField, Variant: variant, Field: extra[0]})
}

// fields reads the keys of one JSON object on behalf of a variant.
type fields struct {
	d       *decoder
	variant string
	obj     Object
}

func (f fields) missing(key string) error {
	return f.d.fail(&DecodeError{Kind: MissingField, Variant: f.variant, Field: key})
}

func (f fields) mismatch(key, expected string) error {
	return f.d.fail(&DecodeError{Kind: TypeMismatch, Variant: f.variant, Field: key, Expected: expected})
}

// required reads a key that must be present and non-null.
func required[T any](f fields, key string, s scalar[T]) (T, error) {
	var zero T
	raw, ok := f.obj[key]
	if !ok {
		return zero, f.missing(key)
	}
	v, ok := s.conv(raw)
	if !ok {
		return zero, f.mismatch(key, s.name)
	}
	return v, nil
}

// optional reads a key that may be absent. An explicit null counts as absent.
func optional[T any](f fields, key string, s scalar[T]) (*T, error) {
	raw, ok := f.obj[key]
	if !ok || raw == nil {
		return nil, nil
	}
	v, ok := s.conv(raw)
	if !ok {
		return nil, f.mismatch(key, s.name)
	}
	return &v, nil
}

// optionalList reads an optional array of scalars. Absent and null give nil; an
// empty array gives a pointer to an empty slice.
func optionalList[T any](f fields, key string, s scalar[T]) (*[]T, error) {
	raw, ok := f.obj[key]
	if !ok || raw == nil {
		return nil, nil
	}
	arr, ok := raw.(Array)
	if !ok {
		return nil, f.mismatch(key, "an array")
	}
	out := make([]T, 0, len(arr))
	for i, item := range arr {
		v, ok := s.conv(item)
		if !ok {
			return nil, f.mismatch(fmt.Sprintf("%s[%d]", key, i), s.name)
		}
		out = append(out, v)
	}
	return &out, nil
}

// content reads a required "content" array.
func (f fields) content() ([]Node, error) {
	raw, ok := f.obj["content"]
	if !ok {
		return nil, f.missing("content")
	}
	return f.nodes(raw)
}

// optionalContent reads a "content" array that may be absent.
func (f fields) optionalContent() (*[]Node, error) {
	raw, ok := f.obj["content"]
	if !ok || raw == nil {
		return nil, nil
	}
	nodes, err := f.nodes(raw)
	if err != nil {
		return nil, err
	}
	return &nodes, nil
}

func (f fields) nodes(raw Value) ([]Node, error) {
	arr, ok := raw.(Array)
	if !ok {
		return nil, f.mismatch("content", "an array of nodes")
	}
	out := make([]Node, 0, len(arr))
	for i, item := range arr {
		f.d.push(fmt.Sprintf("content[%d]", i))
		n, err := f.d.node(item)
		f.d.pop()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// marks reads the optional "marks" array. Absent, null and empty all give nil.
func (f fields) marks() ([]Mark, error) {
	raw, ok := f.obj["marks"]
	if !ok || raw == nil {
		return nil, nil
	}
	arr, ok := raw.(Array)
	if !ok {
		return nil, f.mismatch("marks", "an array of marks")
	}
	if len(arr) == 0 {
		return nil, nil
	}
	out := make([]Mark, 0, len(arr))
	for i, item := range arr {
		f.d.push(fmt.Sprintf("marks[%d]", i))
		m, err := f.d.mark(item)
		f.d.pop()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// requiredAttrs reads an "attrs" object that must be present.
func requiredAttrs[T any](f fields, spec attrsSpec[T]) (T, error) {
	var zero T
	raw, ok := f.obj["attrs"]
	if !ok {
		return zero, f.missing("attrs")
	}
	return decodeAttrs(f, raw, spec)
}

// optionalAttrs reads an "attrs" object that may be absent or null.
func optionalAttrs[T any](f fields, spec attrsSpec[T]) (*T, error) {
	raw, ok := f.obj["attrs"]
	if !ok || raw == nil {
		return nil, nil
	}
	attrs, err := decodeAttrs(f, raw, spec)
	if err != nil {
		return nil, err
	}
	return &attrs, nil
}

func decodeAttrs[T any](f fields, raw Value, spec attrsSpec[T]) (T, error) {
	var zero T
	obj, ok := raw.(Object)
	if !ok {
		return zero, f.mismatch("attrs", "an object")
	}
	f.d.push("attrs")
	defer f.d.pop()
	if err := f.d.checkKeys(f.variant, obj, spec.keys); err != nil {
		return zero, err
	}
	return spec.decode(fields{d: f.d, variant: f.variant, obj: obj})
}
