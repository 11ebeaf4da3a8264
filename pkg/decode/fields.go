package decode

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// reader extracts typed fields from one decoded JSON object. The first
// failure is kept and every later accessor becomes a no-op returning the
// zero value, so variant decoders read straight through and check Err once.
type reader struct {
	obj      map[string]any
	ctx      Context
	tr       Translator
	err      *DecodeError
	degraded []string
	path     string
}

func newReader(obj map[string]any, ctx Context, tr Translator) *reader {
	return &reader{obj: obj, ctx: ctx, tr: tr}
}

func (r *reader) child(obj map[string]any, path string) *reader {
	return &reader{obj: obj, ctx: r.ctx, tr: r.tr, path: path}
}

func (r *reader) name(field string) string {
	if r.path == "" {
		return field
	}
	return r.path + "." + field
}

func (r *reader) fail(err *DecodeError) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) missing(field string) {
	r.fail(MissingField(r.name(field)))
}

func (r *reader) mismatch(field, expected string, v any) {
	r.fail(TypeMismatch(r.name(field), expected, jsonKind(v)))
}

// Err returns the first failure, or nil.
func (r *reader) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// Has reports whether field is present and not null.
func (r *reader) Has(field string) bool {
	v, ok := r.obj[field]
	return ok && v != nil
}

func (r *reader) lookup(field string, required bool) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.obj[field]
	if !ok || v == nil {
		if required {
			r.missing(field)
		}
		return nil, false
	}
	return v, true
}

func (r *reader) str(field string, required bool) (string, bool) {
	v, ok := r.lookup(field, required)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		r.mismatch(field, "string", v)
		return "", false
	}
	return s, true
}

// String reads a required string.
func (r *reader) String(field string) string {
	s, _ := r.str(field, true)
	return s
}

// OptString reads an optional string.
func (r *reader) OptString(field string) *string {
	s, ok := r.str(field, false)
	if !ok {
		return nil
	}
	return &s
}

// StringOr reads an optional string and substitutes def when absent.
func (r *reader) StringOr(field, def string) string {
	s, ok := r.str(field, false)
	if !ok {
		return def
	}
	return s
}

func (r *reader) number(field string, required bool) (json.Number, bool) {
	v, ok := r.lookup(field, required)
	if !ok {
		return "", false
	}
	n, ok := v.(json.Number)
	if !ok {
		r.mismatch(field, "number", v)
		return "", false
	}
	return n, true
}

func (r *reader) integer(field string, required bool) (int64, bool) {
	n, ok := r.number(field, required)
	if !ok {
		return 0, false
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return i, true
	}
	// 1e6 and 1500.0 are integral even though ParseInt rejects them.
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		r.fail(TypeMismatch(r.name(field), "integer", n.String()))
		return 0, false
	}
	return int64(f), true
}

// Int reads a required integer.
func (r *reader) Int(field string) int {
	i, _ := r.integer(field, true)
	return int(i)
}

// OptInt reads an optional integer.
func (r *reader) OptInt(field string) *int {
	i, ok := r.integer(field, false)
	if !ok {
		return nil
	}
	v := int(i)
	return &v
}

// IntOr reads an optional integer and substitutes def when absent.
func (r *reader) IntOr(field string, def int) int {
	i, ok := r.integer(field, false)
	if !ok {
		return def
	}
	return int(i)
}

// Int64 reads a required 64-bit integer.
func (r *reader) Int64(field string) int64 {
	i, _ := r.integer(field, true)
	return i
}

// OptInt64 reads an optional 64-bit integer.
func (r *reader) OptInt64(field string) *int64 {
	i, ok := r.integer(field, false)
	if !ok {
		return nil
	}
	return &i
}

// Credits reads a required money amount. Money is exact: a fractional
// value is a type mismatch, never rounded.
func (r *reader) Credits(field string) int64 {
	return r.Int64(field)
}

// OptCredits reads an optional money amount.
func (r *reader) OptCredits(field string) *int64 {
	return r.OptInt64(field)
}

// CreditsOr reads an optional money amount, zero when absent.
func (r *reader) CreditsOr(field string) int64 {
	i, _ := r.integer(field, false)
	return i
}

func (r *reader) float(field string, required bool) (float64, bool) {
	n, ok := r.number(field, required)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		r.fail(TypeMismatch(r.name(field), "float", n.String()))
		return 0, false
	}
	return f, true
}

// Float reads a required float.
func (r *reader) Float(field string) float64 {
	f, _ := r.float(field, true)
	return f
}

// OptFloat reads an optional float.
func (r *reader) OptFloat(field string) *float64 {
	f, ok := r.float(field, false)
	if !ok {
		return nil
	}
	return &f
}

// FloatOr reads an optional float and substitutes def when absent.
func (r *reader) FloatOr(field string, def float64) float64 {
	f, ok := r.float(field, false)
	if !ok {
		return def
	}
	return f
}

// Percent reads a required proportion and normalizes it to 0..100.
func (r *reader) Percent(field string, rt ratio) float64 {
	f, ok := r.float(field, true)
	if !ok {
		return 0
	}
	return toPercent(f, rt, r.ctx)
}

// OptPercent reads an optional proportion and normalizes it to 0..100.
func (r *reader) OptPercent(field string, rt ratio) *float64 {
	f, ok := r.float(field, false)
	if !ok {
		return nil
	}
	p := toPercent(f, rt, r.ctx)
	return &p
}

func (r *reader) boolean(field string, required bool) (bool, bool) {
	v, ok := r.lookup(field, required)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	if !ok {
		r.mismatch(field, "bool", v)
		return false, false
	}
	return b, true
}

// Bool reads a required boolean.
func (r *reader) Bool(field string) bool {
	b, _ := r.boolean(field, true)
	return b
}

// OptBool reads an optional boolean.
func (r *reader) OptBool(field string) *bool {
	b, ok := r.boolean(field, false)
	if !ok {
		return nil
	}
	return &b
}

// Flag reads an optional boolean that the journal omits when false.
func (r *reader) Flag(field string) bool {
	b, _ := r.boolean(field, false)
	return b
}

func (r *reader) timestamp(field string, required bool) (time.Time, bool) {
	s, ok := r.str(field, required)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		r.fail(TypeMismatch(r.name(field), "RFC 3339 time", strconv.Quote(s)))
		return time.Time{}, false
	}
	return t.UTC(), true
}

// Time reads a required RFC 3339 timestamp.
func (r *reader) Time(field string) time.Time {
	t, _ := r.timestamp(field, true)
	return t
}

// OptTime reads an optional RFC 3339 timestamp.
func (r *reader) OptTime(field string) *time.Time {
	t, ok := r.timestamp(field, false)
	if !ok {
		return nil
	}
	return &t
}

// Strings reads an optional array of strings.
func (r *reader) Strings(field string) []string {
	v, ok := r.lookup(field, false)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		r.mismatch(field, "array", v)
		return nil
	}
	out := make([]string, 0, len(arr))
	for i, el := range arr {
		s, ok := el.(string)
		if !ok {
			r.fail(TypeMismatch(fmt.Sprintf("%s[%d]", r.name(field), i), "string", jsonKind(el)))
			return nil
		}
		out = append(out, s)
	}
	return out
}

// Coords reads an optional [x, y, z] position.
func (r *reader) Coords(field string) *event.Coords {
	v, ok := r.lookup(field, false)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok || len(arr) != 3 {
		r.mismatch(field, "[x,y,z]", v)
		return nil
	}
	var xyz [3]float64
	for i, el := range arr {
		n, ok := el.(json.Number)
		if !ok {
			r.mismatch(field, "[x,y,z]", v)
			return nil
		}
		f, err := n.Float64()
		if err != nil {
			r.mismatch(field, "[x,y,z]", v)
			return nil
		}
		xyz[i] = f
	}
	return &event.Coords{X: xyz[0], Y: xyz[1], Z: xyz[2]}
}

// Named reads a required identifier and resolves its display label.
func (r *reader) Named(field string) event.Named {
	id, ok := r.str(field, true)
	if !ok {
		return event.Named{}
	}
	return r.resolve(field, id)
}

// OptNamed reads an optional identifier and resolves its display label.
func (r *reader) OptNamed(field string) *event.Named {
	id, ok := r.str(field, false)
	if !ok {
		return nil
	}
	n := r.resolve(field, id)
	return &n
}

func (r *reader) resolve(field, id string) event.Named {
	canon := CanonicalID(id)
	if loc, ok := r.obj[field+"_Localised"].(string); ok && loc != "" {
		return event.Named{ID: canon, Label: loc}
	}
	if r.tr != nil {
		if label := r.tr.Translate(canon); label != "" {
			return event.Named{ID: canon, Label: label}
		}
	}
	return event.Named{ID: canon, Label: FallbackLabel(id)}
}

// Enum reads a required enumeration constant through its alias table.
func (r *reader) Enum(domain, field string) string {
	s, ok := r.str(field, true)
	if !ok {
		return ""
	}
	return canonicalEnum(domain, s)
}

// OptEnum reads an optional enumeration constant through its alias table.
func (r *reader) OptEnum(domain, field string) *string {
	s, ok := r.str(field, false)
	if !ok {
		return nil
	}
	c := canonicalEnum(domain, s)
	return &c
}

// IntFields collects every integer-valued top-level field not in skip.
func (r *reader) IntFields(skip ...string) map[string]int {
	if r.err != nil {
		return nil
	}
	out := make(map[string]int)
	for _, k := range sortedKeys(r.obj) {
		if contains(skip, k) {
			continue
		}
		if _, ok := r.obj[k].(json.Number); !ok {
			continue
		}
		out[k] = r.Int(k)
	}
	return out
}

// FloatFields collects every numeric top-level field not in skip.
func (r *reader) FloatFields(skip ...string) map[string]float64 {
	if r.err != nil {
		return nil
	}
	out := make(map[string]float64)
	for _, k := range sortedKeys(r.obj) {
		if contains(skip, k) {
			continue
		}
		if _, ok := r.obj[k].(json.Number); !ok {
			continue
		}
		out[k] = r.Float(k)
	}
	return out
}

func (r *reader) degrade(note string) {
	r.degraded = append(r.degraded, note)
}

// sub decodes an optional nested object. A malformed object leaves the
// slot nil and is recorded as degraded; the parent decode continues.
func sub[T any](r *reader, field string, fn func(*reader) *T) *T {
	if r.err != nil {
		return nil
	}
	v, ok := r.obj[field]
	if !ok || v == nil {
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		r.degrade(fmt.Sprintf("%s: expected object, got %s", r.name(field), jsonKind(v)))
		return nil
	}
	c := r.child(obj, r.name(field))
	out := fn(c)
	r.degraded = append(r.degraded, c.degraded...)
	if c.err != nil {
		r.degrade(c.err.Error())
		return nil
	}
	return out
}

// each decodes an optional array of nested objects. A malformed element
// leaves its slot nil and is recorded as degraded, so positions survive.
func each[T any](r *reader, field string, fn func(*reader) *T) []*T {
	if r.err != nil {
		return nil
	}
	v, ok := r.obj[field]
	if !ok || v == nil {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		r.degrade(fmt.Sprintf("%s: expected array, got %s", r.name(field), jsonKind(v)))
		return nil
	}
	out := make([]*T, 0, len(arr))
	for i, el := range arr {
		path := fmt.Sprintf("%s[%d]", r.name(field), i)
		obj, ok := el.(map[string]any)
		if !ok {
			r.degrade(fmt.Sprintf("%s: expected object, got %s", path, jsonKind(el)))
			out = append(out, nil)
			continue
		}
		c := r.child(obj, path)
		item := fn(c)
		r.degraded = append(r.degraded, c.degraded...)
		if c.err != nil {
			r.degrade(c.err.Error())
			item = nil
		}
		out = append(out, item)
	}
	return out
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
