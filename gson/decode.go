// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gson

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// decoder is a hand-rolled, byte-level recursive-descent reader over a
// GraphSON document. It never builds a generic JSON tree: every tagged
// object is dispatched on its "@type" value before its payload is parsed
// into the matching Go shape.
type decoder struct {
	buf []byte
	pos int
}

// Decode parses a single GraphSON value from data, returning the value and
// the number of bytes consumed.
func Decode(data []byte) (Value, int, error) {
	d := &decoder{buf: data}
	v, err := d.decodeAny(false)
	if err != nil {
		return nil, d.pos, err
	}
	return v, d.pos, nil
}

// DecodeResultArray parses a top-level `result.data` JSON array, applying
// traverser unwrapping to each element: a `g:Traverser` envelope is
// replaced by its inner value and its bulk count discarded. Nested arrays
// are decoded verbatim; only this outermost array gets the treatment.
func DecodeResultArray(data []byte) ([]Value, error) {
	d := &decoder{buf: data}
	d.skipSpace()
	v, err := d.decodeArray(true)
	if err != nil {
		return nil, err
	}
	return []Value(v.(List)), nil
}

func (d *decoder) eof() bool { return d.pos >= len(d.buf) }

func (d *decoder) peekByte() (byte, error) {
	if d.eof() {
		return 0, errEOF(d.pos)
	}
	return d.buf[d.pos], nil
}

func (d *decoder) nextByte() (byte, error) {
	b, err := d.peekByte()
	if err != nil {
		return 0, err
	}
	d.pos++
	return b, nil
}

func (d *decoder) skipSpace() {
	for !d.eof() {
		switch d.buf[d.pos] {
		case ' ', '\t', '\n', '\r':
			d.pos++
		default:
			return
		}
	}
}

func (d *decoder) expectByte(c byte) error {
	d.skipSpace()
	b, err := d.nextByte()
	if err != nil {
		return err
	}
	if b != c {
		return errSyntax(d.pos-1, string(c), string(b))
	}
	return nil
}

func (d *decoder) hasPrefix(s string) bool {
	if d.pos+len(s) > len(d.buf) {
		return false
	}
	return string(d.buf[d.pos:d.pos+len(s)]) == s
}

func (d *decoder) consumePrefix(s string) bool {
	if !d.hasPrefix(s) {
		return false
	}
	d.pos += len(s)
	return true
}

// decodeAny is the dispatch point mirroring the original deserializer's
// deserialize_any: peek the first byte, and for objects peek further to see
// whether the first key is a literal "@type" naming a known g: variant.
func (d *decoder) decodeAny(checkTraverser bool) (Value, error) {
	d.skipSpace()
	b, err := d.peekByte()
	if err != nil {
		return nil, err
	}
	switch b {
	case '{':
		return d.decodeObject()
	case '[':
		return d.decodeArray(checkTraverser)
	case '"':
		s, err := d.decodeRawString()
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	case 't', 'f':
		return d.decodeBool()
	case 'n':
		return d.decodeNull()
	default:
		return nil, errDataType(d.pos, "bare numbers are not valid outside a tagged @type/@value pair")
	}
}

func (d *decoder) decodeBool() (Value, error) {
	if d.consumePrefix("true") {
		return Bool(true), nil
	}
	if d.consumePrefix("false") {
		return Bool(false), nil
	}
	return nil, errSyntax(d.pos, "true|false", "")
}

func (d *decoder) decodeNull() (Value, error) {
	if d.consumePrefix("null") {
		return Null{}, nil
	}
	return nil, errSyntax(d.pos, "null", "")
}

func (d *decoder) decodeRawString() (string, error) {
	if err := d.expectByte('"'); err != nil {
		return "", err
	}
	start := d.pos
	var out []byte
	escaped := false
	for {
		b, err := d.nextByte()
		if err != nil {
			return "", err
		}
		if escaped {
			escaped = false
			switch b {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			case '"', '\\', '/':
				out = append(out, b)
			case 'u':
				if d.pos+4 > len(d.buf) {
					return "", errEOF(d.pos)
				}
				code, perr := strconv.ParseUint(string(d.buf[d.pos:d.pos+4]), 16, 32)
				if perr != nil {
					return "", errSyntax(d.pos, "hex escape", string(d.buf[d.pos:d.pos+4]))
				}
				d.pos += 4
				var tmp [4]byte
				n := utf8.EncodeRune(tmp[:], rune(code))
				out = append(out, tmp[:n]...)
			default:
				out = append(out, b)
			}
			continue
		}
		if b == '\\' {
			escaped = true
			continue
		}
		if b == '"' {
			break
		}
		out = append(out, b)
	}
	if out == nil {
		return string(d.buf[start : d.pos-1 : d.pos-1]), nil
	}
	if !utf8.Valid(out) {
		return "", &DecodeError{Kind: KindInvalidUTF8, Offset: start}
	}
	return string(out), nil
}

// decodeBulk consumes a traverser's bulk field, which may be a bare
// integer or a tagged g:Int64 value, and returns it; decodeTraverser
// discards it either way.
func (d *decoder) decodeBulk() (Value, error) {
	d.skipSpace()
	b, err := d.peekByte()
	if err != nil {
		return nil, err
	}
	if b == '{' {
		return d.decodeAny(false)
	}
	n, err := d.decodeRawNumber()
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseInt(n, 10, 64)
	if err != nil {
		return nil, &DecodeError{Kind: KindParseInt, Offset: d.pos, Message: err.Error()}
	}
	return Int64(v), nil
}

func (d *decoder) decodeRawNumber() (string, error) {
	start := d.pos
	if !d.eof() && d.buf[d.pos] == '-' {
		d.pos++
	}
	for !d.eof() {
		c := d.buf[d.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			d.pos++
			continue
		}
		break
	}
	if d.pos == start {
		return "", errSyntax(d.pos, "number", "")
	}
	return string(d.buf[start:d.pos]), nil
}

// decodeArray decodes a JSON array. When checkTraverser is true, each
// element is first tested for a g:Traverser envelope and unwrapped in
// place; the flag is never propagated to nested arrays.
func (d *decoder) decodeArray(checkTraverser bool) (Value, error) {
	if err := d.expectByte('['); err != nil {
		return nil, err
	}
	d.skipSpace()
	out := List{}
	b, err := d.peekByte()
	if err != nil {
		return nil, err
	}
	if b == ']' {
		d.pos++
		return out, nil
	}
	for {
		var elem Value
		if checkTraverser && d.hasPrefix(`{"@type":"g:Traverser",`) {
			elem, err = d.decodeTraverser()
		} else {
			elem, err = d.decodeAny(false)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
		d.skipSpace()
		b, err := d.nextByte()
		if err != nil {
			return nil, err
		}
		if b == ']' {
			break
		}
		if b != ',' {
			return nil, errSeparator(d.pos-1, ",", string(b))
		}
		d.skipSpace()
	}
	return out, nil
}

// decodeTraverser consumes a `{"@type":"g:Traverser","@value":{"bulk":N,
// "value":X}}` envelope and returns X, discarding the bulk count per the
// single-copy semantics this client adopts.
func (d *decoder) decodeTraverser() (Value, error) {
	if !d.consumePrefix(`{"@type":"g:Traverser",`) {
		return nil, errSyntax(d.pos, `{"@type":"g:Traverser",`, "")
	}
	if !d.consumePrefix(`"@value":`) {
		return nil, errSyntax(d.pos, `"@value":`, "")
	}
	if err := d.expectByte('{'); err != nil {
		return nil, err
	}
	d.skipSpace()
	if !d.consumePrefix(`"bulk":`) {
		return nil, errSyntax(d.pos, `"bulk":`, "")
	}
	// bulk may arrive as a bare number or a tagged g:Int64 value depending
	// on server version; either way it is discarded under single-copy
	// semantics (see the bulk-discard resolution in the design notes).
	if _, err := d.decodeBulk(); err != nil {
		return nil, err
	}
	d.skipSpace()
	if err := d.expectByte(','); err != nil {
		return nil, err
	}
	d.skipSpace()
	if !d.consumePrefix(`"value":`) {
		return nil, errSyntax(d.pos, `"value":`, "")
	}
	inner, err := d.decodeAny(false)
	if err != nil {
		return nil, err
	}
	d.skipSpace()
	if err := d.expectByte('}'); err != nil {
		return nil, err
	}
	d.skipSpace()
	if err := d.expectByte('}'); err != nil {
		return nil, err
	}
	return inner, nil
}

// decodeObject decides, from its first key, whether this object is a
// tagged @type/@value pair naming a known g: variant, or a plain Map.
func (d *decoder) decodeObject() (Value, error) {
	if d.hasPrefix(`{"@type":"`) {
		save := d.pos
		d.pos += len(`{"@type":`)
		tag, err := d.decodeRawString()
		if err == nil {
			if strings.HasPrefix(tag, "g:") {
				v, ok, verr := d.decodeTagged(tag)
				if !ok {
					return nil, errDataType(save, "unrecognized graphson type tag "+tag)
				}
				return v, verr
			}
		}
		d.pos = save
	}
	return d.decodeMap()
}

// decodeTagged parses the `,"@value":<payload>}` tail for a recognized g:
// tag. The bool return reports whether tag was recognized at all; when
// false the caller fails with an invalid-data-type error.
func (d *decoder) decodeTagged(tag string) (Value, bool, error) {
	parse := func(f func() (Value, error)) (Value, bool, error) {
		if err := d.expectByte(','); err != nil {
			return nil, true, err
		}
		if !d.consumePrefix(`"@value":`) {
			return nil, true, errSyntax(d.pos, `"@value":`, "")
		}
		v, err := f()
		if err != nil {
			return nil, true, err
		}
		if err := d.expectByte('}'); err != nil {
			return nil, true, err
		}
		return v, true, nil
	}

	switch tag {
	case "g:Date":
		return parse(func() (Value, error) { n, err := d.readInt(); return Date(n), err })
	case "g:Timestamp":
		return parse(func() (Value, error) { n, err := d.readInt(); return Timestamp(n), err })
	case "g:Double":
		return parse(func() (Value, error) { f, err := d.readFloat(64); return Double(f), err })
	case "g:Float":
		return parse(func() (Value, error) { f, err := d.readFloat(32); return Float(f), err })
	case "g:Int32":
		return parse(func() (Value, error) { n, err := d.readInt(); return Int32(n), err })
	case "g:Int64":
		return parse(func() (Value, error) { n, err := d.readInt(); return Int64(n), err })
	case "g:UUID":
		return parse(func() (Value, error) {
			s, err := d.decodeRawString()
			if err != nil {
				return nil, err
			}
			u, err := uuid.Parse(s)
			if err != nil {
				return nil, errCustom(d.pos, "invalid uuid: "+err.Error())
			}
			return UUID(u), nil
		})
	case "g:Cardinality":
		return parse(func() (Value, error) { s, err := d.decodeRawString(); return Cardinality(s), err })
	case "g:Operator":
		return parse(func() (Value, error) { s, err := d.decodeRawString(); return Operator(s), err })
	case "g:Order":
		return parse(func() (Value, error) { s, err := d.decodeRawString(); return Order(s), err })
	case "g:P":
		return parse(func() (Value, error) { return d.decodePredicateFields() })
	case "g:TextP":
		return parse(func() (Value, error) { return d.decodeTextPredicateFields() })
	case "g:Bytecode":
		return parse(func() (Value, error) { return d.decodeBytecodeFields() })
	case "g:Vertex":
		return parse(func() (Value, error) { return d.decodeVertexFields() })
	case "g:Edge":
		return parse(func() (Value, error) { return d.decodeEdgeFields() })
	case "g:VertexProperty":
		return parse(func() (Value, error) { return d.decodeVertexPropertyFields() })
	case "g:Property":
		return parse(func() (Value, error) { return d.decodePropertyFields() })
	case "g:Path":
		return parse(func() (Value, error) { return d.decodePathFields() })
	default:
		return nil, false, nil
	}
}

func (d *decoder) readInt() (int64, error) {
	d.skipSpace()
	s, err := d.decodeRawNumber()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &DecodeError{Kind: KindParseInt, Offset: d.pos, Message: err.Error()}
	}
	return n, nil
}

func (d *decoder) readFloat(bits int) (float64, error) {
	d.skipSpace()
	s, err := d.decodeRawNumber()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, &DecodeError{Kind: KindParseFloat, Offset: d.pos, Message: err.Error()}
	}
	return f, nil
}

// decodeMap reads a generic {"k": v, ...} object into a Map, recursing
// into each value with decodeAny (never traverser-checked: only the
// outermost result.data array gets that treatment).
func (d *decoder) decodeMap() (Value, error) {
	if err := d.expectByte('{'); err != nil {
		return nil, err
	}
	out := Map{}
	d.skipSpace()
	b, err := d.peekByte()
	if err != nil {
		return nil, err
	}
	if b == '}' {
		d.pos++
		return out, nil
	}
	for {
		d.skipSpace()
		key, err := d.decodeRawString()
		if err != nil {
			return nil, err
		}
		d.skipSpace()
		if err := d.expectByte(':'); err != nil {
			return nil, err
		}
		val, err := d.decodeAny(false)
		if err != nil {
			return nil, err
		}
		out[key] = val
		d.skipSpace()
		b, err := d.nextByte()
		if err != nil {
			return nil, err
		}
		if b == '}' {
			break
		}
		if b != ',' {
			return nil, errSeparator(d.pos-1, ",", string(b))
		}
	}
	return out, nil
}

// fieldMap reads the remainder of a `{"k": v, ...}` object into a plain Go
// map, used to resolve the small fixed-schema payloads (Vertex, Edge, ...)
// without caring about field order.
func (d *decoder) fieldMap() (map[string]Value, error) {
	if err := d.expectByte('{'); err != nil {
		return nil, err
	}
	out := map[string]Value{}
	d.skipSpace()
	b, err := d.peekByte()
	if err != nil {
		return nil, err
	}
	if b == '}' {
		d.pos++
		return out, nil
	}
	for {
		d.skipSpace()
		key, err := d.decodeRawString()
		if err != nil {
			return nil, err
		}
		d.skipSpace()
		if err := d.expectByte(':'); err != nil {
			return nil, err
		}
		val, err := d.decodeAny(false)
		if err != nil {
			return nil, err
		}
		out[key] = val
		d.skipSpace()
		b, err := d.nextByte()
		if err != nil {
			return nil, err
		}
		if b == '}' {
			break
		}
		if b != ',' {
			return nil, errSeparator(d.pos-1, ",", string(b))
		}
	}
	return out, nil
}

func asStr(v Value) string {
	if s, ok := v.(Str); ok {
		return string(s)
	}
	return ""
}

func (d *decoder) decodeVertexFields() (Value, error) {
	f, err := d.fieldMap()
	if err != nil {
		return nil, err
	}
	return Vertex{ID: f["id"], Label: asStr(f["label"])}, nil
}

func (d *decoder) decodeEdgeFields() (Value, error) {
	f, err := d.fieldMap()
	if err != nil {
		return nil, err
	}
	return Edge{
		ID:        f["id"],
		Label:     asStr(f["label"]),
		InVLabel:  asStr(f["inVLabel"]),
		OutVLabel: asStr(f["outVLabel"]),
		InV:       f["inV"],
		OutV:      f["outV"],
	}, nil
}

func (d *decoder) decodeVertexPropertyFields() (Value, error) {
	f, err := d.fieldMap()
	if err != nil {
		return nil, err
	}
	return VertexProperty{ID: f["id"], Label: asStr(f["label"]), Value: f["value"]}, nil
}

func (d *decoder) decodePropertyFields() (Value, error) {
	f, err := d.fieldMap()
	if err != nil {
		return nil, err
	}
	return Property{Key: asStr(f["key"]), Value: f["value"]}, nil
}

func (d *decoder) decodePathFields() (Value, error) {
	f, err := d.fieldMap()
	if err != nil {
		return nil, err
	}
	return Path{Labels: f["labels"], Objects: f["objects"]}, nil
}

func (d *decoder) decodePredicateFields() (Value, error) {
	f, err := d.fieldMap()
	if err != nil {
		return nil, err
	}
	return Predicate{Op: PredicateOp(asStr(f["predicate"])), Value: f["value"]}, nil
}

func (d *decoder) decodeTextPredicateFields() (Value, error) {
	f, err := d.fieldMap()
	if err != nil {
		return nil, err
	}
	return TextPredicate{Op: TextPredicateOp(asStr(f["predicate"])), Value: asStr(f["value"])}, nil
}

func (d *decoder) decodeBytecodeFields() (Value, error) {
	if err := d.expectByte('{'); err != nil {
		return nil, err
	}
	d.skipSpace()
	if !d.consumePrefix(`"step":`) {
		return nil, errSyntax(d.pos, `"step":`, "")
	}
	if err := d.expectByte('['); err != nil {
		return nil, err
	}
	d.skipSpace()
	bc := Bytecode{}
	b, err := d.peekByte()
	if err != nil {
		return nil, err
	}
	if b == ']' {
		d.pos++
	} else {
		for {
			stepVal, err := d.decodeArray(false)
			if err != nil {
				return nil, err
			}
			bc.Step = append(bc.Step, Step(stepVal.(List)))
			d.skipSpace()
			b, err := d.nextByte()
			if err != nil {
				return nil, err
			}
			if b == ']' {
				break
			}
			if b != ',' {
				return nil, errSeparator(d.pos-1, ",", string(b))
			}
			d.skipSpace()
		}
	}
	d.skipSpace()
	if err := d.expectByte('}'); err != nil {
		return nil, err
	}
	return bc, nil
}
