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
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Marshal encodes a Value into its canonical GraphSON v2.0 byte
// representation: @type before @value on every tagged entry, literals
// (string, bool, null) written bare.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v Value) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case Str:
		writeJSONString(buf, string(t))
	case Bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Null:
		buf.WriteString("null")
	case Date:
		return writeTagged(buf, "g:Date", func() error { writeInt(buf, int64(t)); return nil })
	case Timestamp:
		return writeTagged(buf, "g:Timestamp", func() error { writeInt(buf, int64(t)); return nil })
	case Double:
		return writeTagged(buf, "g:Double", func() error { writeFloat(buf, float64(t), 64); return nil })
	case Float:
		return writeTagged(buf, "g:Float", func() error { writeFloat(buf, float64(t), 32); return nil })
	case Int32:
		return writeTagged(buf, "g:Int32", func() error { writeInt(buf, int64(t)); return nil })
	case Int64:
		return writeTagged(buf, "g:Int64", func() error { writeInt(buf, int64(t)); return nil })
	case UUID:
		return writeTagged(buf, "g:UUID", func() error { writeJSONString(buf, uuid.UUID(t).String()); return nil })
	case List:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case Map:
		buf.WriteByte('{')
		first := true
		for k, e := range t {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if err := encodeValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case Vertex:
		return writeTagged(buf, "g:Vertex", func() error {
			buf.WriteString(`{"id":`)
			if err := encodeValue(buf, t.ID); err != nil {
				return err
			}
			buf.WriteString(`,"label":`)
			writeJSONString(buf, t.Label)
			buf.WriteByte('}')
			return nil
		})
	case Edge:
		return writeTagged(buf, "g:Edge", func() error {
			buf.WriteString(`{"id":`)
			if err := encodeValue(buf, t.ID); err != nil {
				return err
			}
			buf.WriteString(`,"label":`)
			writeJSONString(buf, t.Label)
			buf.WriteString(`,"inVLabel":`)
			writeJSONString(buf, t.InVLabel)
			buf.WriteString(`,"outVLabel":`)
			writeJSONString(buf, t.OutVLabel)
			buf.WriteString(`,"inV":`)
			if err := encodeValue(buf, t.InV); err != nil {
				return err
			}
			buf.WriteString(`,"outV":`)
			if err := encodeValue(buf, t.OutV); err != nil {
				return err
			}
			buf.WriteByte('}')
			return nil
		})
	case VertexProperty:
		return writeTagged(buf, "g:VertexProperty", func() error {
			buf.WriteString(`{"id":`)
			if err := encodeValue(buf, t.ID); err != nil {
				return err
			}
			buf.WriteString(`,"label":`)
			writeJSONString(buf, t.Label)
			buf.WriteString(`,"value":`)
			if err := encodeValue(buf, t.Value); err != nil {
				return err
			}
			buf.WriteByte('}')
			return nil
		})
	case Property:
		return writeTagged(buf, "g:Property", func() error {
			buf.WriteString(`{"key":`)
			writeJSONString(buf, t.Key)
			buf.WriteString(`,"value":`)
			if err := encodeValue(buf, t.Value); err != nil {
				return err
			}
			buf.WriteByte('}')
			return nil
		})
	case Path:
		return writeTagged(buf, "g:Path", func() error {
			buf.WriteString(`{"labels":`)
			if err := encodeValue(buf, t.Labels); err != nil {
				return err
			}
			buf.WriteString(`,"objects":`)
			if err := encodeValue(buf, t.Objects); err != nil {
				return err
			}
			buf.WriteByte('}')
			return nil
		})
	case Cardinality:
		return writeTagged(buf, "g:Cardinality", func() error { writeJSONString(buf, string(t)); return nil })
	case Operator:
		return writeTagged(buf, "g:Operator", func() error { writeJSONString(buf, string(t)); return nil })
	case Order:
		return writeTagged(buf, "g:Order", func() error { writeJSONString(buf, string(t)); return nil })
	case Predicate:
		return writeTagged(buf, "g:P", func() error {
			buf.WriteString(`{"predicate":`)
			writeJSONString(buf, string(t.Op))
			buf.WriteString(`,"value":`)
			if err := encodeValue(buf, t.Value); err != nil {
				return err
			}
			buf.WriteByte('}')
			return nil
		})
	case TextPredicate:
		return writeTagged(buf, "g:TextP", func() error {
			buf.WriteString(`{"predicate":`)
			writeJSONString(buf, string(t.Op))
			buf.WriteString(`,"value":`)
			writeJSONString(buf, t.Value)
			buf.WriteByte('}')
			return nil
		})
	case Bytecode:
		return writeTagged(buf, "g:Bytecode", func() error {
			buf.WriteString(`{"step":[`)
			for i, step := range t.Step {
				if i > 0 {
					buf.WriteByte(',')
				}
				buf.WriteByte('[')
				for j, arg := range step {
					if j > 0 {
						buf.WriteByte(',')
					}
					if err := encodeValue(buf, arg); err != nil {
						return err
					}
				}
				buf.WriteByte(']')
			}
			buf.WriteString(`]}`)
			return nil
		})
	default:
		return fmt.Errorf("gson: cannot encode value of type %T", v)
	}
	return nil
}

func writeTagged(buf *bytes.Buffer, tag string, writeValue func() error) error {
	buf.WriteString(`{"@type":`)
	writeJSONString(buf, tag)
	buf.WriteString(`,"@value":`)
	if err := writeValue(); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}

func writeInt(buf *bytes.Buffer, v int64) {
	buf.WriteString(strconv.FormatInt(v, 10))
}

func writeFloat(buf *bytes.Buffer, v float64, bits int) {
	buf.WriteString(strconv.FormatFloat(v, 'g', -1, bits))
}
