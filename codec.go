package reportutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	msgpack "github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// DefaultField is the name of the field holding the report mapping.
const DefaultField = "allEmployees"

type codec struct {
	field string
}

// Option configures how reports are decoded and encoded.
type Option func(*codec)

// WithField sets the name of the field holding the report mapping.
func WithField(name string) Option {
	return func(c *codec) {
		c.field = name
	}
}

func newCodec(opts []Option) *codec {
	c := &codec{field: DefaultField}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DecodeJSON decodes a report from a JSON document of the form
// {"allEmployees": {"<id>": [...], ...}} keeping the order of the ids.
func DecodeJSON[T any](data []byte, opts ...Option) (*Report[T], error) {
	c := newCodec(opts)
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("%w: document is not an object: %w", ErrInvalidInput, err)
	}

	var r *Report[T]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode document: %w", ErrInvalidInput, err)
		}
		key, _ := tok.(string)

		if key != c.field {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("%w: failed to decode field %q: %w", ErrInvalidInput, key, err)
			}
			continue
		}

		if r != nil {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidInput, c.field)
		}
		r, err = decodeJSONMapping[T](dec, c.field)
		if err != nil {
			return nil, err
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("%w: failed to decode document: %w", ErrInvalidInput, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after document", ErrInvalidInput)
	}

	if r == nil {
		return nil, fmt.Errorf("%w: missing field %q", ErrInvalidInput, c.field)
	}
	return r, nil
}

func decodeJSONMapping[T any](dec *json.Decoder, field string) (*Report[T], error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("%w: field %q is not a mapping: %w", ErrInvalidInput, field, err)
	}

	r := NewReport[T]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode field %q: %w", ErrInvalidInput, field, err)
		}
		id, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: failed to decode group %q: %w", ErrInvalidInput, id, err)
		}
		if raw = bytes.TrimSpace(raw); len(raw) == 0 || raw[0] != '[' {
			return nil, fmt.Errorf("%w: group %q is not a sequence", ErrInvalidInput, id)
		}

		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, fmt.Errorf("%w: failed to decode group %q: %w", ErrInvalidInput, id, err)
		}

		group := make(EmployeeGroup[T], len(elems))
		for j, elem := range elems {
			if bytes.Equal(elem, []byte("null")) {
				return nil, fmt.Errorf("%w: group %q has a null employee at %d", ErrInvalidInput, id, j)
			}
			if err := json.Unmarshal(elem, &group[j]); err != nil {
				return nil, fmt.Errorf("%w: failed to decode group %q: %w", ErrInvalidInput, id, err)
			}
		}

		if err := r.Add(id, group); err != nil {
			return nil, fmt.Errorf("%w: report id %q: %w", ErrInvalidInput, id, err)
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("%w: failed to decode field %q: %w", ErrInvalidInput, field, err)
	}
	return r, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// DecodeMsgpack decodes a report from a msgpack document with the same
// shape as accepted by DecodeJSON.
func DecodeMsgpack[T any](data []byte, opts ...Option) (*Report[T], error) {
	c := newCodec(opts)
	rd := bytes.NewReader(data)
	dec := msgpack.GetDecoder()
	dec.Reset(rd)
	defer msgpack.PutDecoder(dec)

	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode document: %w", ErrInvalidInput, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: document is not a map", ErrInvalidInput)
	}

	var r *Report[T]
	for i := 0; i < n; i++ {
		key, err := dec.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode document key: %w", ErrInvalidInput, err)
		}

		if key != c.field {
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("%w: failed to decode field %q: %w", ErrInvalidInput, key, err)
			}
			continue
		}

		if r != nil {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidInput, c.field)
		}
		r, err = decodeMsgpackMapping[T](dec, c.field)
		if err != nil {
			return nil, err
		}
	}

	if rd.Len() > 0 {
		return nil, fmt.Errorf("%w: unexpected data after document", ErrInvalidInput)
	}

	if r == nil {
		return nil, fmt.Errorf("%w: missing field %q", ErrInvalidInput, c.field)
	}
	return r, nil
}

func decodeMsgpackMapping[T any](dec *msgpack.Decoder, field string) (*Report[T], error) {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, fmt.Errorf("%w: field %q is not a mapping: %w", ErrInvalidInput, field, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: field %q is not a mapping", ErrInvalidInput, field)
	}

	r := NewReport[T]()
	for i := 0; i < n; i++ {
		id, err := dec.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode report id: %w", ErrInvalidInput, err)
		}

		l, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, fmt.Errorf("%w: group %q is not a sequence: %w", ErrInvalidInput, id, err)
		}
		if l < 0 {
			return nil, fmt.Errorf("%w: group %q is not a sequence", ErrInvalidInput, id)
		}

		group := make(EmployeeGroup[T], l)
		for j := range group {
			code, err := dec.PeekCode()
			if err != nil {
				return nil, fmt.Errorf("%w: failed to decode group %q: %w", ErrInvalidInput, id, err)
			}
			if code == msgpcode.Nil {
				return nil, fmt.Errorf("%w: group %q has a null employee at %d", ErrInvalidInput, id, j)
			}
			if err := dec.Decode(&group[j]); err != nil {
				return nil, fmt.Errorf("%w: failed to decode group %q: %w", ErrInvalidInput, id, err)
			}
		}

		if err := r.Add(id, group); err != nil {
			return nil, fmt.Errorf("%w: report id %q: %w", ErrInvalidInput, id, err)
		}
	}
	return r, nil
}

// EncodeMsgpack encodes the report so that DecodeMsgpack restores the same
// groups in the same order.
func EncodeMsgpack[T any](r *Report[T], opts ...Option) ([]byte, error) {
	if !r.valid() {
		return nil, ErrInvalidInput
	}

	c := newCodec(opts)
	enc := msgpack.GetEncoder()
	var buf bytes.Buffer
	enc.Reset(&buf)
	defer msgpack.PutEncoder(enc)

	if err := enc.EncodeMapLen(1); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	if err := enc.EncodeString(c.field); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	if err := enc.EncodeMapLen(r.AllEmployees.Len()); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	for id, g := range r.AllEmployees.Iter() {
		if err := enc.EncodeString(id); err != nil {
			return nil, fmt.Errorf("failed to encode group %q: %w", id, err)
		}
		if err := enc.EncodeArrayLen(len(g)); err != nil {
			return nil, fmt.Errorf("failed to encode group %q: %w", id, err)
		}
		for _, e := range g {
			if err := enc.Encode(e); err != nil {
				return nil, fmt.Errorf("failed to encode group %q: %w", id, err)
			}
		}
	}

	return buf.Bytes(), nil
}
