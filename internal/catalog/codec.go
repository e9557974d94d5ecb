package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// customRecord is the per-constant object of the custom constants file.
type customRecord struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

// EncodeCustom renders entries as
//
//	{"<name>": {"value": "<value>", "description": "<description>"}, ...}
//
// keeping the order of entries. Output is indented with two spaces.
func EncodeCustom(entries []Entry) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := writeJSON(&compact, e.Name); err != nil {
			return nil, err
		}
		compact.WriteByte(':')
		if err := writeJSON(&compact, customRecord{Value: e.Value, Description: e.Description}); err != nil {
			return nil, err
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// writeJSON appends v without HTML escaping and without the encoder's trailing newline.
func writeJSON(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}

// DecodeCustom parses a custom constants payload, preserving key order. A key that
// appears twice keeps its first position and its last value.
func DecodeCustom(payload []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))

	tok, err := dec.Token()
	if err != nil {
		return nil, ParseError{Reason: "malformed JSON", Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ParseError{Reason: fmt.Sprintf("top level must be an object, got %s", describeToken(tok))}
	}

	var (
		order   []string
		records = make(map[string]customRecord)
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, ParseError{Reason: "malformed JSON", Err: err}
		}
		name, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, ParseError{Reason: "malformed JSON", Err: err}
		}
		rec, err := decodeRecord(name, raw)
		if err != nil {
			return nil, err
		}
		if _, seen := records[name]; !seen {
			order = append(order, name)
		}
		records[name] = rec
	}
	if _, err := dec.Token(); err != nil {
		return nil, ParseError{Reason: "malformed JSON", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ParseError{Reason: "unexpected data after top-level object"}
	}

	entries := make([]Entry, 0, len(order))
	for _, name := range order {
		rec := records[name]
		entries = append(entries, Entry{Name: name, Value: rec.Value, Description: rec.Description})
	}
	return entries, nil
}

func decodeRecord(name string, raw json.RawMessage) (customRecord, error) {
	var rec customRecord
	if strings.TrimSpace(name) == "" {
		return rec, ParseError{Reason: "constant name must not be empty"}
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return rec, ParseError{Reason: fmt.Sprintf("entry %q must be an object", name)}
	}
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return rec, ParseError{Reason: fmt.Sprintf("entry %q", name), Err: err}
	}
	if strings.TrimSpace(rec.Value) == "" {
		return rec, ParseError{Reason: fmt.Sprintf("entry %q has no value", name)}
	}
	return rec, nil
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "array"
		}
		return string(v)
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
