package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"viaggio/internal/core"
)

// JSONStore keeps each record set as one JSON document under a base
// directory: a single object mapping id to record, with keys in insertion
// order. The documents are meant to stay human-readable and editable.
type JSONStore struct {
	dir string
}

// NewJSONStore creates the base directory if needed.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

func (s *JSONStore) path(set string) string {
	return filepath.Join(s.dir, set+".json")
}

// Load reads the set's document. A missing file is an empty set.
func (s *JSONStore) Load(_ context.Context, set string) (*RawSet, error) {
	data, err := os.ReadFile(s.path(set))
	if os.IsNotExist(err) {
		return core.NewRecordSet[json.RawMessage](), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", set, err)
	}
	records, err := decodeOrdered(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, set, err)
	}
	return records, nil
}

// Save writes the full document, replacing whatever was persisted before.
func (s *JSONStore) Save(_ context.Context, set string, records *RawSet) error {
	data, err := encodeOrdered(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", set, err)
	}
	tmp := s.path(set) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", set, err)
	}
	if err := os.Rename(tmp, s.path(set)); err != nil {
		return fmt.Errorf("replace %s: %w", set, err)
	}
	return nil
}

// decodeOrdered decodes a JSON object while keeping the document's key
// order, which encoding/json's map decoding would discard.
func decodeOrdered(data []byte) (*RawSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("document is not a JSON object")
	}
	records := core.NewRecordSet[json.RawMessage]()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("non-string key %v", keyTok)
		}
		var doc json.RawMessage
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("record %q: %v", key, err)
		}
		records.Put(key, doc)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return records, nil
}

func encodeOrdered(records *RawSet) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range records.IDs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		doc, _ := records.Get(id)
		buf.Write(doc)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
