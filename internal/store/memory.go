package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps collections as JSON documents in process memory. It backs
// the "memory" driver used for demos and tests, where losing data on restart
// is fine.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]json.RawMessage
	files       map[string][]byte
	fileBaseURL string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]json.RawMessage),
		files:       make(map[string][]byte),
		fileBaseURL: "memory://files",
	}
}

func (s *MemoryStore) Find(ctx context.Context, collection string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.collections[collection]
	buf := bytes.NewBufferString("[")
	for i, d := range docs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(d)
	}
	buf.WriteByte(']')
	return json.Unmarshal(buf.Bytes(), out)
}

func (s *MemoryStore) Save(ctx context.Context, collection string, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := record.GetObjectID()
	if id == "" {
		record.SetObjectID(uuid.NewString())
	}
	if st, ok := record.(interface{ Stamp(time.Time) }); ok {
		st.Stamp(time.Now())
	}
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	docs := s.collections[collection]
	if id != "" {
		for i, d := range docs {
			if objectID(d) == id {
				docs[i] = doc
				return nil
			}
		}
	}
	s.collections[collection] = append(docs, doc)
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	for i, d := range docs {
		if objectID(d) == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Upload(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	key := dir + "/" + time.Now().Format("20060102150405") + "_" + filename
	s.mu.Lock()
	s.files[key] = data
	s.mu.Unlock()
	return s.fileBaseURL + "/" + key, nil
}

func (s *MemoryStore) Close() error { return nil }

// Len reports the number of records in a collection.
func (s *MemoryStore) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

func objectID(doc json.RawMessage) string {
	var head struct {
		ObjectID string `json:"objectId"`
	}
	json.Unmarshal(doc, &head)
	return head.ObjectID
}
