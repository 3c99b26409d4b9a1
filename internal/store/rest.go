package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// RestStore talks to a hosted data API using Backendless-style URLs
// (<base>/<app-id>/<api-key>/data/<table>). The store is treated as a dumb
// document bucket: full-table reads, upsert by id, delete by id, binary
// upload returning a retrievable URL. Record timestamps must come back as
// RFC 3339 strings; a backend that serializes created/updated as epoch
// millis needs a translation layer in front of this store.
type RestStore struct {
	baseURL string // e.g. https://api.backendless.com
	appID   string
	apiKey  string
	client  *http.Client
}

func NewRestStore(baseURL, appID, apiKey string) *RestStore {
	return &RestStore{
		baseURL: baseURL,
		appID:   appID,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *RestStore) Find(ctx context.Context, collection string, out any) error {
	return s.doJSON(ctx, "GET", "/data/"+collection, nil, out)
}

func (s *RestStore) Save(ctx context.Context, collection string, record Record) error {
	if id := record.GetObjectID(); id != "" {
		return s.doJSON(ctx, "PUT", "/data/"+collection+"/"+id, record, record)
	}
	return s.doJSON(ctx, "POST", "/data/"+collection, record, record)
}

func (s *RestStore) Remove(ctx context.Context, collection, objectID string) error {
	err := s.doJSON(ctx, "DELETE", "/data/"+collection+"/"+objectID, nil, nil)
	var se *statusError
	if errors.As(err, &se) && se.code == http.StatusNotFound {
		return ErrNotFound
	}
	return err
}

// Upload sends the file as multipart form data and returns the hosted URL.
func (s *RestStore) Upload(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	mw.Close()

	url := fmt.Sprintf("%s/%s/%s/files/%s/%s", s.baseURL, s.appID, s.apiKey, dir, filename)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", dir, filename, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return "", &statusError{resp.StatusCode, fmt.Sprintf("upload %s/%s: %s", dir, filename, data)}
	}

	var out struct {
		FileURL string `json:"fileURL"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	return out.FileURL, nil
}

func (s *RestStore) Close() error { return nil }

// --- HTTP helper ---

type statusError struct {
	code int
	msg  string
}

func (e *statusError) Error() string { return fmt.Sprintf("store api: status %d: %s", e.code, e.msg) }

func (s *RestStore) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := fmt.Sprintf("%s/%s/%s%s", s.baseURL, s.appID, s.apiKey, path)
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("store api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return &statusError{resp.StatusCode, fmt.Sprintf("%s %s: %s", method, path, data)}
	}

	if out != nil {
		data, _ := io.ReadAll(resp.Body)
		if len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
		}
	}
	return nil
}
