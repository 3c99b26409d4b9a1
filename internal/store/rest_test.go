package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltg-admin/internal/model"
)

func newRestFixture(t *testing.T, handler http.HandlerFunc) *RestStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRestStore(srv.URL, "app-id", "api-key")
}

func TestRestStoreFind(t *testing.T) {
	st := newRestFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/app-id/api-key/data/Interns", r.URL.Path)
		json.NewEncoder(w).Encode([]model.Intern{{Name: "Sarah"}, {Name: "Lena"}})
	})

	var got []model.Intern
	require.NoError(t, st.Find(context.Background(), Interns, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Sarah", got[0].Name)
}

func TestRestStoreFindDecodesRFC3339Timestamps(t *testing.T) {
	st := newRestFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"objectId":"a1","name":"Sarah","created":"2026-08-01T10:30:00Z"}]`))
	})

	var got []model.Intern
	require.NoError(t, st.Find(context.Background(), Interns, &got))
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC), got[0].Created)
}

func TestRestStoreFindRejectsEpochMillisTimestamps(t *testing.T) {
	st := newRestFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"objectId":"a1","name":"Sarah","created":1754042200000}]`))
	})

	var got []model.Intern
	assert.Error(t, st.Find(context.Background(), Interns, &got))
}

func TestRestStoreSaveNewPostsAndAdoptsServerID(t *testing.T) {
	st := newRestFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/app-id/api-key/data/Interns", r.URL.Path)

		var in model.Intern
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ObjectID = "srv-1"
		json.NewEncoder(w).Encode(in)
	})

	in := &model.Intern{Name: "Sarah"}
	require.NoError(t, st.Save(context.Background(), Interns, in))
	assert.Equal(t, "srv-1", in.ObjectID)
}

func TestRestStoreSaveExistingPuts(t *testing.T) {
	st := newRestFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/app-id/api-key/data/Interns/srv-1", r.URL.Path)
		w.Write([]byte("{}"))
	})

	in := &model.Intern{Base: model.Base{ObjectID: "srv-1"}, Name: "Sarah"}
	require.NoError(t, st.Save(context.Background(), Interns, in))
}

func TestRestStoreRemoveMapsNotFound(t *testing.T) {
	st := newRestFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such object", http.StatusNotFound)
	})
	assert.ErrorIs(t, st.Remove(context.Background(), Interns, "gone"), ErrNotFound)
}

func TestRestStoreErrorIncludesStatusAndBody(t *testing.T) {
	st := newRestFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	})

	var got []model.Intern
	err := st.Find(context.Background(), Interns, &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestRestStoreUpload(t *testing.T) {
	st := newRestFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/app-id/api-key/files/certificates/doc.pdf", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		f.Close()
		json.NewEncoder(w).Encode(map[string]string{"fileURL": "https://files.example.com/certificates/doc.pdf"})
	})

	url, err := st.Upload(context.Background(), "certificates", "doc.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/certificates/doc.pdf", url)
}
