package directory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	tokenCalls   int32
	searchCalls  int32
	validToken   string
	expiresIn    int
	reject401    int32 // number of upcoming search calls to reject with 401
	searchResult []rawCourse
}

func (f *fakeDirectory) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.tokenCalls, 1)
		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": f.validToken,
			"expires_in":   f.expiresIn,
		})
	})
	mux.HandleFunc("/courses/directory", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.searchCalls, 1)
		if atomic.AddInt32(&f.reject401, -1) >= 0 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+f.validToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"courses": f.searchResult},
		})
	})
	return mux
}

func newTestClient(t *testing.T, fake *fakeDirectory) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	client := NewClient(Config{
		TokenURL:     server.URL + "/token",
		APIURL:       server.URL,
		ClientID:     "client",
		ClientSecret: "secret",
	})
	return client, server
}

func TestTokenIsCachedAcrossCalls(t *testing.T) {
	fake := &fakeDirectory{validToken: "tok-1", expiresIn: 3600}
	client, _ := newTestClient(t, fake)

	first, err := client.GetValidToken()
	require.NoError(t, err)
	second, err := client.GetValidToken()
	require.NoError(t, err)

	assert.Equal(t, "tok-1", first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fake.tokenCalls), "second call must hit the cache")
}

func TestExpiredTokenIsRefetched(t *testing.T) {
	fake := &fakeDirectory{validToken: "tok-1", expiresIn: 3600}
	client, _ := newTestClient(t, fake)

	_, err := client.GetValidToken()
	require.NoError(t, err)

	// Force expiry
	client.mu.Lock()
	client.expiry = time.Now().Add(-time.Second)
	client.mu.Unlock()

	_, err = client.GetValidToken()
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&fake.tokenCalls))
}

func TestSearchRetriesOnceAfter401(t *testing.T) {
	fake := &fakeDirectory{
		validToken: "tok-1",
		expiresIn:  3600,
		reject401:  1,
		searchResult: []rawCourse{
			{Title: "Intro to Go", ReferenceNumber: "EXT-1", TrainingProviderAlias: "GoSchool"},
		},
	}
	client, _ := newTestClient(t, fake)

	courses, err := client.SearchCourses("go", 1)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Intro to Go", courses[0].Title)
	assert.Equal(t, "GoSchool", courses[0].Provider)

	assert.Equal(t, int32(2), atomic.LoadInt32(&fake.searchCalls), "one rejected call plus one retry")
	assert.Equal(t, int32(2), atomic.LoadInt32(&fake.tokenCalls), "401 invalidates the cached token")
}

func TestSearchNormalizesCreateDate(t *testing.T) {
	fake := &fakeDirectory{validToken: "tok-1", expiresIn: 3600}
	fake.searchResult = []rawCourse{{Title: "Data Basics"}}
	fake.searchResult[0].Meta.CreateDate = "2025-03-11T09:30:00Z"
	client, _ := newTestClient(t, fake)

	courses, err := client.SearchCourses("data", 1)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "2025-03-11", courses[0].Date)
}
