package emailverifier

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDisposable_KnownDomain(t *testing.T) {
	v := NewVerifier()
	assert.True(t, v.IsDisposable("mailinator.com"))
}

func TestIsDisposable_UnknownDomain(t *testing.T) {
	v := NewVerifier()
	assert.False(t, v.IsDisposable("not-a-disposable-domain-xyz.com"))
}

func TestAddDisposableDomains_MergesAtRuntime(t *testing.T) {
	v := NewVerifier()
	v.AddDisposableDomains([]string{"my-custom-throwaway.test"})
	assert.True(t, v.IsDisposable("my-custom-throwaway.test"))
}

func TestUpdateDisposableDomains_FetchesAndMerges(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# comment\nfetched-throwaway.test\n\nanother-throwaway.test\n"))
	}))
	defer server.Close()

	assert.NoError(t, updateDisposableDomains(server.URL))

	v := NewVerifier()
	assert.True(t, v.IsDisposable("fetched-throwaway.test"))
	assert.True(t, v.IsDisposable("another-throwaway.test"))
}

func TestUpdateDisposableDomains_NonOKStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	assert.NoError(t, updateDisposableDomains(server.URL))
}
