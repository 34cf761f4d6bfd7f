package custody

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetClient_OwnerOf(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/assets/owner", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "0xNFT", body["contract"])
		assert.Equal(t, "42", body["asset_id"])

		json.NewEncoder(w).Encode(map[string]string{"owner": "alice"})
	}))
	defer srv.Close()

	client := NewAssetClient(srv.URL, "engine-escrow", 5*time.Second)
	owner, err := client.OwnerOf(context.Background(), "0xNFT", "42")
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)
}

func TestAssetClient_Pull_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not approved"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewAssetClient(srv.URL, "engine-escrow", 5*time.Second)
	err := client.Pull(context.Background(), "0xNFT", "42", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

func TestAssetClient_Release(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewAssetClient(srv.URL, "engine-escrow", 5*time.Second)
	require.NoError(t, client.Release(context.Background(), "0xNFT", "42", "bob"))
	assert.Equal(t, "/v1/assets/release", gotPath)
	assert.Equal(t, "engine-escrow", gotBody["escrow"])
}

func TestTokenClient_Pull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tokens/pull", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "0xTOK", body["token"])
		assert.Equal(t, "carol", body["from"])
		assert.Equal(t, "3000", body["amount"])
		assert.Equal(t, "engine-escrow", body["escrow"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewTokenClient(srv.URL, "engine-escrow", 5*time.Second)
	err := client.Pull(context.Background(), "0xTOK", "carol", decimal.NewFromInt(3000))
	assert.NoError(t, err)
}

func TestVaultClient_Release_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "vault outage", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewVaultClient(srv.URL, "engine-escrow", 5*time.Second)
	err := client.Release(context.Background(), "bob", decimal.NewFromInt(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestVaultClient_Pull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/vault/pull", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bob", body["from"])
		assert.Equal(t, "1.5", body["amount"])
		assert.Equal(t, "engine-escrow", body["escrow"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewVaultClient(srv.URL, "engine-escrow", 5*time.Second)
	err := client.Pull(context.Background(), "bob", decimal.RequireFromString("1.5"))
	assert.NoError(t, err)
}
