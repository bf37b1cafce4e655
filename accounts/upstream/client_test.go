package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverListingBody = `{
	"servers": [
		{
			"id": "11111111-2222-3333-4444-55555555555",
			"name": "test_server_awesome",
			"status": "ACTIVE",
			"OS-EXT-STS:vm_state": "active",
			"created": "2015-01-01T16:06:05Z",
			"hostId": "16cde3191df1e6c9fa4dad65eacd4dc7c90d60bca3589ac48f55aae8",
			"flavor": {"id": "performance1-2"},
			"addresses": {
				"public": [
					{"version": 4, "addr": "104.104.104.104"},
					{"version": 6, "addr": "2001:2001:2001:104:2001:2001:2001:2001"}
				],
				"private": [
					{"version": 4, "addr": "10.10.10.10"}
				]
			}
		},
		{
			"id": "22222222-3333-4444-5555-66666666666",
			"name": "test_server",
			"status": "ACTIVE",
			"OS-EXT-STS:vm_state": "active",
			"created": "2015-01-01T16:06:05Z",
			"hostId": "b4631f368e35d06bef81053b66e540c95836fc0eb796176dc624a2cd",
			"flavor": {"id": "performance1-2"},
			"addresses": {
				"public": [
					{"version": 4, "addr": "104.130.130.130"}
				],
				"private": [
					{"version": 4, "addr": "10.11.11.11"}
				]
			}
		}
	]
}`

// testClient points the endpoint template at an httptest server. The template
// still carries the region/account verbs so the request path is realistic.
func testClient(ts *httptest.Server) *Client {
	return NewClient(
		WithEndpoint(ts.URL+"/%s/%s"),
		WithHTTPClient(ts.Client()),
	)
}

func TestListServers(t *testing.T) {
	var gotToken, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Auth-Token")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(serverListingBody))
	}))
	defer ts.Close()

	servers, err := testClient(ts).ListServers(context.Background(), "token-123", "iad", "123456")
	require.NoError(t, err)
	require.Len(t, servers, 2)

	assert.Equal(t, "token-123", gotToken)
	assert.Equal(t, "/iad/123456/servers/detail", gotPath)

	first := servers[0]
	assert.Equal(t, "11111111-2222-3333-4444-55555555555", first.ID)
	assert.Equal(t, "16cde3191df1e6c9fa4dad65eacd4dc7c90d60bca3589ac48f55aae8", first.HostID)
	assert.Equal(t, "active", first.VMState)
	assert.Equal(t, "performance1-2", first.Flavor.ID)
	assert.Len(t, first.Addresses.Public, 2)
	assert.Len(t, first.Addresses.Private, 1)

	assert.Equal(t, "b4631f368e35d06bef81053b66e540c95836fc0eb796176dc624a2cd", servers[1].HostID)
}

func TestListServersFailures(t *testing.T) {
	testCases := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{
			name:       "unauthorized",
			status:     http.StatusUnauthorized,
			body:       `{"unauthorized": {"message": "invalid token"}}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "server_error",
			status:     http.StatusInternalServerError,
			body:       "boom",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "malformed_body",
			status: http.StatusOK,
			body:   "not json at all",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			servers, err := testClient(ts).ListServers(context.Background(), "token-123", "iad", "123456")
			assert.Nil(t, servers)

			var fetchErr *FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tc.wantStatus, fetchErr.StatusCode)
		})
	}
}

func TestGetServer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/iad/123456/servers/11111111-2222-3333-4444-55555555555", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"server": {
				"id": "11111111-2222-3333-4444-55555555555",
				"name": "test_server_awesome",
				"status": "ACTIVE",
				"OS-EXT-STS:vm_state": "active",
				"created": "2015-01-01T16:06:05Z",
				"hostId": "16cde3191df1e6c9fa4dad65eacd4dc7c90d60bca3589ac48f55aae8",
				"flavor": {"id": "performance1-2"},
				"addresses": {
					"public": [{"version": 4, "addr": "104.104.104.104"}],
					"private": [{"version": 4, "addr": "10.10.10.10"}]
				}
			}
		}`))
	}))
	defer ts.Close()

	server, err := testClient(ts).GetServer(
		context.Background(), "token-123", "iad", "123456",
		"11111111-2222-3333-4444-55555555555",
	)
	require.NoError(t, err)
	assert.Equal(t, "test_server_awesome", server.Name)
	assert.Equal(t, "16cde3191df1e6c9fa4dad65eacd4dc7c90d60bca3589ac48f55aae8", server.HostID)
}

func TestGetServerEmptyBody(t *testing.T) {
	// The provider answers a malformed server identifier with an empty body.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	server, err := testClient(ts).GetServer(context.Background(), "token-123", "iad", "123456", "bad-id")
	assert.Nil(t, server)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestGetServerNullPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"server": null}`))
	}))
	defer ts.Close()

	server, err := testClient(ts).GetServer(context.Background(), "token-123", "iad", "123456", "bad-id")
	assert.Nil(t, server)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "empty server detail")
}

func TestCallArgumentValidation(t *testing.T) {
	c := NewClient()

	_, err := c.ListServers(context.Background(), "", "iad", "123456")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "authentication token is required")

	_, err = c.GetServer(context.Background(), "token-123", "", "123456", "abc")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "region is required")
}

func TestTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	_, err := NewClient(WithEndpoint(ts.URL+"/%s/%s")).ListServers(
		context.Background(), "token-123", "iad", "123456",
	)
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Zero(t, fetchErr.StatusCode)
}
