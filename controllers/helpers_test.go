package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"unalon_server/routes"
	"unalon_server/services"

	"github.com/gorilla/mux"
)

// newTestServer wires the real router against a fresh store, the way main
// does, and returns the running test server plus the store for assertions.
func newTestServer(t *testing.T) (*httptest.Server, *services.MemoryStore) {
	t.Helper()

	store := services.NewMemoryStore()
	sessions := services.NewSessionService()

	r := mux.NewRouter()
	routes.RegisterAuthRoutes(r, &services.UserService{Store: store}, sessions)
	routes.RegisterActivityRoutes(r, &services.ActivityService{Store: store}, sessions)
	routes.RegisterChatRoutes(r, &services.ChatService{Store: store}, sessions)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, store
}

// testClient is one browser: its own cookie jar, talking to the test server.
type testClient struct {
	t    *testing.T
	base string
	http *http.Client
}

func newTestClient(t *testing.T, server *httptest.Server) *testClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &testClient{t: t, base: server.URL, http: &http.Client{Jar: jar}}
}

// do sends a JSON request and returns the status code and raw body.
func (c *testClient) do(method, path string, payload interface{}) (int, []byte) {
	c.t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			c.t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.base+path, body)
	if err != nil {
		c.t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

// register signs a user up through the API and returns their id. The client
// keeps the session cookie.
func (c *testClient) register(username, email, name string) string {
	c.t.Helper()

	status, body := c.do(http.MethodPost, "/api/register", map[string]string{
		"username": username,
		"email":    email,
		"name":     name,
	})
	if status != http.StatusOK {
		c.t.Fatalf("register %s: status %d, body %s", username, status, body)
	}

	var parsed struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.t.Fatalf("parse register response: %v", err)
	}
	if parsed.User.ID == "" {
		c.t.Fatalf("register returned no user id: %s", body)
	}
	return parsed.User.ID
}
