package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/benluxnails/salon-web/cms"
	"github.com/benluxnails/salon-web/controllers"
	"github.com/benluxnails/salon-web/middleware"
	"github.com/benluxnails/salon-web/roles"
	"github.com/benluxnails/salon-web/routes"
	"github.com/benluxnails/salon-web/session"
)

const testCookie = "salon_session"

// backend is a scriptable stand-in for the content API. Each field holds
// the raw JSON body for one endpoint; every request is recorded as
// "METHOD /path" for assertions on call counts and ordering.
type backend struct {
	mu       sync.Mutex
	requests []string
	bodies   []string

	me           string
	meWithRole   string
	loginBody    string
	loginStatus  int
	registerBody string
	services     string
	appointments string
	createStatus int
	updateCodes  map[string]int
}

func (b *backend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.requests = append(b.requests, r.Method+" "+r.URL.Path)
		b.bodies = append(b.bodies, string(body))
		b.mu.Unlock()

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/auth/local":
			if b.loginStatus >= 300 {
				w.WriteHeader(b.loginStatus)
				io.WriteString(w, `{"error":{"message":"Invalid identifier or password"}}`)
				return
			}
			io.WriteString(w, b.loginBody)

		case r.Method == http.MethodPost && r.URL.Path == "/api/auth/local/register":
			io.WriteString(w, b.registerBody)

		case r.Method == http.MethodGet && r.URL.Path == "/api/users/me":
			payload := b.me
			if r.URL.Query().Get("populate") == "role" && b.meWithRole != "" {
				payload = b.meWithRole
			}
			if payload == "" {
				w.WriteHeader(http.StatusUnauthorized)
				io.WriteString(w, `{"error":{"message":"Unauthorized"}}`)
				return
			}
			io.WriteString(w, payload)

		case r.Method == http.MethodGet && r.URL.Path == "/api/services":
			if b.services == "" {
				w.WriteHeader(http.StatusInternalServerError)
				io.WriteString(w, `{"error":{"message":"Internal Server Error"}}`)
				return
			}
			io.WriteString(w, b.services)

		case r.Method == http.MethodGet && r.URL.Path == "/api/appointments":
			if b.appointments == "" {
				w.WriteHeader(http.StatusNotFound)
				io.WriteString(w, `{"error":{"message":"Not Found"}}`)
				return
			}
			io.WriteString(w, b.appointments)

		case r.Method == http.MethodPost && r.URL.Path == "/api/appointments":
			if b.createStatus >= 300 {
				w.WriteHeader(b.createStatus)
				io.WriteString(w, `{"error":{"message":"fecha no disponible"}}`)
				return
			}
			io.WriteString(w, `{"data":{"id":99}}`)

		case r.Method == http.MethodPut:
			code, ok := b.updateCodes[r.URL.Path]
			if !ok {
				code = http.StatusNotFound
			}
			if code >= 300 {
				w.WriteHeader(code)
				io.WriteString(w, `{"error":{"message":"Not Found"}}`)
				return
			}
			w.WriteHeader(code)
			io.WriteString(w, `{}`)

		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":{"message":"Not Found"}}`)
		}
	}
}

func (b *backend) count(entry string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if r == entry {
			n++
		}
	}
	return n
}

// lastBody returns the recorded request body for the most recent request
// matching "METHOD /path".
func (b *backend) lastBody(entry string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.requests) - 1; i >= 0; i-- {
		if b.requests[i] == entry {
			return b.bodies[i]
		}
	}
	return ""
}

// newApp wires a fiber app against the scripted backend, mirroring the
// production route setup. The returned store lets tests seed sessions.
func newApp(t *testing.T, be *backend) (*fiber.App, *session.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(be.handler())
	t.Cleanup(srv.Close)

	client := cms.New(srv.URL)
	store := session.NewMemoryStore()
	mgr := session.NewManager(client, store, time.Hour)
	resolver := roles.New(client, session.NewMemoryStore(), time.Minute)

	app := fiber.New()
	app.Use(middleware.LoadSession(mgr, testCookie))
	routes.SetupAuthRoutes(app, &controllers.AuthController{
		Sessions: mgr,
		Resolver: resolver,
		Cookie:   testCookie,
		TTL:      time.Hour,
	})
	routes.SetupBookingRoutes(app, &controllers.BookingController{CMS: client})
	routes.SetupDashboardRoutes(app, &controllers.DashboardController{CMS: client})
	routes.SetupAdminRoutes(app, &controllers.AdminController{CMS: client}, resolver)
	return app, store
}

// seedSession plants a token in the store and returns the cookie that
// resolves to it.
func seedSession(store *session.MemoryStore) *http.Cookie {
	store.Set("sid-test", "tok-test", time.Hour)
	return &http.Cookie{Name: testCookie, Value: "sid-test"}
}

func jsonRequest(method, target string, payload any) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			panic(err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	defer res.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == testCookie && c.Value != "" {
			return c
		}
	}
	return nil
}

// approvedMe is the default session user for client-flow tests.
const approvedMe = `{"id":7,"username":"clienta","email":"clienta@example.com","account_status":"approved"}`

func rowIDs(t *testing.T, body map[string]any) []int {
	t.Helper()
	raw, ok := body["data"].([]any)
	require.True(t, ok, "response has no data array")
	ids := make([]int, 0, len(raw))
	for _, item := range raw {
		row, ok := item.(map[string]any)
		require.True(t, ok)
		id, ok := row["id"].(float64)
		require.True(t, ok)
		ids = append(ids, int(id))
	}
	return ids
}
