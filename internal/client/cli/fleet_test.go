package cli

import (
	"bytes"
	"encoding/json"
	"maps"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/vehiclehub/internal/client/config"
	"github.com/dmitrijs2005/vehiclehub/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// fakeFleet is a minimal in-test vehicle-management API.
type fakeFleet struct {
	mu         sync.Mutex
	signUpBody map[string]string
	lastPut    map[string]any
	deleted    []string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "not found"})
}

func (f *fakeFleet) router() chi.Router {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login/sign-in", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				LoginID  string `json:"loginId"`
				Password string `json:"password"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.Password != "pw" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{
				"token": "tok", "loginId": req.LoginID, "name": "Bob", "userType": "ADMIN",
			})
		})
		r.Post("/login/sign-up", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.mu.Lock()
			f.signUpBody = body
			f.mu.Unlock()
			writeJSON(w, http.StatusCreated, map[string]string{"userKey": "u-new"})
		})

		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					if r.Header.Get("Authorization") != "Bearer tok" {
						writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthorized"})
						return
					}
					next.ServeHTTP(w, r)
				})
			})

			r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, map[string]any{
					"totalElements": 3, "totalPages": 2, "size": 2, "number": 0,
					"content": []map[string]any{
						{"userKey": "u-1", "loginId": "bob", "name": "Bob", "userType": "ADMIN", "email": "bob@fleet.test"},
						{"userKey": "u-2", "loginId": "ann", "name": "Ann", "userType": "DRIVER"},
					},
				})
			})
			r.Get("/users/{key}", func(w http.ResponseWriter, r *http.Request) {
				if chi.URLParam(r, "key") != "u-1" {
					notFound(w)
					return
				}
				writeJSON(w, http.StatusOK, map[string]any{"userKey": "u-1", "loginId": "bob", "name": "Bob", "userType": "ADMIN", "phone": "555"})
			})
			r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				_ = json.NewDecoder(r.Body).Decode(&body)
				body["userKey"] = "u-3"
				writeJSON(w, http.StatusCreated, body)
			})
			r.Put("/users/{key}", func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				_ = json.NewDecoder(r.Body).Decode(&body)
				f.mu.Lock()
				f.lastPut = maps.Clone(body)
				f.mu.Unlock()
				body["userKey"] = chi.URLParam(r, "key")
				writeJSON(w, http.StatusOK, body)
			})
			r.Delete("/users/{key}", func(w http.ResponseWriter, r *http.Request) {
				if chi.URLParam(r, "key") != "u-1" {
					notFound(w)
					return
				}
				f.mu.Lock()
				f.deleted = append(f.deleted, "u-1")
				f.mu.Unlock()
				w.WriteHeader(http.StatusNoContent)
			})

			r.Get("/vehicles", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, []map[string]any{
					{"vehicleKey": "v-1", "name": "Truck 7", "manufacturer": "Volvo", "model": "FH16", "year": 2021,
						"licensePlate": "AB-123", "status": map[string]any{"state": "ACTIVE", "mileage": 1200}},
				})
			})
			r.Get("/vehicles/{key}", func(w http.ResponseWriter, r *http.Request) {
				if chi.URLParam(r, "key") != "v-1" {
					notFound(w)
					return
				}
				writeJSON(w, http.StatusOK, map[string]any{"vehicleKey": "v-1", "name": "Truck 7", "year": 2021})
			})
			r.Post("/vehicles", func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				_ = json.NewDecoder(r.Body).Decode(&body)
				body["vehicleKey"] = "v-2"
				writeJSON(w, http.StatusCreated, body)
			})
			r.Put("/vehicles/{key}", func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				_ = json.NewDecoder(r.Body).Decode(&body)
				f.mu.Lock()
				f.lastPut = maps.Clone(body)
				f.mu.Unlock()
				body["vehicleKey"] = chi.URLParam(r, "key")
				writeJSON(w, http.StatusOK, body)
			})
			r.Delete("/vehicles/{key}", func(w http.ResponseWriter, r *http.Request) {
				notFound(w)
			})
		})
	})
	return r
}

// newTestApp builds an App against a fake fleet API. Interactive input is
// read from input; output is captured in the returned buffer.
func newTestApp(t *testing.T, f *fakeFleet, dbPath, input string) (*App, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(f.router())
	t.Cleanup(srv.Close)

	stubTerminal(t, false, nil, nil)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL + "/api/v1"
	cfg.DatabasePath = dbPath

	app, err := NewApp(cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(app.Close)

	var out bytes.Buffer
	app.reader = rdr(input)
	app.out = &out
	return app, &out
}
