// Package gymapitest provides an in-memory workout backend for tests.
//
// It serves the same routes as the reference backend (GET /api/members,
// GET /api/workout?memberId=, POST /api/workouts, PUT and DELETE
// /api/workouts/{id}) and lets a test inject failures, observe requests and
// hold list responses to reproduce out-of-order arrivals.
package gymapitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/five82/gymtrack/internal/gymapi"
)

// Request is a recorded inbound call.
type Request struct {
	Method    string
	Path      string
	Query     string
	RequestID string
	Body      []byte
}

// Server is a running fake backend.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	members  []gymapi.Member
	workouts []gymapi.Workout
	nextID   int64
	failures map[string]int
	requests []Request
	holds    map[gymapi.ID]chan struct{}
}

// NewServer starts a backend seeded with members.
func NewServer(members ...gymapi.Member) *Server {
	s := &Server{
		members:  append([]gymapi.Member(nil), members...),
		nextID:   100,
		failures: make(map[string]int),
		holds:    make(map[gymapi.ID]chan struct{}),
	}
	s.srv = httptest.NewServer(s.Handler())
	return s
}

// URL returns the API root, including the /api prefix.
func (s *Server) URL() string {
	return s.srv.URL + "/api"
}

// Close shuts the server down, releasing any held list responses first.
func (s *Server) Close() {
	s.mu.Lock()
	for id, ch := range s.holds {
		close(ch)
		delete(s.holds, id)
	}
	s.mu.Unlock()
	s.srv.Close()
}

// Handler returns the router without starting a listener.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)
	r.Route("/api", func(r chi.Router) {
		r.Get("/members", s.listMembers)
		r.Get("/workout", s.listWorkouts)
		r.Post("/workouts", s.createWorkout)
		r.Put("/workouts/{id}", s.updateWorkout)
		r.Delete("/workouts/{id}", s.deleteWorkout)
	})
	return r
}

// AddWorkout stores w, assigning an id when it has none, and returns it.
func (s *Server) AddWorkout(w gymapi.Workout) gymapi.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.ID.IsZero() {
		w.ID = s.allocID()
	}
	s.workouts = append(s.workouts, w)
	return w
}

// Workouts returns the stored workouts for memberID.
func (s *Server) Workouts(memberID gymapi.ID) []gymapi.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workoutsFor(memberID)
}

// FailNext makes the next request matching method and path (below /api)
// answer with status code.
func (s *Server) FailNext(method, path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = code
}

// Hold blocks list responses for memberID until the returned release func
// is called.
func (s *Server) Hold(memberID gymapi.ID) (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.holds[memberID] = ch
	s.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.holds[memberID] == ch {
				delete(s.holds, memberID)
				close(ch)
			}
		})
	}
}

// Requests returns a copy of the recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		path := strings.TrimPrefix(r.URL.Path, "/api")

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    r.Method,
			Path:      path,
			Query:     r.URL.RawQuery,
			RequestID: r.Header.Get("X-Request-ID"),
			Body:      body,
		})
		code, fail := s.failures[r.Method+" "+path]
		if fail {
			delete(s.failures, r.Method+" "+path)
		}
		s.mu.Unlock()

		if fail {
			http.Error(w, http.StatusText(code), code)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listMembers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	members := append([]gymapi.Member(nil), s.members...)
	s.mu.Unlock()
	respondJSON(w, members, http.StatusOK)
}

func (s *Server) listWorkouts(w http.ResponseWriter, r *http.Request) {
	memberID := gymapi.ID(strings.TrimSpace(r.URL.Query().Get("memberId")))
	if memberID.IsZero() {
		respondError(w, "memberId is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	hold := s.holds[memberID]
	s.mu.Unlock()
	if hold != nil {
		select {
		case <-hold:
		case <-r.Context().Done():
			return
		}
	}

	s.mu.Lock()
	workouts := s.workoutsFor(memberID)
	s.mu.Unlock()
	respondJSON(w, workouts, http.StatusOK)
}

func (s *Server) createWorkout(w http.ResponseWriter, r *http.Request) {
	var draft gymapi.WorkoutDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasMember(draft.MemberID) {
		respondError(w, "unknown member", http.StatusBadRequest)
		return
	}
	workout := fromDraft(s.allocID(), draft)
	s.workouts = append(s.workouts, workout)
	respondJSON(w, workout, http.StatusCreated)
}

func (s *Server) updateWorkout(w http.ResponseWriter, r *http.Request) {
	id := gymapi.ID(chi.URLParam(r, "id"))
	var draft gymapi.WorkoutDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			s.workouts[i] = fromDraft(id, draft)
			respondJSON(w, s.workouts[i], http.StatusOK)
			return
		}
	}
	respondError(w, "workout not found", http.StatusNotFound)
}

func (s *Server) deleteWorkout(w http.ResponseWriter, r *http.Request) {
	id := gymapi.ID(chi.URLParam(r, "id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			s.workouts = append(s.workouts[:i], s.workouts[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	respondError(w, "workout not found", http.StatusNotFound)
}

func (s *Server) workoutsFor(memberID gymapi.ID) []gymapi.Workout {
	out := []gymapi.Workout{}
	for _, w := range s.workouts {
		if w.MemberID == memberID {
			out = append(out, w)
		}
	}
	return out
}

func (s *Server) hasMember(id gymapi.ID) bool {
	for _, m := range s.members {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (s *Server) allocID() gymapi.ID {
	s.nextID++
	return gymapi.ID(strconv.FormatInt(s.nextID, 10))
}

func fromDraft(id gymapi.ID, d gymapi.WorkoutDraft) gymapi.Workout {
	return gymapi.Workout{
		ID:       id,
		MemberID: d.MemberID,
		Date:     d.Date,
		Exercise: d.ExerciseName,
		Sets:     d.Sets,
		Reps:     d.Reps,
		Weight:   d.Weight,
		Notes:    d.Notes,
	}
}

func respondJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, msg string, status int) {
	respondJSON(w, map[string]string{"error": msg}, status)
}
