package usertwin

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vcrobe/userwidgets/userapi"
)

func (s *Server) idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		Error(w, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

// wait applies the global and per-user latency, returning false if the client went away.
func (s *Server) wait(r *http.Request, id int) bool {
	d := s.Latency + s.Store.Delay(id)
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-r.Context().Done():
		return false
	}
}

// getUser handles GET /users/{id} and GET /user/{id}.
// nullWhenMissing selects the singular endpoint's 200 null answer over 404 {}.
func (s *Server) getUser(nullWhenMissing bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.idParam(w, r)
		if !ok {
			return
		}
		if !s.wait(r, id) {
			return
		}

		u, found := s.Store.Get(id)
		switch {
		case found:
			JSON(w, http.StatusOK, u)
		case nullWhenMissing:
			JSON(w, http.StatusOK, nil)
		default:
			JSON(w, http.StatusNotFound, map[string]any{})
		}
	}
}

// listUsers handles GET /users
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, s.Store.List())
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"status": "ok", "users": len(s.Store.List())})
}

// reset handles POST /admin/reset. An empty body restores DefaultUsers;
// otherwise the body is a JSON array of users.
func (s *Server) reset(w http.ResponseWriter, r *http.Request) {
	users := DefaultUsers
	if r.ContentLength != 0 {
		var body []userapi.User
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			Error(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		users = body
	}
	s.Store.Reset(users)
	s.Logger.Info("store reset", "users", len(users))
	JSON(w, http.StatusOK, map[string]any{"users": len(users)})
}

type putUserRequest struct {
	Name string `json:"name"`
}

// putUser handles PUT /admin/users/{id}
func (s *Server) putUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.idParam(w, r)
	if !ok {
		return
	}
	var req putUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		Error(w, http.StatusUnprocessableEntity, "The 'name' field is required.")
		return
	}
	u := userapi.User{ID: id, Name: req.Name}
	s.Store.Put(u)
	JSON(w, http.StatusOK, u)
}

// deleteUser handles DELETE /admin/users/{id}
func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.idParam(w, r)
	if !ok {
		return
	}
	if !s.Store.Delete(id) {
		Error(w, http.StatusNotFound, "No such user: "+strconv.Itoa(id))
		return
	}
	JSON(w, http.StatusOK, map[string]any{"id": id, "deleted": true})
}

type putDelayRequest struct {
	Delay string `json:"delay"`
}

// putDelay handles PUT /admin/delays/{id} with a body like {"delay":"150ms"}.
func (s *Server) putDelay(w http.ResponseWriter, r *http.Request) {
	id, ok := s.idParam(w, r)
	if !ok {
		return
	}
	var req putDelayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	d, err := time.ParseDuration(req.Delay)
	if err != nil || d < 0 {
		Error(w, http.StatusBadRequest, "delay must be a non-negative duration")
		return
	}
	s.Store.SetDelay(id, d)
	JSON(w, http.StatusOK, map[string]any{"id": id, "delay": d.String()})
}
