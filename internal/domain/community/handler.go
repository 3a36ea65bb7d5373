package community

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawlog/internal/domain/pawlog"
)

func RegisterRoutes(r chi.Router, s *Store) {
	r.Route("/community", func(cr chi.Router) {
		cr.Get("/feed", listFeedHandler(s))
		cr.Post("/feed/mock", loadMockFeedHandler(s))
		cr.Get("/feed/{id}", getDiaryHandler(s))
		cr.Delete("/feed/{id}", removeDiaryHandler(s))
		cr.Post("/feed/{id}/like", toggleLikeHandler(s))
		cr.Get("/feed/{id}/comments", listCommentsHandler(s))
		cr.Post("/feed/{id}/comments", addCommentHandler(s))
		cr.Put("/session", setSessionHandler(s))
	})
}

type commentRequest struct {
	Content string `json:"content"`
}

type sessionRequest struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
}

// listFeedHandler godoc
// @Summary Feed público
// @Description Lista los diarios públicos, el más reciente primero.
// @Tags community
// @Produce json
// @Success 200 {array} PublicDiary
// @Router /community/feed [get]
func listFeedHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Feed())
	}
}

// loadMockFeedHandler godoc
// @Summary Cargar feed de demostración
// @Description Reemplaza el feed con tres diarios de ejemplo.
// @Tags community
// @Produce json
// @Success 200 {array} PublicDiary
// @Router /community/feed/mock [post]
func loadMockFeedHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.LoadMockFeed()
		writeJSON(w, http.StatusOK, s.Feed())
	}
}

// getDiaryHandler godoc
// @Summary Obtener diario público
// @Tags community
// @Produce json
// @Param id path string true "Diary ID"
// @Success 200 {object} PublicDiary
// @Failure 404 {string} string "not found"
// @Router /community/feed/{id} [get]
func getDiaryHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := s.Diary(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "public diary not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// removeDiaryHandler godoc
// @Summary Quitar diario del feed
// @Tags community
// @Param id path string true "Diary ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /community/feed/{id} [delete]
func removeDiaryHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.RemoveFromPublicFeed(chi.URLParam(r, "id")) {
			http.Error(w, "public diary not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// toggleLikeHandler godoc
// @Summary Alternar like
// @Description Invierte el like del usuario y ajusta el contador.
// @Tags community
// @Produce json
// @Param id path string true "Diary ID"
// @Success 200 {object} PublicDiary
// @Failure 404 {string} string "not found"
// @Router /community/feed/{id}/like [post]
func toggleLikeHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := s.ToggleLike(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "public diary not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// listCommentsHandler godoc
// @Summary Listar comentarios
// @Tags community
// @Produce json
// @Param id path string true "Diary ID"
// @Success 200 {array} Comment
// @Router /community/feed/{id}/comments [get]
func listCommentsHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Comments(chi.URLParam(r, "id")))
	}
}

// addCommentHandler godoc
// @Summary Comentar un diario
// @Description Requiere un usuario de sesión (PUT /community/session).
// @Tags community
// @Accept json
// @Produce json
// @Param id path string true "Diary ID"
// @Param body body commentRequest true "Comment"
// @Success 201 {object} Comment
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "no current user"
// @Failure 404 {string} string "not found"
// @Router /community/feed/{id}/comments [post]
func addCommentHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req commentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := s.AddComment(chi.URLParam(r, "id"), req.Content)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, c)
		case errors.Is(err, pawlog.ErrUnauthenticated):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, pawlog.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, pawlog.ErrValidation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// setSessionHandler godoc
// @Summary Fijar usuario de la comunidad
// @Description Un id vacío cierra la sesión.
// @Tags community
// @Accept json
// @Param body body sessionRequest true "Member"
// @Success 204
// @Failure 400 {string} string "invalid json"
// @Router /community/session [put]
func setSessionHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			s.SetCurrentUser(nil)
		} else {
			s.SetCurrentUser(&Member{ID: req.ID, Nickname: req.Nickname})
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
