package pawlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta la API del diario sobre r.
func RegisterRoutes(r chi.Router, s *Store) {
	r.Route("/me", func(mr chi.Router) {
		mr.Get("/", getMeHandler(s))
		mr.Post("/", initializeUserHandler(s))
		mr.Patch("/", updateMeHandler(s))
		mr.Post("/logout", logoutHandler(s))
	})
	r.Post("/users/{userID}/load", loadUserDataHandler(s))

	registerDogRoutes(r, s)
	registerRoutineRoutes(r, s)
	registerHealthRoutes(r, s)
	registerDiaryRoutes(r, s)
	registerReminderRoutes(r, s)

	r.Route("/settings", func(sr chi.Router) {
		sr.Get("/", getSettingsHandler(s))
		sr.Patch("/", patchSettingsHandler(s))
		sr.Put("/", replaceSettingsHandler(s))
		sr.Delete("/", resetSettingsHandler(s))
	})

	r.Route("/data", func(dr chi.Router) {
		dr.Get("/export", exportHandler(s))
		dr.Post("/import", importHandler(s))
		dr.Get("/usage", usageHandler(s))
		dr.Delete("/", clearDataHandler(s))
	})
}

type initializeUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type updateUserRequest struct {
	Email       *string      `json:"email"`
	Name        *string      `json:"name"`
	Nickname    *string      `json:"nickname"`
	Avatar      *string      `json:"avatar"`
	Preferences *Preferences `json:"preferences"`
}

// getMeHandler godoc
// @Summary Usuario actual
// @Tags users
// @Produce json
// @Success 200 {object} User
// @Failure 401 {string} string "user not authenticated"
// @Router /me [get]
func getMeHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := s.CurrentUser()
		if u == nil {
			writeError(w, ErrUnauthenticated)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// initializeUserHandler godoc
// @Summary Inicializar usuario local
// @Description Crea el usuario de la sesión y adopta los perros sin dueño.
// @Tags users
// @Accept json
// @Produce json
// @Param body body initializeUserRequest true "Email y nombre"
// @Success 201 {object} User
// @Failure 400 {string} string "invalid email format"
// @Failure 507 {string} string "storage failure"
// @Router /me [post]
func initializeUserHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req initializeUserRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		u, err := s.InitializeUser(r.Context(), req.Email, req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, u)
	}
}

// updateMeHandler godoc
// @Summary Actualizar usuario actual
// @Tags users
// @Accept json
// @Produce json
// @Param body body updateUserRequest true "Campos a modificar"
// @Success 200 {object} User
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "user not authenticated"
// @Router /me [patch]
func updateMeHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateUserRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		u, err := s.UpdateUser(r.Context(), UserPatch{
			Email:       req.Email,
			Name:        req.Name,
			Nickname:    req.Nickname,
			Avatar:      req.Avatar,
			Preferences: req.Preferences,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Borra el usuario guardado; los perros quedan en el almacén.
// @Tags users
// @Success 204
// @Router /me/logout [post]
func logoutHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Logout(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// loadUserDataHandler godoc
// @Summary Cargar datos de un usuario
// @Description Acota la memoria a los perros del usuario y sus registros.
// @Tags users
// @Param userID path string true "User ID"
// @Success 204
// @Router /users/{userID}/load [post]
func loadUserDataHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.LoadUserData(r.Context(), chi.URLParam(r, "userID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// getSettingsHandler godoc
// @Summary Configuración de la app
// @Tags settings
// @Produce json
// @Success 200 {object} AppSettings
// @Router /settings [get]
func getSettingsHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Settings())
	}
}

// patchSettingsHandler godoc
// @Summary Actualizar configuración parcialmente
// @Description El cuerpo se mezcla sobre la configuración vigente.
// @Tags settings
// @Accept json
// @Produce json
// @Param body body AppSettings true "Campos a modificar"
// @Success 200 {object} AppSettings
// @Failure 400 {string} string "invalid settings"
// @Router /settings [patch]
func patchSettingsHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		var probe AppSettings
		if err != nil || json.Unmarshal(body, &probe) != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		next, err := s.UpdateSettings(r.Context(), func(cur *AppSettings) {
			_ = json.Unmarshal(body, cur)
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, next)
	}
}

// replaceSettingsHandler godoc
// @Summary Reemplazar configuración
// @Tags settings
// @Accept json
// @Produce json
// @Param body body AppSettings true "Configuración completa"
// @Success 200 {object} AppSettings
// @Failure 400 {string} string "invalid settings"
// @Router /settings [put]
func replaceSettingsHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AppSettings
		if !decodeJSON(w, r, &req) {
			return
		}
		next, err := s.ReplaceSettings(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, next)
	}
}

// resetSettingsHandler godoc
// @Summary Restablecer configuración por defecto
// @Tags settings
// @Produce json
// @Success 200 {object} AppSettings
// @Router /settings [delete]
func resetSettingsHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next, err := s.ResetSettings(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, next)
	}
}

// exportHandler godoc
// @Summary Exportar backup
// @Description Descarga el backup JSON. Sin photos=true se vacían fotos y adjuntos.
// @Tags data
// @Produce json
// @Param photos query bool false "Incluir fotos"
// @Param from query string false "Fecha mínima (RFC3339 o YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (RFC3339 o YYYY-MM-DD)"
// @Success 200 {object} Backup
// @Failure 400 {string} string "invalid query"
// @Router /data/export [get]
func exportHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		opts := ExportOptions{IncludePhotos: q.Get("photos") == "true"}
		var err error
		if opts.From, err = parseOptionalTime(s, "from", q.Get("from")); err != nil {
			writeError(w, err)
			return
		}
		if opts.To, err = parseOptionalTime(s, "to", q.Get("to")); err != nil {
			writeError(w, err)
			return
		}

		out, err := s.ExportData(r.Context(), opts)
		if err != nil {
			writeError(w, err)
			return
		}
		name := BackupFileName(s.Now().In(s.Location()), opts.IncludePhotos)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
	}
}

// importHandler godoc
// @Summary Importar backup
// @Description Reemplaza todos los datos. Un backup inválido no escribe nada.
// @Tags data
// @Accept json
// @Param body body Backup true "Backup exportado"
// @Success 204
// @Failure 400 {string} string "invalid backup data format"
// @Router /data/import [post]
func importHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}
		if err := s.ImportData(r.Context(), body); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// usageHandler godoc
// @Summary Uso del almacenamiento
// @Tags data
// @Produce json
// @Success 200 {object} StorageUsage
// @Router /data/usage [get]
func usageHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := s.StorageInfo(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// clearDataHandler godoc
// @Summary Borrar todos los datos
// @Tags data
// @Success 204
// @Router /data [delete]
func clearDataHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.ClearAllData(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ---- helpers ----

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

// writeError traduce los errores del dominio a status HTTP.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidBackup):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUnauthenticated):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrStorage):
		http.Error(w, err.Error(), http.StatusInsufficientStorage)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// parseTime acepta RFC3339 o YYYY-MM-DD (medianoche local).
func parseTime(s *Store, field, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, v, s.Location()); err == nil {
		return t, nil
	}
	return time.Time{}, ValidationFailed(field, field+" must be RFC3339 or YYYY-MM-DD")
}

func parseOptionalTime(s *Store, field, v string) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return time.Time{}, nil
	}
	return parseTime(s, field, v)
}

func parseTimePtr(s *Store, field string, v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := parseTime(s, field, *v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, ValidationFailed(key, key+" must be an integer")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
