package pawlog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func registerDogRoutes(r chi.Router, s *Store) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(s))
		dr.Post("/", createDogHandler(s))

		dr.Route("/{dogID}", func(one chi.Router) {
			one.Get("/", getDogHandler(s))
			one.Patch("/", updateDogHandler(s))
			one.Delete("/", deleteDogHandler(s))

			one.Get("/stats", dogStatsHandler(s))
			one.Get("/walk-stats", walkStatsHandler(s))
			one.Get("/health-stats", healthStatsHandler(s))

			one.Get("/routines", dogRoutinesHandler(s))
			one.Get("/health-records", dogHealthRecordsHandler(s))
			one.Get("/diary", dogDiaryHandler(s))
			one.Get("/reminders", dogRemindersHandler(s))
		})
	})
}

// createDogRequest es el cuerpo para registrar un perro.
type createDogRequest struct {
	Name        string  `json:"name"`
	Breed       string  `json:"breed"`
	BirthDate   string  `json:"birthDate"` // RFC3339 o YYYY-MM-DD
	Weight      float64 `json:"weight"`
	Gender      Gender  `json:"gender" enums:"male,female"`
	IsNeutered  bool    `json:"isNeutered"`
	Photo       string  `json:"photo"`
	MicrochipID string  `json:"microchipId"`
	Notes       string  `json:"notes"`
}

type updateDogRequest struct {
	Name        *string  `json:"name"`
	Breed       *string  `json:"breed"`
	BirthDate   *string  `json:"birthDate"`
	Weight      *float64 `json:"weight"`
	Gender      *Gender  `json:"gender"`
	IsNeutered  *bool    `json:"isNeutered"`
	Photo       *string  `json:"photo"`
	MicrochipID *string  `json:"microchipId"`
	Notes       *string  `json:"notes"`
	IsActive    *bool    `json:"isActive"`
}

// dogStatsResponse agrega la edad en meses a DogStats.
type dogStatsResponse struct {
	DogStats
	AgeInMonths int `json:"ageInMonths"`
}

// listDogsHandler godoc
// @Summary Listar perros
// @Description Perros del usuario actual (o sin dueño si no hay sesión).
// @Tags dogs
// @Produce json
// @Success 200 {array} Dog
// @Router /dogs [get]
func listDogsHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Dogs())
	}
}

// createDogHandler godoc
// @Summary Registrar perro
// @Tags dogs
// @Accept json
// @Produce json
// @Param body body createDogRequest true "Datos del perro"
// @Success 201 {object} Dog
// @Failure 400 {string} string "invalid input"
// @Failure 507 {string} string "storage failure"
// @Router /dogs [post]
func createDogHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDogRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		birth, err := parseTime(s, "birthDate", req.BirthDate)
		if err != nil {
			writeError(w, err)
			return
		}
		in := DogInput{
			Name:        req.Name,
			Breed:       req.Breed,
			BirthDate:   birth,
			Weight:      req.Weight,
			Gender:      req.Gender,
			IsNeutered:  req.IsNeutered,
			Photo:       req.Photo,
			MicrochipID: req.MicrochipID,
			Notes:       req.Notes,
		}
		if err := ValidateDogInput(in, s.Now()); err != nil {
			writeError(w, err)
			return
		}

		d, err := s.AddDog(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, d)
	}
}

// getDogHandler godoc
// @Summary Obtener perro
// @Tags dogs
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {object} Dog
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID} [get]
func getDogHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := s.Dog(chi.URLParam(r, "dogID"))
		if !ok {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// updateDogHandler godoc
// @Summary Actualizar perro
// @Tags dogs
// @Accept json
// @Produce json
// @Param dogID path string true "Dog ID"
// @Param body body updateDogRequest true "Campos a modificar"
// @Success 200 {object} Dog
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID} [patch]
func updateDogHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateDogRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		birth, err := parseTimePtr(s, "birthDate", req.BirthDate)
		if err != nil {
			writeError(w, err)
			return
		}

		d, err := s.UpdateDog(r.Context(), chi.URLParam(r, "dogID"), DogPatch{
			Name:        req.Name,
			Breed:       req.Breed,
			BirthDate:   birth,
			Weight:      req.Weight,
			Gender:      req.Gender,
			IsNeutered:  req.IsNeutered,
			Photo:       req.Photo,
			MicrochipID: req.MicrochipID,
			Notes:       req.Notes,
			IsActive:    req.IsActive,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// deleteDogHandler godoc
// @Summary Eliminar perro
// @Description Borra el perro y en cascada rutinas, salud, diario y recordatorios.
// @Tags dogs
// @Param dogID path string true "Dog ID"
// @Success 204
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID} [delete]
func deleteDogHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.DeleteDog(r.Context(), chi.URLParam(r, "dogID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// dogStatsHandler godoc
// @Summary Estadísticas del perro
// @Tags dogs
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {object} dogStatsResponse
// @Failure 404 {string} string "dog not found"
// @Router /dogs/{dogID}/stats [get]
func dogStatsHandler(s *Store) http.HandlerFunc {
	return withDog(s, func(w http.ResponseWriter, r *http.Request, dogID string) {
		writeJSON(w, http.StatusOK, dogStatsResponse{
			DogStats:    s.GetDogStats(dogID),
			AgeInMonths: s.DogAgeInMonths(dogID),
		})
	})
}

// walkStatsHandler godoc
// @Summary Estadísticas de paseo
// @Tags dogs
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {object} WalkStats
// @Router /dogs/{dogID}/walk-stats [get]
func walkStatsHandler(s *Store) http.HandlerFunc {
	return withDog(s, func(w http.ResponseWriter, r *http.Request, dogID string) {
		writeJSON(w, http.StatusOK, s.WalkStats(dogID))
	})
}

// healthStatsHandler godoc
// @Summary Estadísticas de salud
// @Tags dogs
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {object} HealthStats
// @Router /dogs/{dogID}/health-stats [get]
func healthStatsHandler(s *Store) http.HandlerFunc {
	return withDog(s, func(w http.ResponseWriter, r *http.Request, dogID string) {
		writeJSON(w, http.StatusOK, s.HealthStats(dogID))
	})
}

// @Summary Rutinas del perro
// @Tags dogs
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {array} RoutineRecord
// @Router /dogs/{dogID}/routines [get]
func dogRoutinesHandler(s *Store) http.HandlerFunc {
	return withDog(s, func(w http.ResponseWriter, r *http.Request, dogID string) {
		writeJSON(w, http.StatusOK, s.RoutineRecordsByDog(dogID))
	})
}

// @Summary Registros de salud del perro
// @Tags dogs
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {array} HealthRecord
// @Router /dogs/{dogID}/health-records [get]
func dogHealthRecordsHandler(s *Store) http.HandlerFunc {
	return withDog(s, func(w http.ResponseWriter, r *http.Request, dogID string) {
		writeJSON(w, http.StatusOK, s.HealthRecordsByDog(dogID))
	})
}

// @Summary Diario del perro
// @Tags dogs
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {array} DiaryEntry
// @Router /dogs/{dogID}/diary [get]
func dogDiaryHandler(s *Store) http.HandlerFunc {
	return withDog(s, func(w http.ResponseWriter, r *http.Request, dogID string) {
		writeJSON(w, http.StatusOK, s.DiaryEntriesByDog(dogID))
	})
}

// @Summary Recordatorios del perro
// @Tags dogs
// @Produce json
// @Param dogID path string true "Dog ID"
// @Success 200 {array} reminderResponse
// @Router /dogs/{dogID}/reminders [get]
func dogRemindersHandler(s *Store) http.HandlerFunc {
	return withDog(s, func(w http.ResponseWriter, r *http.Request, dogID string) {
		writeJSON(w, http.StatusOK, toReminderResponses(s, s.RemindersByDog(dogID)))
	})
}

// withDog responde 404 si el perro no está en el scope del usuario.
func withDog(s *Store, next func(w http.ResponseWriter, r *http.Request, dogID string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dogID := chi.URLParam(r, "dogID")
		if _, ok := s.Dog(dogID); !ok {
			http.Error(w, "dog not found", http.StatusNotFound)
			return
		}
		next(w, r, dogID)
	}
}
