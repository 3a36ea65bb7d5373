package pawlog

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func registerRoutineRoutes(r chi.Router, s *Store) {
	r.Route("/routines", func(rr chi.Router) {
		rr.Post("/", createRoutineHandler(s))
		rr.Get("/", listRoutinesHandler(s))
		rr.Patch("/{id}", updateRoutineHandler(s))
		rr.Delete("/{id}", deleteRoutineHandler(s))
	})
}

func registerHealthRoutes(r chi.Router, s *Store) {
	r.Route("/health-records", func(hr chi.Router) {
		hr.Post("/", createHealthRecordHandler(s))
		hr.Get("/", listHealthRecordsHandler(s))
		hr.Patch("/{id}", updateHealthRecordHandler(s))
		hr.Delete("/{id}", deleteHealthRecordHandler(s))
	})
}

func registerDiaryRoutes(r chi.Router, s *Store) {
	r.Route("/diary", func(dr chi.Router) {
		dr.Post("/", createDiaryHandler(s))
		dr.Get("/", listDiaryHandler(s))
		dr.Get("/moods", diaryMoodsHandler(s))
		dr.Patch("/{id}", updateDiaryHandler(s))
		dr.Delete("/{id}", deleteDiaryHandler(s))
	})
}

func registerReminderRoutes(r chi.Router, s *Store) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Post("/", createReminderHandler(s))
		rr.Get("/", listRemindersHandler(s))
		rr.Patch("/{id}", updateReminderHandler(s))
		rr.Delete("/{id}", deleteReminderHandler(s))
		rr.Post("/{id}/complete", completeReminderHandler(s))
	})
}

// ---- rutinas ----

type routineRequest struct {
	DogID     string      `json:"dogId"`
	Type      RoutineType `json:"type" enums:"walk,meal,poop,brush"`
	Timestamp string      `json:"timestamp"` // RFC3339; vacío = ahora
	Duration  *int        `json:"duration"`
	Distance  *float64    `json:"distance"`
	Amount    string      `json:"amount"`
	FoodType  string      `json:"foodType"`
	Notes     string      `json:"notes"`
	Weather   Weather     `json:"weather"`
	Location  string      `json:"location"`
	Photos    []string    `json:"photos"`
	Mood      Mood        `json:"mood"`
}

type routinePatchRequest struct {
	Type      *RoutineType `json:"type"`
	Timestamp *string      `json:"timestamp"`
	Duration  *int         `json:"duration"`
	Distance  *float64     `json:"distance"`
	Amount    *string      `json:"amount"`
	FoodType  *string      `json:"foodType"`
	Notes     *string      `json:"notes"`
	Weather   *Weather     `json:"weather"`
	Location  *string      `json:"location"`
	Photos    []string     `json:"photos"`
	Mood      *Mood        `json:"mood"`
}

// createRoutineHandler godoc
// @Summary Registrar rutina
// @Description Paseo, comida, deposición o cepillado.
// @Tags routines
// @Accept json
// @Produce json
// @Param body body routineRequest true "Rutina"
// @Success 201 {object} RoutineRecord
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "dog not found"
// @Router /routines [post]
func createRoutineHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req routineRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		ts, err := parseOptionalTime(s, "timestamp", req.Timestamp)
		if err != nil {
			writeError(w, err)
			return
		}
		if ts.IsZero() {
			ts = s.Now()
		}

		rec, err := s.AddRoutineRecord(r.Context(), RoutineInput{
			DogID:     req.DogID,
			Type:      req.Type,
			Timestamp: ts,
			Duration:  req.Duration,
			Distance:  req.Distance,
			Amount:    req.Amount,
			FoodType:  req.FoodType,
			Notes:     req.Notes,
			Weather:   req.Weather,
			Location:  req.Location,
			Photos:    req.Photos,
			Mood:      req.Mood,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// listRoutinesHandler godoc
// @Summary Listar rutinas
// @Description Con date devuelve las del día calendario; si no, dogId y type por los últimos days días.
// @Tags routines
// @Produce json
// @Param date query string false "Día (YYYY-MM-DD o RFC3339)"
// @Param dogId query string false "Dog ID"
// @Param type query string false "walk, meal, poop o brush"
// @Param days query int false "Ventana en días (default 7)"
// @Success 200 {array} RoutineRecord
// @Failure 400 {string} string "invalid query"
// @Router /routines [get]
func listRoutinesHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if v := q.Get("date"); v != "" {
			day, err := parseTime(s, "date", v)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, s.RoutineRecordsByDate(day))
			return
		}

		dogID := q.Get("dogId")
		if dogID == "" {
			http.Error(w, "date or dogId is required", http.StatusBadRequest)
			return
		}
		t := RoutineType(q.Get("type"))
		if t == "" {
			writeJSON(w, http.StatusOK, s.RoutineRecordsByDog(dogID))
			return
		}
		if !t.Valid() {
			writeError(w, ValidationFailed("type", "unknown routine type"))
			return
		}
		days, err := queryInt(r, "days")
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s.RecentRoutinesByType(dogID, t, days))
	}
}

// updateRoutineHandler godoc
// @Summary Actualizar rutina
// @Tags routines
// @Accept json
// @Produce json
// @Param id path string true "Routine ID"
// @Param body body routinePatchRequest true "Campos a modificar"
// @Success 200 {object} RoutineRecord
// @Failure 404 {string} string "not found"
// @Router /routines/{id} [patch]
func updateRoutineHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req routinePatchRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		ts, err := parseTimePtr(s, "timestamp", req.Timestamp)
		if err != nil {
			writeError(w, err)
			return
		}
		rec, err := s.UpdateRoutineRecord(r.Context(), chi.URLParam(r, "id"), RoutinePatch{
			Type:      req.Type,
			Timestamp: ts,
			Duration:  req.Duration,
			Distance:  req.Distance,
			Amount:    req.Amount,
			FoodType:  req.FoodType,
			Notes:     req.Notes,
			Weather:   req.Weather,
			Location:  req.Location,
			Photos:    req.Photos,
			Mood:      req.Mood,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// deleteRoutineHandler godoc
// @Summary Eliminar rutina
// @Tags routines
// @Param id path string true "Routine ID"
// @Success 204
// @Router /routines/{id} [delete]
func deleteRoutineHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.DeleteRoutineRecord(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ---- salud ----

type healthRequest struct {
	DogID           string     `json:"dogId"`
	Type            HealthType `json:"type" enums:"vaccination,checkup,medication,grooming,surgery"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Date            string     `json:"date"`     // RFC3339 o YYYY-MM-DD
	NextDate        string     `json:"nextDate"` // opcional
	Veterinarian    string     `json:"veterinarian"`
	Clinic          string     `json:"clinic"`
	Cost            *float64   `json:"cost"`
	MedicationName  string     `json:"medicationName"`
	Dosage          string     `json:"dosage"`
	Frequency       string     `json:"frequency"`
	Duration        *int       `json:"duration"`
	VaccineName     string     `json:"vaccineName"`
	BatchNumber     string     `json:"batchNumber"`
	Attachments     []string   `json:"attachments"`
	Notes           string     `json:"notes"`
	Completed       bool       `json:"completed"`
	ReminderEnabled *bool      `json:"reminderEnabled"`
	ReminderDays    *int       `json:"reminderDays"`
}

type healthPatchRequest struct {
	Type            *HealthType `json:"type"`
	Title           *string     `json:"title"`
	Description     *string     `json:"description"`
	Date            *string     `json:"date"`
	NextDate        *string     `json:"nextDate"` // "" = quitar
	Veterinarian    *string     `json:"veterinarian"`
	Clinic          *string     `json:"clinic"`
	Cost            *float64    `json:"cost"`
	MedicationName  *string     `json:"medicationName"`
	Dosage          *string     `json:"dosage"`
	Frequency       *string     `json:"frequency"`
	Duration        *int        `json:"duration"`
	VaccineName     *string     `json:"vaccineName"`
	BatchNumber     *string     `json:"batchNumber"`
	Attachments     []string    `json:"attachments"`
	Notes           *string     `json:"notes"`
	Completed       *bool       `json:"completed"`
	ReminderEnabled *bool       `json:"reminderEnabled"`
	ReminderDays    *int        `json:"reminderDays"`
}

// createHealthRecordHandler godoc
// @Summary Registrar evento de salud
// @Description Con nextDate y recordatorio habilitado se crea un recordatorio reminderDays antes.
// @Tags health
// @Accept json
// @Produce json
// @Param body body healthRequest true "Registro de salud"
// @Success 201 {object} HealthRecord
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "dog not found"
// @Router /health-records [post]
func createHealthRecordHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req healthRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		date, err := parseTime(s, "date", req.Date)
		if err != nil {
			writeError(w, err)
			return
		}
		next, err := parseOptionalTime(s, "nextDate", req.NextDate)
		if err != nil {
			writeError(w, err)
			return
		}
		var nextDate *time.Time
		if !next.IsZero() {
			nextDate = &next
		}

		rec, err := s.AddHealthRecord(r.Context(), HealthInput{
			DogID:           req.DogID,
			Type:            req.Type,
			Title:           req.Title,
			Description:     req.Description,
			Date:            date,
			NextDate:        nextDate,
			Veterinarian:    req.Veterinarian,
			Clinic:          req.Clinic,
			Cost:            req.Cost,
			MedicationName:  req.MedicationName,
			Dosage:          req.Dosage,
			Frequency:       req.Frequency,
			Duration:        req.Duration,
			VaccineName:     req.VaccineName,
			BatchNumber:     req.BatchNumber,
			Attachments:     req.Attachments,
			Notes:           req.Notes,
			Completed:       req.Completed,
			ReminderEnabled: req.ReminderEnabled,
			ReminderDays:    req.ReminderDays,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	}
}

// listHealthRecordsHandler godoc
// @Summary Listar registros de salud
// @Tags health
// @Produce json
// @Param view query string false "upcoming u overdue"
// @Param days query int false "Ventana para upcoming (default 30)"
// @Param dogId query string false "Dog ID (sin view)"
// @Success 200 {array} HealthRecord
// @Failure 400 {string} string "invalid query"
// @Router /health-records [get]
func listHealthRecordsHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("view") {
		case "upcoming":
			days, err := queryInt(r, "days")
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, s.UpcomingHealthRecords(days))
		case "overdue":
			writeJSON(w, http.StatusOK, s.OverdueHealthRecords())
		case "":
			dogID := q.Get("dogId")
			if dogID == "" {
				http.Error(w, "view or dogId is required", http.StatusBadRequest)
				return
			}
			writeJSON(w, http.StatusOK, s.HealthRecordsByDog(dogID))
		default:
			http.Error(w, "view must be upcoming or overdue", http.StatusBadRequest)
		}
	}
}

// updateHealthRecordHandler godoc
// @Summary Actualizar registro de salud
// @Description Re-sincroniza el recordatorio vinculado.
// @Tags health
// @Accept json
// @Produce json
// @Param id path string true "Health record ID"
// @Param body body healthPatchRequest true "Campos a modificar"
// @Success 200 {object} HealthRecord
// @Failure 404 {string} string "not found"
// @Router /health-records/{id} [patch]
func updateHealthRecordHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req healthPatchRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		date, err := parseTimePtr(s, "date", req.Date)
		if err != nil {
			writeError(w, err)
			return
		}
		p := HealthPatch{
			Type:            req.Type,
			Title:           req.Title,
			Description:     req.Description,
			Date:            date,
			Veterinarian:    req.Veterinarian,
			Clinic:          req.Clinic,
			Cost:            req.Cost,
			MedicationName:  req.MedicationName,
			Dosage:          req.Dosage,
			Frequency:       req.Frequency,
			Duration:        req.Duration,
			VaccineName:     req.VaccineName,
			BatchNumber:     req.BatchNumber,
			Attachments:     req.Attachments,
			Notes:           req.Notes,
			Completed:       req.Completed,
			ReminderEnabled: req.ReminderEnabled,
			ReminderDays:    req.ReminderDays,
		}
		if req.NextDate != nil {
			if *req.NextDate == "" {
				p.ClearNextDate = true
			} else if p.NextDate, err = parseTimePtr(s, "nextDate", req.NextDate); err != nil {
				writeError(w, err)
				return
			}
		}

		rec, err := s.UpdateHealthRecord(r.Context(), chi.URLParam(r, "id"), p)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// deleteHealthRecordHandler godoc
// @Summary Eliminar registro de salud
// @Description Borra también los recordatorios vinculados.
// @Tags health
// @Param id path string true "Health record ID"
// @Success 204
// @Router /health-records/{id} [delete]
func deleteHealthRecordHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.DeleteHealthRecord(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ---- diario ----

type diaryRequest struct {
	DogID         string   `json:"dogId"`
	Date          string   `json:"date"` // vacío = ahora
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Photos        []string `json:"photos"`
	Mood          Mood     `json:"mood"`
	Weather       Weather  `json:"weather"`
	Tags          []string `json:"tags"`
	SpecialMoment bool     `json:"specialMoment"`
	Milestone     string   `json:"milestone"`
	Gratitude     string   `json:"gratitude"`
	IsPublic      bool     `json:"isPublic"`
}

type diaryPatchRequest struct {
	Date          *string  `json:"date"`
	Title         *string  `json:"title"`
	Content       *string  `json:"content"`
	Photos        []string `json:"photos"`
	Mood          *Mood    `json:"mood"`
	Weather       *Weather `json:"weather"`
	Tags          []string `json:"tags"`
	SpecialMoment *bool    `json:"specialMoment"`
	Milestone     *string  `json:"milestone"`
	Gratitude     *string  `json:"gratitude"`
	IsPublic      *bool    `json:"isPublic"`
}

// createDiaryHandler godoc
// @Summary Escribir entrada de diario
// @Description Requiere usuario. Si isPublic, la entrada aparece en el feed de la comunidad.
// @Tags diary
// @Accept json
// @Produce json
// @Param body body diaryRequest true "Entrada"
// @Success 201 {object} DiaryEntry
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "user not authenticated"
// @Failure 404 {string} string "dog not found"
// @Router /diary [post]
func createDiaryHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req diaryRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		date, err := parseOptionalTime(s, "date", req.Date)
		if err != nil {
			writeError(w, err)
			return
		}
		if date.IsZero() {
			date = s.Now()
		}

		e, err := s.AddDiaryEntry(r.Context(), DiaryInput{
			DogID:         req.DogID,
			Date:          date,
			Title:         req.Title,
			Content:       req.Content,
			Photos:        req.Photos,
			Mood:          req.Mood,
			Weather:       req.Weather,
			Tags:          req.Tags,
			SpecialMoment: req.SpecialMoment,
			Milestone:     req.Milestone,
			Gratitude:     req.Gratitude,
			IsPublic:      req.IsPublic,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, e)
	}
}

// listDiaryHandler godoc
// @Summary Listar entradas del diario
// @Description Rango inclusivo; sin dogId incluye todos los perros.
// @Tags diary
// @Produce json
// @Param from query string false "Desde (RFC3339 o YYYY-MM-DD)"
// @Param to query string false "Hasta (RFC3339 o YYYY-MM-DD)"
// @Param dogId query string false "Dog ID"
// @Success 200 {array} DiaryEntry
// @Router /diary [get]
func listDiaryHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from, err := parseOptionalTime(s, "from", q.Get("from"))
		if err != nil {
			writeError(w, err)
			return
		}
		to, err := parseOptionalTime(s, "to", q.Get("to"))
		if err != nil {
			writeError(w, err)
			return
		}
		if to.IsZero() {
			to = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		}
		writeJSON(w, http.StatusOK, s.DiaryEntriesByDateRange(from, to, q.Get("dogId")))
	}
}

// diaryMoodsHandler godoc
// @Summary Conteo de moods
// @Tags diary
// @Produce json
// @Param dogId query string true "Dog ID"
// @Success 200 {object} map[string]int
// @Router /diary/moods [get]
func diaryMoodsHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.DiaryStatsByMood(r.URL.Query().Get("dogId")))
	}
}

// updateDiaryHandler godoc
// @Summary Actualizar entrada del diario
// @Description Cambiar isPublic publica o retira la entrada del feed.
// @Tags diary
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param body body diaryPatchRequest true "Campos a modificar"
// @Success 200 {object} DiaryEntry
// @Failure 404 {string} string "not found"
// @Router /diary/{id} [patch]
func updateDiaryHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req diaryPatchRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		date, err := parseTimePtr(s, "date", req.Date)
		if err != nil {
			writeError(w, err)
			return
		}
		e, err := s.UpdateDiaryEntry(r.Context(), chi.URLParam(r, "id"), DiaryPatch{
			Date:          date,
			Title:         req.Title,
			Content:       req.Content,
			Photos:        req.Photos,
			Mood:          req.Mood,
			Weather:       req.Weather,
			Tags:          req.Tags,
			SpecialMoment: req.SpecialMoment,
			Milestone:     req.Milestone,
			Gratitude:     req.Gratitude,
			IsPublic:      req.IsPublic,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

// deleteDiaryHandler godoc
// @Summary Eliminar entrada del diario
// @Tags diary
// @Param id path string true "Entry ID"
// @Success 204
// @Router /diary/{id} [delete]
func deleteDiaryHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.DeleteDiaryEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ---- recordatorios ----

type reminderRequest struct {
	DogID           string       `json:"dogId"`
	Type            ReminderType `json:"type" enums:"health,routine,custom"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	DueDate         string       `json:"dueDate"`
	Priority        Priority     `json:"priority" enums:"low,medium,high"`
	RelatedRecordID string       `json:"relatedRecordId"`
}

type reminderPatchRequest struct {
	Type             *ReminderType `json:"type"`
	Title            *string       `json:"title"`
	Description      *string       `json:"description"`
	DueDate          *string       `json:"dueDate"`
	IsCompleted      *bool         `json:"isCompleted"`
	Priority         *Priority     `json:"priority"`
	NotificationSent *bool         `json:"notificationSent"`
}

// reminderResponse agrega la etiqueta D-day calculada en la zona del Store.
type reminderResponse struct {
	Reminder
	DDay string `json:"dDay"`
}

func toReminderResponses(s *Store, items []Reminder) []reminderResponse {
	out := make([]reminderResponse, 0, len(items))
	for _, r := range items {
		out = append(out, reminderResponse{Reminder: r, DDay: s.DDay(r.DueDate)})
	}
	return out
}

// createReminderHandler godoc
// @Summary Crear recordatorio
// @Tags reminders
// @Accept json
// @Produce json
// @Param body body reminderRequest true "Recordatorio"
// @Success 201 {object} reminderResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "dog not found"
// @Router /reminders [post]
func createReminderHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reminderRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		due, err := parseTime(s, "dueDate", req.DueDate)
		if err != nil {
			writeError(w, err)
			return
		}
		rem, err := s.AddReminder(r.Context(), ReminderInput{
			DogID:           req.DogID,
			Type:            req.Type,
			Title:           req.Title,
			Description:     req.Description,
			DueDate:         due,
			Priority:        req.Priority,
			RelatedRecordID: req.RelatedRecordID,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, reminderResponse{Reminder: rem, DDay: s.DDay(rem.DueDate)})
	}
}

// listRemindersHandler godoc
// @Summary Listar recordatorios
// @Description today: pendientes de hoy por prioridad. upcoming: próximos days días.
// @Tags reminders
// @Produce json
// @Param view query string false "today (default) o upcoming"
// @Param days query int false "Ventana para upcoming (default 7)"
// @Success 200 {array} reminderResponse
// @Failure 400 {string} string "invalid query"
// @Router /reminders [get]
func listRemindersHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("view") {
		case "", "today":
			writeJSON(w, http.StatusOK, toReminderResponses(s, s.GetTodayReminders()))
		case "upcoming":
			days, err := queryInt(r, "days")
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, toReminderResponses(s, s.UpcomingReminders(days)))
		default:
			http.Error(w, "view must be today or upcoming", http.StatusBadRequest)
		}
	}
}

// updateReminderHandler godoc
// @Summary Actualizar recordatorio
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID"
// @Param body body reminderPatchRequest true "Campos a modificar"
// @Success 200 {object} reminderResponse
// @Failure 404 {string} string "not found"
// @Router /reminders/{id} [patch]
func updateReminderHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reminderPatchRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		due, err := parseTimePtr(s, "dueDate", req.DueDate)
		if err != nil {
			writeError(w, err)
			return
		}
		rem, err := s.UpdateReminder(r.Context(), chi.URLParam(r, "id"), ReminderPatch{
			Type:             req.Type,
			Title:            req.Title,
			Description:      req.Description,
			DueDate:          due,
			IsCompleted:      req.IsCompleted,
			Priority:         req.Priority,
			NotificationSent: req.NotificationSent,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reminderResponse{Reminder: rem, DDay: s.DDay(rem.DueDate)})
	}
}

// completeReminderHandler godoc
// @Summary Completar recordatorio
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} reminderResponse
// @Failure 404 {string} string "not found"
// @Router /reminders/{id}/complete [post]
func completeReminderHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rem, err := s.CompleteReminder(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reminderResponse{Reminder: rem, DDay: s.DDay(rem.DueDate)})
	}
}

// deleteReminderHandler godoc
// @Summary Eliminar recordatorio
// @Tags reminders
// @Param id path string true "Reminder ID"
// @Success 204
// @Router /reminders/{id} [delete]
func deleteReminderHandler(s *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.DeleteReminder(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
