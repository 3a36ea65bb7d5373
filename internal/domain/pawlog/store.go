package pawlog

import (
	"context"
	"sync"
	"time"

	"pawlog/internal/platform/logger"
)

const (
	defaultNickname     = "펫로그유저"
	unknownUserID       = "unknown"
	unknownNickname     = "알 수 없음"
	defaultReminderDays = 3
)

// Store es el agregado en memoria de los datos del usuario actual.
// Cada mutación escribe primero vía Repository y luego actualiza memoria.
type Store struct {
	mu   sync.RWMutex
	repo Repository
	feed Feed
	log  logger.Logger
	now  func() time.Time
	loc  *time.Location

	user      *User
	dogs      []Dog
	routines  []RoutineRecord
	health    []HealthRecord
	diary     []DiaryEntry
	reminders []Reminder
	settings  AppSettings
}

// NewStore arma el Store. feed puede ser nil (las publicaciones se registran como descartadas).
func NewStore(repo Repository, feed Feed, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		repo:     repo,
		feed:     feed,
		log:      log.With(map[string]any{"component": "store"}),
		now:      time.Now,
		loc:      time.Local,
		settings: DefaultSettings(),
	}
}

// SetLocation fija la zona usada para "hoy" y agrupaciones por día.
func (s *Store) SetLocation(loc *time.Location) {
	if loc == nil {
		return
	}
	s.mu.Lock()
	s.loc = loc
	s.mu.Unlock()
}

// Now es el reloj del Store; los handlers lo usan para defaults de fecha.
func (s *Store) Now() time.Time { return s.now() }

func (s *Store) Location() *time.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loc
}

// Sync rehidrata el estado desde el almacén durable.
func (s *Store) Sync(ctx context.Context) error {
	u, err := s.repo.LoadUser(ctx)
	if err != nil {
		return err
	}
	if u != nil && u.Nickname == "" {
		u.Nickname = u.Name
		if u.Nickname == "" {
			u.Nickname = defaultNickname
		}
	}

	ownerID := ""
	if u != nil {
		ownerID = u.ID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// un backup importado puede traer perros sin ownerId: pasan al usuario guardado
	var adopted []Dog
	if u != nil {
		adopted, err = s.adoptOrphanDogsLocked(ctx, u.ID)
		if err != nil && !IsWriteFailure(err) {
			return err
		}
	}
	if err := s.loadScopeLocked(ctx, ownerID, adopted...); err != nil {
		return err
	}
	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return err
	}

	s.user = u
	s.settings = settings
	s.fillDiaryDefaultsLocked()
	if s.feed != nil {
		s.feed.SetViewer(s.user)
	}
	s.log.Debug("store synced", map[string]any{
		"dogs":      len(s.dogs),
		"routines":  len(s.routines),
		"health":    len(s.health),
		"diary":     len(s.diary),
		"reminders": len(s.reminders),
	})
	return nil
}

// LoadUserData re-acota la memoria a los perros de userID y sus registros.
func (s *Store) LoadUserData(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadScopeLocked(ctx, userID)
}

// loadScopeLocked reemplaza la memoria por los perros de ownerID y sus registros.
// extra suma perros adoptados cuya escritura falló (el almacén aún no los tiene).
func (s *Store) loadScopeLocked(ctx context.Context, ownerID string, extra ...Dog) error {
	dogs, err := s.repo.Dogs().List(ctx, ByOwner(ownerID))
	if err != nil {
		return err
	}
	for _, d := range extra {
		if indexByID(dogs, d.ID, idOfDog) < 0 {
			dogs = append(dogs, d)
		}
	}
	owned := make(map[string]struct{}, len(dogs))
	for _, d := range dogs {
		owned[d.ID] = struct{}{}
	}

	routines, err := s.repo.Routines().List(ctx, func(r RoutineRecord) bool { return has(owned, r.DogID) })
	if err != nil {
		return err
	}
	health, err := s.repo.HealthRecords().List(ctx, func(r HealthRecord) bool { return has(owned, r.DogID) })
	if err != nil {
		return err
	}
	diary, err := s.repo.DiaryEntries().List(ctx, func(e DiaryEntry) bool { return has(owned, e.DogID) })
	if err != nil {
		return err
	}
	reminders, err := s.repo.Reminders().List(ctx, func(r Reminder) bool { return has(owned, r.DogID) })
	if err != nil {
		return err
	}

	s.dogs = dogs
	s.routines = routines
	s.health = health
	s.diary = diary
	s.reminders = reminders
	return nil
}

func (s *Store) fillDiaryDefaultsLocked() {
	for i := range s.diary {
		e := &s.diary[i]
		if e.UserID == "" {
			e.UserID = unknownUserID
			if s.user != nil {
				e.UserID = s.user.ID
			}
		}
		if e.Nickname == "" {
			e.Nickname = unknownNickname
			if s.user != nil {
				e.Nickname = s.user.Nickname
			}
		}
		e.Tags = NormalizeTags(e.Tags)
	}
}

// ---- helpers ----

func has(set map[string]struct{}, k string) bool {
	_, ok := set[k]
	return ok
}

// startOfDay devuelve 00:00 del día calendario local de t.
func (s *Store) startOfDay(t time.Time) time.Time {
	y, m, d := t.In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

func (s *Store) ownerIDLocked() string {
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

func (s *Store) dogIndexLocked(id string) int {
	for i := range s.dogs {
		if s.dogs[i].ID == id {
			return i
		}
	}
	return -1
}

// requireDogLocked asegura que el perro pertenece al scope actual.
func (s *Store) requireDogLocked(dogID string) (Dog, error) {
	i := s.dogIndexLocked(dogID)
	if i < 0 {
		return Dog{}, NotFound("dog", dogID)
	}
	return s.dogs[i], nil
}

// persisted decide si la mutación en memoria debe aplicarse:
// éxito o fallo de escritura (ya registrado); cualquier otro error aborta.
func (s *Store) persisted(op string, err error) bool {
	if err == nil {
		return true
	}
	if IsWriteFailure(err) {
		s.log.Error("persist failed, in-memory state kept", map[string]any{"op": op, "error": err.Error()})
		return true
	}
	return false
}

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i := range items {
		if idOf(items[i]) == id {
			return i
		}
	}
	return -1
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	i := indexByID(items, id, idOf)
	if i < 0 {
		return items, false
	}
	return append(items[:i], items[i+1:]...), true
}

func removeWhere[T any](items []T, match func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}

func cloneSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
