package pawlog

import (
	"context"
	"sort"
	"strings"
	"time"
)

type RoutineInput struct {
	DogID     string
	Type      RoutineType
	Timestamp time.Time
	Duration  *int
	Distance  *float64
	Amount    string
	FoodType  string
	Notes     string
	Weather   Weather
	Location  string
	Photos    []string
	Mood      Mood
}

type RoutinePatch struct {
	Type      *RoutineType
	Timestamp *time.Time
	Duration  *int
	Distance  *float64
	Amount    *string
	FoodType  *string
	Notes     *string
	Weather   *Weather
	Location  *string
	Photos    []string // nil = no tocar
	Mood      *Mood
}

func idOfRoutine(r RoutineRecord) string { return r.ID }

func (s *Store) AddRoutineRecord(ctx context.Context, in RoutineInput) (RoutineRecord, error) {
	if !in.Type.Valid() {
		return RoutineRecord{}, ValidationFailed("type", "unknown routine type")
	}
	if !in.Weather.Valid() {
		return RoutineRecord{}, ValidationFailed("weather", "unknown weather")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireDogLocked(in.DogID); err != nil {
		return RoutineRecord{}, err
	}
	if err := validatePhotos(in.Photos, s.settings); err != nil {
		return RoutineRecord{}, err
	}
	photos := in.Photos
	if photos == nil {
		photos = []string{}
	}

	created, err := s.repo.Routines().Create(ctx, RoutineRecord{
		DogID:     in.DogID,
		Type:      in.Type,
		Timestamp: in.Timestamp,
		Duration:  in.Duration,
		Distance:  in.Distance,
		Amount:    strings.TrimSpace(in.Amount),
		FoodType:  strings.TrimSpace(in.FoodType),
		Notes:     strings.TrimSpace(in.Notes),
		Weather:   in.Weather,
		Location:  strings.TrimSpace(in.Location),
		Photos:    photos,
		Mood:      in.Mood,
	})
	if !s.persisted("add_routine", err) {
		return RoutineRecord{}, err
	}
	s.routines = append(s.routines, created)
	return created, err
}

func (s *Store) UpdateRoutineRecord(ctx context.Context, id string, p RoutinePatch) (RoutineRecord, error) {
	if p.Type != nil && !p.Type.Valid() {
		return RoutineRecord{}, ValidationFailed("type", "unknown routine type")
	}
	if p.Weather != nil && !p.Weather.Valid() {
		return RoutineRecord{}, ValidationFailed("weather", "unknown weather")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.routines, id, idOfRoutine)
	if i < 0 {
		return RoutineRecord{}, NotFound("routine record", id)
	}
	if p.Photos != nil {
		if err := validatePhotos(p.Photos, s.settings); err != nil {
			return RoutineRecord{}, err
		}
	}

	updated, err := s.repo.Routines().Update(ctx, id, func(r *RoutineRecord) {
		if p.Type != nil {
			r.Type = *p.Type
		}
		if p.Timestamp != nil {
			r.Timestamp = *p.Timestamp
		}
		if p.Duration != nil {
			r.Duration = p.Duration
		}
		if p.Distance != nil {
			r.Distance = p.Distance
		}
		if p.Amount != nil {
			r.Amount = strings.TrimSpace(*p.Amount)
		}
		if p.FoodType != nil {
			r.FoodType = strings.TrimSpace(*p.FoodType)
		}
		if p.Notes != nil {
			r.Notes = strings.TrimSpace(*p.Notes)
		}
		if p.Weather != nil {
			r.Weather = *p.Weather
		}
		if p.Location != nil {
			r.Location = strings.TrimSpace(*p.Location)
		}
		if p.Photos != nil {
			r.Photos = p.Photos
		}
		if p.Mood != nil {
			r.Mood = *p.Mood
		}
	})
	if !s.persisted("update_routine", err) {
		return RoutineRecord{}, err
	}
	s.routines[i] = updated
	return updated, err
}

func (s *Store) DeleteRoutineRecord(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexByID(s.routines, id, idOfRoutine) < 0 {
		return NotFound("routine record", id)
	}
	_, err := s.repo.Routines().Delete(ctx, id)
	if !s.persisted("delete_routine", err) {
		return err
	}
	s.routines, _ = removeByID(s.routines, id, idOfRoutine)
	return err
}

// RoutineRecordsByDog: más recientes primero.
func (s *Store) RoutineRecordsByDog(dogID string) []RoutineRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]RoutineRecord, 0)
	for _, r := range s.routines {
		if r.DogID == dogID {
			out = append(out, r)
		}
	}
	sortRoutinesDesc(out)
	return out
}

// RoutineRecordsByDate devuelve los registros del mismo día calendario local,
// sin importar la hora, más recientes primero.
func (s *Store) RoutineRecordsByDate(date time.Time) []RoutineRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := s.startOfDay(date)
	end := start.AddDate(0, 0, 1)

	out := make([]RoutineRecord, 0)
	for _, r := range s.routines {
		if !r.Timestamp.Before(start) && r.Timestamp.Before(end) {
			out = append(out, r)
		}
	}
	sortRoutinesDesc(out)
	return out
}

// RecentRoutinesByType: últimos days días (7 si days <= 0).
func (s *Store) RecentRoutinesByType(dogID string, t RoutineType, days int) []RoutineRecord {
	if days <= 0 {
		days = 7
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := s.now().AddDate(0, 0, -days)
	out := make([]RoutineRecord, 0)
	for _, r := range s.routines {
		if r.DogID == dogID && r.Type == t && !r.Timestamp.Before(cutoff) {
			out = append(out, r)
		}
	}
	sortRoutinesDesc(out)
	return out
}

func sortRoutinesDesc(items []RoutineRecord) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
}
