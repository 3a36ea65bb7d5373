package pawlog

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

type DiaryInput struct {
	DogID         string
	Date          time.Time
	Title         string
	Content       string
	Photos        []string
	Mood          Mood
	Weather       Weather
	Tags          []string
	SpecialMoment bool
	Milestone     string
	Gratitude     string
	IsPublic      bool
}

type DiaryPatch struct {
	Date          *time.Time
	Title         *string
	Content       *string
	Photos        []string // nil = no tocar
	Mood          *Mood
	Weather       *Weather
	Tags          []string // nil = no tocar
	SpecialMoment *bool
	Milestone     *string
	Gratitude     *string
	IsPublic      *bool
}

func idOfDiary(e DiaryEntry) string { return e.ID }

// AddDiaryEntry exige sesión; las entradas públicas se publican en el feed.
func (s *Store) AddDiaryEntry(ctx context.Context, in DiaryInput) (DiaryEntry, error) {
	if err := validateDiaryContent(in.Content); err != nil {
		return DiaryEntry{}, err
	}
	if !in.Mood.Valid() {
		return DiaryEntry{}, ValidationFailed("mood", "unknown mood")
	}
	if !in.Weather.Valid() {
		return DiaryEntry{}, ValidationFailed("weather", "unknown weather")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return DiaryEntry{}, ErrUnauthenticated
	}
	dog, err := s.requireDogLocked(in.DogID)
	if err != nil {
		return DiaryEntry{}, err
	}
	if err := validatePhotos(in.Photos, s.settings); err != nil {
		return DiaryEntry{}, err
	}
	photos := in.Photos
	if photos == nil {
		photos = []string{}
	}

	content := strings.TrimSpace(in.Content)
	now := s.now()
	created, err := s.repo.DiaryEntries().Create(ctx, DiaryEntry{
		Record:        Record{UpdatedAt: &now},
		DogID:         in.DogID,
		Date:          in.Date,
		Title:         strings.TrimSpace(in.Title),
		Content:       content,
		Photos:        photos,
		Mood:          in.Mood,
		Weather:       in.Weather,
		Tags:          NormalizeTags(in.Tags),
		SpecialMoment: in.SpecialMoment,
		Milestone:     strings.TrimSpace(in.Milestone),
		Gratitude:     strings.TrimSpace(in.Gratitude),
		WordCount:     utf8.RuneCountInString(content),
		IsPublic:      in.IsPublic,
		UserID:        s.user.ID,
		Nickname:      s.user.Nickname,
	})
	if !s.persisted("add_diary_entry", err) {
		return DiaryEntry{}, err
	}
	s.diary = append(s.diary, created)

	if created.IsPublic {
		s.publishLocked(created, dog.Name)
	}
	return created, err
}

// UpdateDiaryEntry aplica el patch. Un cambio de isPublic publica o retira la entrada del feed.
func (s *Store) UpdateDiaryEntry(ctx context.Context, id string, p DiaryPatch) (DiaryEntry, error) {
	if p.Content != nil {
		if err := validateDiaryContent(*p.Content); err != nil {
			return DiaryEntry{}, err
		}
	}
	if p.Mood != nil && !p.Mood.Valid() {
		return DiaryEntry{}, ValidationFailed("mood", "unknown mood")
	}
	if p.Weather != nil && !p.Weather.Valid() {
		return DiaryEntry{}, ValidationFailed("weather", "unknown weather")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.diary, id, idOfDiary)
	if i < 0 {
		return DiaryEntry{}, NotFound("diary entry", id)
	}
	if p.Photos != nil {
		if err := validatePhotos(p.Photos, s.settings); err != nil {
			return DiaryEntry{}, err
		}
	}
	wasPublic := s.diary[i].IsPublic

	updated, err := s.repo.DiaryEntries().Update(ctx, id, func(e *DiaryEntry) {
		if p.Date != nil {
			e.Date = *p.Date
		}
		if p.Title != nil {
			e.Title = strings.TrimSpace(*p.Title)
		}
		if p.Content != nil {
			e.Content = strings.TrimSpace(*p.Content)
			e.WordCount = utf8.RuneCountInString(e.Content)
		}
		if p.Photos != nil {
			e.Photos = p.Photos
		}
		if p.Mood != nil {
			e.Mood = *p.Mood
		}
		if p.Weather != nil {
			e.Weather = *p.Weather
		}
		if p.Tags != nil {
			e.Tags = NormalizeTags(p.Tags)
		}
		if p.SpecialMoment != nil {
			e.SpecialMoment = *p.SpecialMoment
		}
		if p.Milestone != nil {
			e.Milestone = strings.TrimSpace(*p.Milestone)
		}
		if p.Gratitude != nil {
			e.Gratitude = strings.TrimSpace(*p.Gratitude)
		}
		if p.IsPublic != nil {
			e.IsPublic = *p.IsPublic
		}
	})
	if !s.persisted("update_diary_entry", err) {
		return DiaryEntry{}, err
	}
	s.diary[i] = updated

	switch {
	case !wasPublic && updated.IsPublic:
		name := ""
		if d, derr := s.requireDogLocked(updated.DogID); derr == nil {
			name = d.Name
		}
		s.publishLocked(updated, name)
	case wasPublic && !updated.IsPublic:
		s.retractLocked(updated.ID)
	}
	return updated, err
}

func (s *Store) DeleteDiaryEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.diary, id, idOfDiary)
	if i < 0 {
		return NotFound("diary entry", id)
	}
	wasPublic := s.diary[i].IsPublic

	_, err := s.repo.DiaryEntries().Delete(ctx, id)
	if !s.persisted("delete_diary_entry", err) {
		return err
	}
	s.diary, _ = removeByID(s.diary, id, idOfDiary)
	if wasPublic {
		s.retractLocked(id)
	}
	return err
}

// DiaryEntriesByDog: fecha más reciente primero.
func (s *Store) DiaryEntriesByDog(dogID string) []DiaryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]DiaryEntry, 0)
	for _, e := range s.diary {
		if e.DogID == dogID {
			out = append(out, e)
		}
	}
	sortDiaryDesc(out)
	return out
}

// DiaryEntriesByDateRange: [start, end] inclusivo; dogID vacío = todos los perros.
func (s *Store) DiaryEntriesByDateRange(start, end time.Time, dogID string) []DiaryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]DiaryEntry, 0)
	for _, e := range s.diary {
		if dogID != "" && e.DogID != dogID {
			continue
		}
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		out = append(out, e)
	}
	sortDiaryDesc(out)
	return out
}

// DiaryStatsByMood cuenta entradas por mood; dogID vacío = todos los perros.
func (s *Store) DiaryStatsByMood(dogID string) map[Mood]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[Mood]int)
	for _, e := range s.diary {
		if dogID != "" && e.DogID != dogID {
			continue
		}
		out[e.Mood]++
	}
	return out
}

func sortDiaryDesc(items []DiaryEntry) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
}

// publishLocked entrega la proyección pública al feed (at-most-once).
func (s *Store) publishLocked(e DiaryEntry, dogName string) {
	if s.feed == nil {
		s.log.Warn("public diary dropped: no feed attached", map[string]any{"entry_id": e.ID})
		return
	}
	if dogName == "" {
		s.log.Warn("public diary dropped: dog not found", map[string]any{"entry_id": e.ID, "dog_id": e.DogID})
		return
	}
	s.feed.PublishDiary(e, dogName)
	s.log.Debug("diary published", map[string]any{"entry_id": e.ID})
}

func (s *Store) retractLocked(entryID string) {
	if s.feed == nil {
		return
	}
	s.feed.RetractDiary(entryID)
}
