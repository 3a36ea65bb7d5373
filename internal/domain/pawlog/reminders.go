package pawlog

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

type ReminderInput struct {
	DogID           string
	Type            ReminderType // vacío = custom
	Title           string
	Description     string
	DueDate         time.Time
	Priority        Priority // vacío = medium
	RelatedRecordID string
}

type ReminderPatch struct {
	Type             *ReminderType
	Title            *string
	Description      *string
	DueDate          *time.Time
	IsCompleted      *bool
	Priority         *Priority
	NotificationSent *bool
}

func idOfReminder(r Reminder) string { return r.ID }

func (s *Store) AddReminder(ctx context.Context, in ReminderInput) (Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addReminderLocked(ctx, in)
}

func (s *Store) addReminderLocked(ctx context.Context, in ReminderInput) (Reminder, error) {
	if in.Type == "" {
		in.Type = ReminderCustom
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if !in.Type.Valid() {
		return Reminder{}, ValidationFailed("type", "unknown reminder type")
	}
	if !in.Priority.Valid() {
		return Reminder{}, ValidationFailed("priority", "priority must be low, medium or high")
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Reminder{}, ValidationFailed("title", "title is required")
	}
	if _, err := s.requireDogLocked(in.DogID); err != nil {
		return Reminder{}, err
	}

	created, err := s.repo.Reminders().Create(ctx, Reminder{
		DogID:           in.DogID,
		Type:            in.Type,
		Title:           title,
		Description:     strings.TrimSpace(in.Description),
		DueDate:         in.DueDate,
		IsCompleted:     false,
		Priority:        in.Priority,
		RelatedRecordID: in.RelatedRecordID,
	})
	if !s.persisted("add_reminder", err) {
		return Reminder{}, err
	}
	s.reminders = append(s.reminders, created)
	return created, err
}

func (s *Store) UpdateReminder(ctx context.Context, id string, p ReminderPatch) (Reminder, error) {
	if p.Type != nil && !p.Type.Valid() {
		return Reminder{}, ValidationFailed("type", "unknown reminder type")
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return Reminder{}, ValidationFailed("priority", "priority must be low, medium or high")
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return Reminder{}, ValidationFailed("title", "title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.reminders, id, idOfReminder)
	if i < 0 {
		return Reminder{}, NotFound("reminder", id)
	}

	updated, err := s.repo.Reminders().Update(ctx, id, func(r *Reminder) {
		if p.Type != nil {
			r.Type = *p.Type
		}
		if p.Title != nil {
			r.Title = strings.TrimSpace(*p.Title)
		}
		if p.Description != nil {
			r.Description = strings.TrimSpace(*p.Description)
		}
		if p.DueDate != nil {
			r.DueDate = *p.DueDate
		}
		if p.IsCompleted != nil {
			r.IsCompleted = *p.IsCompleted
		}
		if p.Priority != nil {
			r.Priority = *p.Priority
		}
		if p.NotificationSent != nil {
			r.NotificationSent = *p.NotificationSent
		}
	})
	if !s.persisted("update_reminder", err) {
		return Reminder{}, err
	}
	s.reminders[i] = updated
	return updated, err
}

func (s *Store) CompleteReminder(ctx context.Context, id string) (Reminder, error) {
	done := true
	return s.UpdateReminder(ctx, id, ReminderPatch{IsCompleted: &done})
}

func (s *Store) DeleteReminder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexByID(s.reminders, id, idOfReminder) < 0 {
		return NotFound("reminder", id)
	}
	_, err := s.repo.Reminders().Delete(ctx, id)
	if !s.persisted("delete_reminder", err) {
		return err
	}
	s.reminders, _ = removeByID(s.reminders, id, idOfReminder)
	return err
}

// GetTodayReminders devuelve los pendientes con dueDate en [hoy 00:00, mañana 00:00),
// ordenados por prioridad (high, medium, low) y luego por dueDate.
func (s *Store) GetTodayReminders() []Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := s.startOfDay(s.now())
	end := start.AddDate(0, 0, 1)

	out := make([]Reminder, 0)
	for _, r := range s.reminders {
		if !r.IsCompleted && !r.DueDate.Before(start) && r.DueDate.Before(end) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Priority.rank(), out[j].Priority.rank()
		if pi != pj {
			return pi < pj
		}
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// UpcomingReminders: pendientes con dueDate en [ahora, ahora+days] (7 si days <= 0).
func (s *Store) UpcomingReminders(days int) []Reminder {
	if days <= 0 {
		days = 7
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	until := now.AddDate(0, 0, days)
	out := make([]Reminder, 0)
	for _, r := range s.reminders {
		if !r.IsCompleted && !r.DueDate.Before(now) && !r.DueDate.After(until) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

func (s *Store) RemindersByDog(dogID string) []Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Reminder, 0)
	for _, r := range s.reminders {
		if r.DogID == dogID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

// DDay formatea la distancia en días calendario hasta due: D-Day, D-n o D+n.
func (s *Store) DDay(due time.Time) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := s.startOfDay(s.now())
	target := s.startOfDay(due)
	diff := int(math.Round(target.Sub(today).Hours() / 24))
	switch {
	case diff == 0:
		return "D-Day"
	case diff > 0:
		return "D-" + strconv.Itoa(diff)
	default:
		return "D+" + strconv.Itoa(-diff)
	}
}
