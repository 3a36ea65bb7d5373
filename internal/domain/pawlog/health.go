package pawlog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

type HealthInput struct {
	DogID           string
	Type            HealthType
	Title           string
	Description     string
	Date            time.Time
	NextDate        *time.Time
	Veterinarian    string
	Clinic          string
	Cost            *float64
	MedicationName  string
	Dosage          string
	Frequency       string
	Duration        *int
	VaccineName     string
	BatchNumber     string
	Attachments     []string
	Notes           string
	Completed       bool
	ReminderEnabled *bool // nil = true
	ReminderDays    *int  // nil = preferencia del usuario (o 3)
}

type HealthPatch struct {
	Type            *HealthType
	Title           *string
	Description     *string
	Date            *time.Time
	NextDate        *time.Time
	ClearNextDate   bool
	Veterinarian    *string
	Clinic          *string
	Cost            *float64
	MedicationName  *string
	Dosage          *string
	Frequency       *string
	Duration        *int
	VaccineName     *string
	BatchNumber     *string
	Attachments     []string
	Notes           *string
	Completed       *bool
	ReminderEnabled *bool
	ReminderDays    *int
}

func idOfHealth(r HealthRecord) string { return r.ID }

// AddHealthRecord crea el registro y, si corresponde, su recordatorio:
// nextDate definido + reminderEnabled + no completed => un Reminder con
// dueDate = nextDate - reminderDays.
func (s *Store) AddHealthRecord(ctx context.Context, in HealthInput) (HealthRecord, error) {
	if !in.Type.Valid() {
		return HealthRecord{}, ValidationFailed("type", "unknown health record type")
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return HealthRecord{}, ValidationFailed("title", "title is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireDogLocked(in.DogID); err != nil {
		return HealthRecord{}, err
	}

	enabled := true
	if in.ReminderEnabled != nil {
		enabled = *in.ReminderEnabled
	}
	days := defaultReminderDays
	if s.user != nil {
		days = s.user.Preferences.DefaultReminderDays
	}
	if in.ReminderDays != nil {
		days = *in.ReminderDays
	}
	if days < 0 {
		return HealthRecord{}, ValidationFailed("reminderDays", "reminder days must be >= 0")
	}
	attachments := in.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	created, err := s.repo.HealthRecords().Create(ctx, HealthRecord{
		DogID:           in.DogID,
		Type:            in.Type,
		Title:           title,
		Description:     strings.TrimSpace(in.Description),
		Date:            in.Date,
		NextDate:        in.NextDate,
		Veterinarian:    strings.TrimSpace(in.Veterinarian),
		Clinic:          strings.TrimSpace(in.Clinic),
		Cost:            in.Cost,
		MedicationName:  strings.TrimSpace(in.MedicationName),
		Dosage:          strings.TrimSpace(in.Dosage),
		Frequency:       strings.TrimSpace(in.Frequency),
		Duration:        in.Duration,
		VaccineName:     strings.TrimSpace(in.VaccineName),
		BatchNumber:     strings.TrimSpace(in.BatchNumber),
		Attachments:     attachments,
		Notes:           strings.TrimSpace(in.Notes),
		Completed:       in.Completed,
		ReminderEnabled: enabled,
		ReminderDays:    days,
	})
	if !s.persisted("add_health_record", err) {
		return HealthRecord{}, err
	}
	s.health = append(s.health, created)

	if created.NextDate != nil && created.ReminderEnabled && !created.Completed {
		if _, rerr := s.addReminderLocked(ctx, healthReminder(created)); rerr != nil && err == nil {
			err = rerr
		}
	}
	return created, err
}

func healthReminder(r HealthRecord) ReminderInput {
	desc := r.Description
	if desc == "" {
		desc = fmt.Sprintf("%s이 예정되어 있습니다.", r.Title)
	}
	priority := PriorityMedium
	if r.Type == HealthVaccination {
		priority = PriorityHigh
	}
	return ReminderInput{
		DogID:           r.DogID,
		Type:            ReminderHealth,
		Title:           fmt.Sprintf("%s 예정", r.Title),
		Description:     desc,
		DueDate:         r.NextDate.AddDate(0, 0, -r.ReminderDays),
		Priority:        priority,
		RelatedRecordID: r.ID,
	}
}

func (s *Store) UpdateHealthRecord(ctx context.Context, id string, p HealthPatch) (HealthRecord, error) {
	if p.Type != nil && !p.Type.Valid() {
		return HealthRecord{}, ValidationFailed("type", "unknown health record type")
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return HealthRecord{}, ValidationFailed("title", "title is required")
	}
	if p.ReminderDays != nil && *p.ReminderDays < 0 {
		return HealthRecord{}, ValidationFailed("reminderDays", "reminder days must be >= 0")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.health, id, idOfHealth)
	if i < 0 {
		return HealthRecord{}, NotFound("health record", id)
	}

	updated, err := s.repo.HealthRecords().Update(ctx, id, func(r *HealthRecord) {
		if p.Type != nil {
			r.Type = *p.Type
		}
		if p.Title != nil {
			r.Title = strings.TrimSpace(*p.Title)
		}
		if p.Description != nil {
			r.Description = strings.TrimSpace(*p.Description)
		}
		if p.Date != nil {
			r.Date = *p.Date
		}
		if p.ClearNextDate {
			r.NextDate = nil
		} else if p.NextDate != nil {
			r.NextDate = p.NextDate
		}
		if p.Veterinarian != nil {
			r.Veterinarian = strings.TrimSpace(*p.Veterinarian)
		}
		if p.Clinic != nil {
			r.Clinic = strings.TrimSpace(*p.Clinic)
		}
		if p.Cost != nil {
			r.Cost = p.Cost
		}
		if p.MedicationName != nil {
			r.MedicationName = strings.TrimSpace(*p.MedicationName)
		}
		if p.Dosage != nil {
			r.Dosage = strings.TrimSpace(*p.Dosage)
		}
		if p.Frequency != nil {
			r.Frequency = strings.TrimSpace(*p.Frequency)
		}
		if p.Duration != nil {
			r.Duration = p.Duration
		}
		if p.VaccineName != nil {
			r.VaccineName = strings.TrimSpace(*p.VaccineName)
		}
		if p.BatchNumber != nil {
			r.BatchNumber = strings.TrimSpace(*p.BatchNumber)
		}
		if p.Attachments != nil {
			r.Attachments = p.Attachments
		}
		if p.Notes != nil {
			r.Notes = strings.TrimSpace(*p.Notes)
		}
		if p.Completed != nil {
			r.Completed = *p.Completed
		}
		if p.ReminderEnabled != nil {
			r.ReminderEnabled = *p.ReminderEnabled
		}
		if p.ReminderDays != nil {
			r.ReminderDays = *p.ReminderDays
		}
	})
	if !s.persisted("update_health_record", err) {
		return HealthRecord{}, err
	}
	s.health[i] = updated
	return updated, err
}

// DeleteHealthRecord borra el registro y los recordatorios con relatedRecordId == id.
func (s *Store) DeleteHealthRecord(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if indexByID(s.health, id, idOfHealth) < 0 {
		return NotFound("health record", id)
	}

	_, err := s.repo.HealthRecords().Delete(ctx, id)
	if !s.persisted("delete_health_record", err) {
		return err
	}
	s.health, _ = removeByID(s.health, id, idOfHealth)

	_, rerr := s.repo.Reminders().DeleteWhere(ctx, ByRelatedRecord(id))
	s.persisted("delete_related_reminders", rerr)
	s.reminders = removeWhere(s.reminders, func(r Reminder) bool { return r.RelatedRecordID == id })

	if err == nil {
		err = rerr
	}
	return err
}

// HealthRecordsByDog: fecha más reciente primero.
func (s *Store) HealthRecordsByDog(dogID string) []HealthRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]HealthRecord, 0)
	for _, r := range s.health {
		if r.DogID == dogID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// UpcomingHealthRecords: nextDate en [ahora, ahora+days], no completados (30 días si days <= 0).
func (s *Store) UpcomingHealthRecords(days int) []HealthRecord {
	if days <= 0 {
		days = 30
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	until := now.AddDate(0, 0, days)
	out := make([]HealthRecord, 0)
	for _, r := range s.health {
		if r.NextDate == nil || r.Completed {
			continue
		}
		if !r.NextDate.Before(now) && !r.NextDate.After(until) {
			out = append(out, r)
		}
	}
	sortByNextDate(out)
	return out
}

// OverdueHealthRecords: nextDate anterior al inicio de hoy, no completados.
func (s *Store) OverdueHealthRecords() []HealthRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	today := s.startOfDay(s.now())
	out := make([]HealthRecord, 0)
	for _, r := range s.health {
		if r.NextDate != nil && !r.Completed && r.NextDate.Before(today) {
			out = append(out, r)
		}
	}
	sortByNextDate(out)
	return out
}

func sortByNextDate(items []HealthRecord) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].NextDate.Before(*items[j].NextDate) })
}
