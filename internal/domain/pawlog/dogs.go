package pawlog

import (
	"context"
	"errors"
	"strings"
	"time"
)

type DogInput struct {
	Name        string
	Breed       string
	BirthDate   time.Time
	Weight      float64
	Gender      Gender
	IsNeutered  bool
	Photo       string
	MicrochipID string
	Notes       string
}

// DogPatch: nil = no tocar.
type DogPatch struct {
	Name        *string
	Breed       *string
	BirthDate   *time.Time
	Weight      *float64
	Gender      *Gender
	IsNeutered  *bool
	Photo       *string
	MicrochipID *string
	Notes       *string
	IsActive    *bool
}

func idOfDog(d Dog) string { return d.ID }

// AddDog confía en el formulario (ver ValidateDogInput para los bordes).
func (s *Store) AddDog(ctx context.Context, in DogInput) (Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.repo.Dogs().Create(ctx, Dog{
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		BirthDate:   in.BirthDate,
		Weight:      in.Weight,
		Gender:      in.Gender,
		IsNeutered:  in.IsNeutered,
		Photo:       in.Photo,
		MicrochipID: strings.TrimSpace(in.MicrochipID),
		Notes:       strings.TrimSpace(in.Notes),
		OwnerID:     s.ownerIDLocked(),
		IsActive:    true,
	})
	if !s.persisted("add_dog", err) {
		return Dog{}, err
	}
	s.dogs = append(s.dogs, created)
	return created, err
}

func (s *Store) UpdateDog(ctx context.Context, id string, p DogPatch) (Dog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.dogIndexLocked(id)
	if i < 0 {
		return Dog{}, NotFound("dog", id)
	}

	updated, err := s.repo.Dogs().Update(ctx, id, func(d *Dog) { p.apply(d) })
	if !s.persisted("update_dog", err) {
		return Dog{}, err
	}
	s.dogs[i] = updated
	return updated, err
}

func (p DogPatch) apply(d *Dog) {
	if p.Name != nil {
		d.Name = strings.TrimSpace(*p.Name)
	}
	if p.Breed != nil {
		d.Breed = strings.TrimSpace(*p.Breed)
	}
	if p.BirthDate != nil {
		d.BirthDate = *p.BirthDate
	}
	if p.Weight != nil {
		d.Weight = *p.Weight
	}
	if p.Gender != nil {
		d.Gender = *p.Gender
	}
	if p.IsNeutered != nil {
		d.IsNeutered = *p.IsNeutered
	}
	if p.Photo != nil {
		d.Photo = *p.Photo
	}
	if p.MicrochipID != nil {
		d.MicrochipID = strings.TrimSpace(*p.MicrochipID)
	}
	if p.Notes != nil {
		d.Notes = strings.TrimSpace(*p.Notes)
	}
	if p.IsActive != nil {
		d.IsActive = *p.IsActive
	}
}

// DeleteDog borra el perro y en cascada rutinas, salud, diario y recordatorios.
// Best-effort: si una colección falla, las demás se borran igual y los errores se unen.
func (s *Store) DeleteDog(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dogIndexLocked(id) < 0 {
		return NotFound("dog", id)
	}

	var errs []error
	step := func(op string, err error) {
		if err != nil {
			s.persisted(op, err)
			errs = append(errs, err)
		}
	}

	_, err := s.repo.Routines().DeleteWhere(ctx, ByDog[RoutineRecord](id))
	step("delete_dog_routines", err)
	_, err = s.repo.HealthRecords().DeleteWhere(ctx, ByDog[HealthRecord](id))
	step("delete_dog_health", err)
	_, err = s.repo.DiaryEntries().DeleteWhere(ctx, ByDog[DiaryEntry](id))
	step("delete_dog_diary", err)
	_, err = s.repo.Reminders().DeleteWhere(ctx, ByDog[Reminder](id))
	step("delete_dog_reminders", err)
	_, err = s.repo.Dogs().Delete(ctx, id)
	step("delete_dog", err)

	for _, e := range s.diary {
		if e.DogID == id && e.IsPublic {
			s.retractLocked(e.ID)
		}
	}

	s.dogs, _ = removeByID(s.dogs, id, idOfDog)
	s.routines = removeWhere(s.routines, func(r RoutineRecord) bool { return r.DogID == id })
	s.health = removeWhere(s.health, func(r HealthRecord) bool { return r.DogID == id })
	s.diary = removeWhere(s.diary, func(e DiaryEntry) bool { return e.DogID == id })
	s.reminders = removeWhere(s.reminders, func(r Reminder) bool { return r.DogID == id })

	s.log.Info("dog deleted", map[string]any{"dog_id": id, "errors": len(errs)})
	return errors.Join(errs...)
}

// Dog devuelve el perro si está en el scope actual.
func (s *Store) Dog(id string) (Dog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.dogIndexLocked(id)
	if i < 0 {
		return Dog{}, false
	}
	return s.dogs[i], true
}

func (s *Store) Dogs() []Dog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.dogs)
}
