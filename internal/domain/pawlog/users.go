package pawlog

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

var newUserID = uuid.NewString

type UserPatch struct {
	Email       *string
	Name        *string
	Nickname    *string
	Avatar      *string
	Preferences *Preferences
}

// CurrentUser devuelve una copia del usuario de la sesión (nil si no hay).
func (s *Store) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// InitializeUser crea el usuario local, adopta los perros sin dueño y
// re-acota la memoria al nuevo usuario.
func (s *Store) InitializeUser(ctx context.Context, email, name string) (User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if !ValidEmail(email) {
		return User{}, ValidationFailed("email", "invalid email format")
	}

	nickname := name
	if nickname == "" {
		nickname = defaultNickname
	}
	now := s.now()
	u := User{
		Record:   Record{ID: newUserID(), CreatedAt: now, UpdatedAt: &now},
		Email:    email,
		Name:     name,
		Nickname: nickname,
		Preferences: Preferences{
			DefaultReminderDays: defaultReminderDays,
			DarkMode:            false,
			Language:            LanguageKo,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.repo.SaveUser(ctx, &u)
	if !s.persisted("initialize_user", err) {
		return User{}, err
	}
	s.user = &u

	adopted, aerr := s.adoptOrphanDogsLocked(ctx, u.ID)
	if aerr != nil && !IsWriteFailure(aerr) {
		return u, aerr
	}
	if serr := s.loadScopeLocked(ctx, u.ID, adopted...); serr != nil {
		return u, serr
	}
	s.fillDiaryDefaultsLocked()
	if err == nil {
		err = aerr
	}
	if s.feed != nil {
		s.feed.SetViewer(s.user)
	}
	s.log.Info("user initialized", map[string]any{"user_id": u.ID})
	return u, err
}

// adoptOrphanDogsLocked asigna ownerID a los perros sin dueño del almacén.
// Devuelve los adoptados; con fallo de escritura el error acompaña al resultado.
func (s *Store) adoptOrphanDogsLocked(ctx context.Context, ownerID string) ([]Dog, error) {
	orphans, err := s.repo.Dogs().List(ctx, ByOwner(""))
	if err != nil {
		return nil, err
	}
	adopted := make([]Dog, 0, len(orphans))
	for _, d := range orphans {
		updated, uerr := s.repo.Dogs().Update(ctx, d.ID, func(dog *Dog) { dog.OwnerID = ownerID })
		if !s.persisted("adopt_dog", uerr) {
			return adopted, uerr
		}
		if uerr != nil {
			updated = d
			updated.OwnerID = ownerID
			err = uerr
		}
		adopted = append(adopted, updated)
	}
	if len(adopted) > 0 {
		s.log.Info("orphan dogs adopted", map[string]any{"owner_id": ownerID, "dogs": len(adopted)})
	}
	return adopted, err
}

func (s *Store) UpdateUser(ctx context.Context, p UserPatch) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return User{}, ErrUnauthenticated
	}
	u := *s.user
	if p.Email != nil {
		e := strings.TrimSpace(*p.Email)
		if !ValidEmail(e) {
			return User{}, ValidationFailed("email", "invalid email format")
		}
		u.Email = e
	}
	if p.Name != nil {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.Nickname != nil {
		u.Nickname = strings.TrimSpace(*p.Nickname)
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Preferences != nil {
		if !p.Preferences.Language.Valid() {
			return User{}, ValidationFailed("preferences.language", "language must be ko or en")
		}
		if p.Preferences.DefaultReminderDays < 0 {
			return User{}, ValidationFailed("preferences.defaultReminder", "default reminder days must be >= 0")
		}
		u.Preferences = *p.Preferences
	}
	if u.Nickname == "" {
		u.Nickname = u.Name
		if u.Nickname == "" {
			u.Nickname = defaultNickname
		}
	}
	now := s.now()
	u.UpdatedAt = &now

	err := s.repo.SaveUser(ctx, &u)
	if !s.persisted("update_user", err) {
		return User{}, err
	}
	s.user = &u
	if s.feed != nil {
		s.feed.SetViewer(s.user)
	}
	return u, err
}

// Logout cierra la sesión: borra el usuario guardado y vacía la memoria.
// Perros y registros quedan en el almacén, asociados a su dueño.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.repo.SaveUser(ctx, nil)
	if !s.persisted("logout", err) {
		return err
	}
	s.user = nil
	s.dogs = nil
	s.routines = nil
	s.health = nil
	s.diary = nil
	s.reminders = nil
	s.settings = DefaultSettings()
	if s.feed != nil {
		s.feed.SetViewer(nil)
	}
	return err
}
