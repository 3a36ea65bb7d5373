package pawlog

import "context"

// Filter es un predicado tipado para List/DeleteWhere (igualdad vía closures).
type Filter[T any] func(T) bool

// Collection es el CRUD genérico sobre un arreglo persistido.
type Collection[T any] interface {
	Create(ctx context.Context, item T) (T, error)
	Read(ctx context.Context, id string) (T, bool, error)
	Update(ctx context.Context, id string, apply func(*T)) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteWhere(ctx context.Context, match Filter[T]) (int, error)
	List(ctx context.Context, filters ...Filter[T]) ([]T, error)
}

// Repository es el gateway de persistencia que consume el Store.
type Repository interface {
	Dogs() Collection[Dog]
	Routines() Collection[RoutineRecord]
	HealthRecords() Collection[HealthRecord]
	DiaryEntries() Collection[DiaryEntry]
	Reminders() Collection[Reminder]

	LoadUser(ctx context.Context) (*User, error)
	SaveUser(ctx context.Context, u *User) error // nil borra

	LoadSettings(ctx context.Context) (AppSettings, error)
	SaveSettings(ctx context.Context, s AppSettings) error

	Backup(ctx context.Context) (Backup, error)
	Restore(ctx context.Context, b Backup) error
	ClearAll(ctx context.Context) error
	Usage(ctx context.Context) (StorageUsage, error)
}

// Feed recibe la proyección pública de entradas del diario.
// Entrega at-most-once: sin ack, sin reintentos.
type Feed interface {
	PublishDiary(entry DiaryEntry, dogName string)
	RetractDiary(entryID string)
	SetViewer(u *User)
}

// Filtros de uso común.

func ByDog[T interface{ dogID() string }](dogID string) Filter[T] {
	return func(v T) bool { return v.dogID() == dogID }
}

func (r RoutineRecord) dogID() string { return r.DogID }
func (r HealthRecord) dogID() string  { return r.DogID }
func (e DiaryEntry) dogID() string    { return e.DogID }
func (r Reminder) dogID() string      { return r.DogID }

func ByOwner(ownerID string) Filter[Dog] {
	return func(d Dog) bool { return d.OwnerID == ownerID }
}

func ByRelatedRecord(recordID string) Filter[Reminder] {
	return func(r Reminder) bool { return r.RelatedRecordID == recordID }
}
