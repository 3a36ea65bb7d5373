package localstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"pawlog/internal/domain/pawlog"
	"pawlog/internal/platform/logger"
	"pawlog/internal/ports/kv"
)

type Options struct {
	QuotaBytes int64 // 0 = DefaultQuotaBytes, <0 = sin límite
	Logger     logger.Logger
	Now        func() time.Time
	NewID      func() string
}

// Adapter implementa pawlog.Repository sobre un kv.Store:
// cada colección es un arreglo JSON bajo su propia key.
type Adapter struct {
	mu    sync.Mutex
	kv    kv.Store
	log   logger.Logger
	now   func() time.Time
	newID func() string
	quota int64

	dogs      *collection[pawlog.Dog, *pawlog.Dog]
	routines  *collection[pawlog.RoutineRecord, *pawlog.RoutineRecord]
	health    *collection[pawlog.HealthRecord, *pawlog.HealthRecord]
	diary     *collection[pawlog.DiaryEntry, *pawlog.DiaryEntry]
	reminders *collection[pawlog.Reminder, *pawlog.Reminder]
}

var _ pawlog.Repository = (*Adapter)(nil)

// Open inicializa el almacén (versión de datos y settings por defecto).
func Open(ctx context.Context, store kv.Store, opts Options) (*Adapter, error) {
	a := &Adapter{
		kv:    store,
		log:   opts.Logger,
		now:   opts.Now,
		newID: opts.NewID,
		quota: opts.QuotaBytes,
	}
	if a.log == nil {
		a.log = logger.Nop()
	}
	a.log = a.log.With(map[string]any{"component": "localstore"})
	if a.now == nil {
		a.now = time.Now
	}
	if a.newID == nil {
		a.newID = uuid.NewString
	}
	if a.quota == 0 {
		a.quota = DefaultQuotaBytes
	}

	a.dogs = &collection[pawlog.Dog, *pawlog.Dog]{a: a, key: keyDogs, name: "dog"}
	a.routines = &collection[pawlog.RoutineRecord, *pawlog.RoutineRecord]{a: a, key: keyRoutineRecords, name: "routine record"}
	a.health = &collection[pawlog.HealthRecord, *pawlog.HealthRecord]{a: a, key: keyHealthRecords, name: "health record"}
	a.diary = &collection[pawlog.DiaryEntry, *pawlog.DiaryEntry]{a: a, key: keyDiaryEntries, name: "diary entry"}
	a.reminders = &collection[pawlog.Reminder, *pawlog.Reminder]{a: a, key: keyReminders, name: "reminder"}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.initLocked(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Adapter) initLocked(ctx context.Context) error {
	v, ok, err := a.kv.Get(ctx, keyDataVersion)
	if err != nil {
		return &pawlog.StorageError{Op: "read", Key: keyDataVersion, Err: err}
	}
	if !ok || v != pawlog.DataVersion {
		// sin migraciones por ahora: solo se registra el salto de versión
		a.log.Info("migrating data", map[string]any{"from": v, "to": pawlog.DataVersion})
		if err := a.writeRawLocked(ctx, keyDataVersion, pawlog.DataVersion); err != nil {
			return err
		}
	}

	_, ok, err = a.kv.Get(ctx, keySettings)
	if err != nil {
		return &pawlog.StorageError{Op: "read", Key: keySettings, Err: err}
	}
	if !ok {
		return a.writeLocked(ctx, keySettings, pawlog.DefaultSettings())
	}
	return nil
}

func (a *Adapter) Dogs() pawlog.Collection[pawlog.Dog]                   { return a.dogs }
func (a *Adapter) Routines() pawlog.Collection[pawlog.RoutineRecord]     { return a.routines }
func (a *Adapter) HealthRecords() pawlog.Collection[pawlog.HealthRecord] { return a.health }
func (a *Adapter) DiaryEntries() pawlog.Collection[pawlog.DiaryEntry]    { return a.diary }
func (a *Adapter) Reminders() pawlog.Collection[pawlog.Reminder]         { return a.reminders }

// Close cierra el kv.Store subyacente.
func (a *Adapter) Close() error { return a.kv.Close() }

// ---- user / settings ----

func (a *Adapter) LoadUser(ctx context.Context) (*pawlog.User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var u *pawlog.User
	if _, err := a.readLocked(ctx, keyUser, &u); err != nil {
		return nil, err
	}
	return u, nil
}

// SaveUser(nil) borra el usuario guardado.
func (a *Adapter) SaveUser(ctx context.Context, u *pawlog.User) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if u == nil {
		return a.deleteLocked(ctx, keyUser)
	}
	return a.writeLocked(ctx, keyUser, u)
}

func (a *Adapter) LoadSettings(ctx context.Context) (pawlog.AppSettings, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := pawlog.DefaultSettings()
	if _, err := a.readLocked(ctx, keySettings, &s); err != nil {
		return pawlog.AppSettings{}, err
	}
	return s, nil
}

func (a *Adapter) SaveSettings(ctx context.Context, s pawlog.AppSettings) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.writeLocked(ctx, keySettings, s)
}

// LastBackup devuelve cuándo se generó el último backup (nil si nunca).
func (a *Adapter) LastBackup(ctx context.Context) (*time.Time, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var t *time.Time
	if _, err := a.readLocked(ctx, keyLastBackup, &t); err != nil {
		return nil, err
	}
	return t, nil
}

// ---- primitivas (requieren a.mu tomado) ----

// readLocked decodifica key en dst; ok=false si la key no existe.
func (a *Adapter) readLocked(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := a.kv.Get(ctx, key)
	if err != nil {
		return false, &pawlog.StorageError{Op: "read", Key: key, Err: err}
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, &pawlog.StorageError{Op: "read", Key: key, Err: err}
	}
	return true, nil
}

func (a *Adapter) writeLocked(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return &pawlog.StorageError{Op: "write", Key: key, Err: err}
	}
	return a.writeRawLocked(ctx, key, string(b))
}

func (a *Adapter) writeRawLocked(ctx context.Context, key, value string) error {
	if err := a.checkQuotaLocked(ctx, map[string]string{key: value}); err != nil {
		return asWriteError(key, err)
	}
	if err := a.kv.Set(ctx, key, value); err != nil {
		return &pawlog.StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

func (a *Adapter) deleteLocked(ctx context.Context, key string) error {
	if err := a.kv.Delete(ctx, key); err != nil {
		return &pawlog.StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// asWriteError deja pasar StorageError ya armados (p. ej. lecturas de la cuota).
func asWriteError(key string, err error) error {
	if _, ok := err.(*pawlog.StorageError); ok {
		return err
	}
	return &pawlog.StorageError{Op: "write", Key: key, Err: err}
}
