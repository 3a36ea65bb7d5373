package localstore

import (
	"context"
	"encoding/json"

	"pawlog/internal/domain/pawlog"
)

// Backup arma un snapshot completo y registra la hora en pawlog_last_backup.
func (a *Adapter) Backup(ctx context.Context) (pawlog.Backup, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b := pawlog.Backup{
		Version:   pawlog.DataVersion,
		Timestamp: a.now(),
		Settings:  pawlog.DefaultSettings(),
	}
	if _, err := a.readLocked(ctx, keyUser, &b.User); err != nil {
		return pawlog.Backup{}, err
	}
	if _, err := a.readLocked(ctx, keySettings, &b.Settings); err != nil {
		return pawlog.Backup{}, err
	}

	var err error
	if b.Dogs, err = a.dogs.loadLocked(ctx); err != nil {
		return pawlog.Backup{}, err
	}
	if b.RoutineRecords, err = a.routines.loadLocked(ctx); err != nil {
		return pawlog.Backup{}, err
	}
	if b.HealthRecords, err = a.health.loadLocked(ctx); err != nil {
		return pawlog.Backup{}, err
	}
	if b.DiaryEntries, err = a.diary.loadLocked(ctx); err != nil {
		return pawlog.Backup{}, err
	}
	if b.Reminders, err = a.reminders.loadLocked(ctx); err != nil {
		return pawlog.Backup{}, err
	}

	if werr := a.writeLocked(ctx, keyLastBackup, b.Timestamp); werr != nil {
		a.log.Warn("could not record last backup", map[string]any{"error": werr.Error()})
	}
	return b, nil
}

// Restore valida el snapshot y escribe todas las keys en un único lote.
// Un snapshot inválido no escribe nada.
func (a *Adapter) Restore(ctx context.Context, b pawlog.Backup) error {
	if err := b.Validate(); err != nil {
		return err
	}

	values := make(map[string]string, 7)
	put := func(key string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return &pawlog.StorageError{Op: "write", Key: key, Err: err}
		}
		values[key] = string(raw)
		return nil
	}
	for _, e := range []struct {
		key string
		v   any
	}{
		{keyUser, b.User},
		{keyDogs, b.Dogs},
		{keyRoutineRecords, orEmpty(b.RoutineRecords)},
		{keyHealthRecords, orEmpty(b.HealthRecords)},
		{keyDiaryEntries, orEmpty(b.DiaryEntries)},
		{keyReminders, orEmpty(b.Reminders)},
		{keySettings, b.Settings},
	} {
		if err := put(e.key, e.v); err != nil {
			return err
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkQuotaLocked(ctx, values); err != nil {
		return asWriteError("restore", err)
	}
	if err := a.kv.SetMany(ctx, values); err != nil {
		return &pawlog.StorageError{Op: "write", Key: "restore", Err: err}
	}
	a.log.Info("backup restored", map[string]any{"version": b.Version, "dogs": len(b.Dogs)})
	return nil
}

// ClearAll borra todas las keys conocidas y vuelve a inicializar.
func (a *Adapter) ClearAll(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, k := range knownKeys {
		if err := a.deleteLocked(ctx, k); err != nil {
			return err
		}
	}
	return a.initLocked(ctx)
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
