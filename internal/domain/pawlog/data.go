package pawlog

import (
	"context"
	"encoding/json"
	"fmt"
)

// Settings devuelve la configuración vigente.
func (s *Store) Settings() AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings aplica apply sobre una copia, valida y persiste.
func (s *Store) UpdateSettings(ctx context.Context, apply func(*AppSettings)) (AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	apply(&next)
	return s.saveSettingsLocked(ctx, "update_settings", next)
}

func (s *Store) ReplaceSettings(ctx context.Context, next AppSettings) (AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveSettingsLocked(ctx, "replace_settings", next)
}

func (s *Store) ResetSettings(ctx context.Context) (AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveSettingsLocked(ctx, "reset_settings", DefaultSettings())
}

func (s *Store) saveSettingsLocked(ctx context.Context, op string, next AppSettings) (AppSettings, error) {
	if err := next.Validate(); err != nil {
		return AppSettings{}, err
	}
	err := s.repo.SaveSettings(ctx, next)
	if !s.persisted(op, err) {
		return AppSettings{}, err
	}
	s.settings = next
	return next, err
}

// ExportData serializa un backup completo con indentación de dos espacios.
func (s *Store) ExportData(ctx context.Context, opts ExportOptions) ([]byte, error) {
	b, err := s.repo.Backup(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	b.restrict(opts.From, opts.To)
	if !opts.IncludePhotos {
		b.stripPhotos()
	}
	out, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	s.log.Info("data exported", map[string]any{
		"dogs":   len(b.Dogs),
		"photos": opts.IncludePhotos,
		"bytes":  len(out),
	})
	return out, nil
}

// ImportData reemplaza todo el almacén con el backup y rehidrata la memoria.
// Si el backup es inválido no se escribe nada.
func (s *Store) ImportData(ctx context.Context, data []byte) error {
	b, err := ParseBackup(data)
	if err != nil {
		return err
	}
	for i := range b.Dogs {
		if b.Dogs[i].OwnerID == "" {
			b.Dogs[i].OwnerID = b.User.ID
		}
	}
	if err := s.repo.Restore(ctx, b); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	s.retractPublicDiary()
	s.log.Info("data imported", map[string]any{"version": b.Version, "dogs": len(b.Dogs)})
	return s.Sync(ctx)
}

// ClearAllData borra el almacén y deja la memoria vacía con settings por defecto.
func (s *Store) ClearAllData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	s.retractPublicLocked()
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
	s.log.Warn("all data cleared", nil)
	return nil
}

// retractPublicDiary saca del feed las entradas públicas del scope en memoria.
func (s *Store) retractPublicDiary() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retractPublicLocked()
}

func (s *Store) retractPublicLocked() {
	for _, e := range s.diary {
		if e.IsPublic {
			s.retractLocked(e.ID)
		}
	}
}

func (s *Store) StorageInfo(ctx context.Context) (StorageUsage, error) {
	return s.repo.Usage(ctx)
}
