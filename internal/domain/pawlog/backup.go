package pawlog

import (
	"encoding/json"
	"fmt"
	"time"
)

// DataVersion es la versión del esquema de backup.
const DataVersion = "1.0.0"

// Backup es el formato de export/import. Los nombres de campo son el contrato.
type Backup struct {
	Version        string          `json:"version"`
	Timestamp      time.Time       `json:"timestamp"`
	User           *User           `json:"user"`
	Dogs           []Dog           `json:"dogs"`
	RoutineRecords []RoutineRecord `json:"routineRecords"`
	HealthRecords  []HealthRecord  `json:"healthRecords"`
	DiaryEntries   []DiaryEntry    `json:"diaryEntries"`
	Reminders      []Reminder      `json:"reminders"`
	Settings       AppSettings     `json:"settings"`
}

// Validate exige version, user y dogs como arreglo (nil = ausente o null).
func (b Backup) Validate() error {
	if b.Version == "" {
		return fmt.Errorf("%w: missing version", ErrInvalidBackup)
	}
	if b.User == nil {
		return fmt.Errorf("%w: missing user", ErrInvalidBackup)
	}
	if b.Dogs == nil {
		return fmt.Errorf("%w: dogs must be an array", ErrInvalidBackup)
	}
	return nil
}

// ParseBackup decodifica y valida un export JSON.
func ParseBackup(data []byte) (Backup, error) {
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return Backup{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if err := b.Validate(); err != nil {
		return Backup{}, err
	}
	return b, nil
}

// ExportOptions controla el export. From/To cero = sin límite.
type ExportOptions struct {
	IncludePhotos bool
	From          time.Time
	To            time.Time
}

// stripPhotos vacía fotos y adjuntos para reducir tamaño.
func (b *Backup) stripPhotos() {
	for i := range b.DiaryEntries {
		b.DiaryEntries[i].Photos = []string{}
	}
	for i := range b.RoutineRecords {
		if b.RoutineRecords[i].Photos != nil {
			b.RoutineRecords[i].Photos = []string{}
		}
	}
	for i := range b.HealthRecords {
		if b.HealthRecords[i].Attachments != nil {
			b.HealthRecords[i].Attachments = []string{}
		}
	}
}

// restrict deja solo registros fechados dentro de [from, to].
func (b *Backup) restrict(from, to time.Time) {
	if from.IsZero() && to.IsZero() {
		return
	}
	within := func(t time.Time) bool {
		if !from.IsZero() && t.Before(from) {
			return false
		}
		if !to.IsZero() && t.After(to) {
			return false
		}
		return true
	}

	routines := b.RoutineRecords[:0]
	for _, r := range b.RoutineRecords {
		if within(r.Timestamp) {
			routines = append(routines, r)
		}
	}
	b.RoutineRecords = routines

	health := b.HealthRecords[:0]
	for _, h := range b.HealthRecords {
		if within(h.Date) {
			health = append(health, h)
		}
	}
	b.HealthRecords = health

	diary := b.DiaryEntries[:0]
	for _, e := range b.DiaryEntries {
		if within(e.Date) {
			diary = append(diary, e)
		}
	}
	b.DiaryEntries = diary

	reminders := b.Reminders[:0]
	for _, r := range b.Reminders {
		if within(r.DueDate) {
			reminders = append(reminders, r)
		}
	}
	b.Reminders = reminders
}

// BackupFileName arma el nombre sugerido para un export.
func BackupFileName(t time.Time, withPhotos bool) string {
	prefix := "pawlog"
	if withPhotos {
		prefix = "pawlog_with_photos"
	}
	return fmt.Sprintf("%s_backup_%s.json", prefix, t.Format("2006-01-02_15-04-05"))
}
