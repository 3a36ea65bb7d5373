package localstore

// Keys del almacén. Los valores son JSON.
const (
	keyUser           = "pawlog_user"
	keyDogs           = "pawlog_dogs"
	keyRoutineRecords = "pawlog_routine_records"
	keyHealthRecords  = "pawlog_health_records"
	keyDiaryEntries   = "pawlog_diary_entries"
	keyReminders      = "pawlog_reminders"
	keySettings       = "pawlog_settings"
	keyLastBackup     = "pawlog_last_backup"
	keyDataVersion    = "pawlog_data_version"
)

// knownKeys son las keys que cuentan para uso/cuota y que ClearAll borra.
var knownKeys = []string{
	keyUser,
	keyDogs,
	keyRoutineRecords,
	keyHealthRecords,
	keyDiaryEntries,
	keyReminders,
	keySettings,
	keyLastBackup,
	keyDataVersion,
}
