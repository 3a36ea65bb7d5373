package pawlog

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type NotificationSettings struct {
	Reminders    bool `json:"reminders"`
	DailyRoutine bool `json:"dailyRoutine"`
	HealthAlerts bool `json:"healthAlerts"`
}

type UnitSettings struct {
	Weight   string `json:"weight"`   // kg | lb
	Distance string `json:"distance"` // km | mi
}

type DataRetention struct {
	KeepPhotos        bool `json:"keepPhotos"`
	MaxPhotosPerEntry int  `json:"maxPhotosPerEntry"`
	AutoBackup        bool `json:"autoBackup"`
}

// AppSettings es global (no por perro).
type AppSettings struct {
	Theme         Theme                `json:"theme"`
	Language      Language             `json:"language"`
	Notifications NotificationSettings `json:"notifications"`
	Units         UnitSettings         `json:"units"`
	DataRetention DataRetention        `json:"dataRetention"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:    ThemeSystem,
		Language: LanguageKo,
		Notifications: NotificationSettings{
			Reminders:    true,
			DailyRoutine: true,
			HealthAlerts: true,
		},
		Units: UnitSettings{Weight: "kg", Distance: "km"},
		DataRetention: DataRetention{
			KeepPhotos:        true,
			MaxPhotosPerEntry: 5,
			AutoBackup:        true,
		},
	}
}

func (s AppSettings) Validate() error {
	switch s.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return ValidationFailed("theme", "theme must be light, dark or system")
	}
	if !s.Language.Valid() {
		return ValidationFailed("language", "language must be ko or en")
	}
	if s.Units.Weight != "kg" && s.Units.Weight != "lb" {
		return ValidationFailed("units.weight", "weight unit must be kg or lb")
	}
	if s.Units.Distance != "km" && s.Units.Distance != "mi" {
		return ValidationFailed("units.distance", "distance unit must be km or mi")
	}
	if s.DataRetention.MaxPhotosPerEntry < 0 {
		return ValidationFailed("dataRetention.maxPhotosPerEntry", "max photos per entry must be >= 0")
	}
	return nil
}
