package pawlog

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool { return g == GenderMale || g == GenderFemale }

type RoutineType string

const (
	RoutineWalk  RoutineType = "walk"
	RoutineMeal  RoutineType = "meal"
	RoutinePoop  RoutineType = "poop"
	RoutineBrush RoutineType = "brush"
)

func (t RoutineType) Valid() bool {
	switch t {
	case RoutineWalk, RoutineMeal, RoutinePoop, RoutineBrush:
		return true
	}
	return false
}

type HealthType string

const (
	HealthVaccination HealthType = "vaccination"
	HealthCheckup     HealthType = "checkup"
	HealthMedication  HealthType = "medication"
	HealthGrooming    HealthType = "grooming"
	HealthSurgery     HealthType = "surgery"
)

func (t HealthType) Valid() bool {
	switch t {
	case HealthVaccination, HealthCheckup, HealthMedication, HealthGrooming, HealthSurgery:
		return true
	}
	return false
}

type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
	WeatherSnowy  Weather = "snowy"
)

// Valid acepta el valor vacío (campo opcional).
func (w Weather) Valid() bool {
	switch w {
	case "", WeatherSunny, WeatherCloudy, WeatherRainy, WeatherSnowy:
		return true
	}
	return false
}

type ReminderType string

const (
	ReminderHealth  ReminderType = "health"
	ReminderRoutine ReminderType = "routine"
	ReminderCustom  ReminderType = "custom"
)

func (t ReminderType) Valid() bool {
	switch t {
	case ReminderHealth, ReminderRoutine, ReminderCustom:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// rank ordena high < medium < low.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type Language string

const (
	LanguageKo Language = "ko"
	LanguageEn Language = "en"
)

func (l Language) Valid() bool { return l == LanguageKo || l == LanguageEn }
