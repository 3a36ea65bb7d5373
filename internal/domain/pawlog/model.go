package pawlog

import "time"

// Record agrupa los campos comunes de toda entidad persistida.
// ID y CreatedAt los asigna el adapter de persistencia al crear.
type Record struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Meta expone el Record embebido (lo usa el adapter genérico).
func (r *Record) Meta() *Record { return r }

type Preferences struct {
	DefaultReminderDays int      `json:"defaultReminder"`
	DarkMode            bool     `json:"darkMode"`
	Language            Language `json:"language"`
}

type User struct {
	Record
	Email       string      `json:"email"`
	Name        string      `json:"name,omitempty"`
	Nickname    string      `json:"nickname"`
	Avatar      string      `json:"avatar,omitempty"`
	Preferences Preferences `json:"preferences"`
}

type Dog struct {
	Record
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	BirthDate   time.Time `json:"birthDate"`
	Weight      float64   `json:"weight"`
	Gender      Gender    `json:"gender"`
	IsNeutered  bool      `json:"isNeutered"`
	Photo       string    `json:"photo,omitempty"`
	MicrochipID string    `json:"microchipId,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	OwnerID     string    `json:"ownerId,omitempty"`
	IsActive    bool      `json:"isActive"`
}

type RoutineRecord struct {
	Record
	DogID     string      `json:"dogId"`
	Type      RoutineType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Duration  *int        `json:"duration,omitempty"` // minutos
	Distance  *float64    `json:"distance,omitempty"` // km
	Amount    string      `json:"amount,omitempty"`
	FoodType  string      `json:"foodType,omitempty"`
	Notes     string      `json:"notes,omitempty"`
	Weather   Weather     `json:"weather,omitempty"`
	Location  string      `json:"location,omitempty"`
	Photos    []string    `json:"photos,omitempty"`
	Mood      Mood        `json:"mood,omitempty"`
}

type HealthRecord struct {
	Record
	DogID           string     `json:"dogId"`
	Type            HealthType `json:"type"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Date            time.Time  `json:"date"`
	NextDate        *time.Time `json:"nextDate,omitempty"`
	Veterinarian    string     `json:"veterinarian,omitempty"`
	Clinic          string     `json:"clinic,omitempty"`
	Cost            *float64   `json:"cost,omitempty"`
	MedicationName  string     `json:"medicationName,omitempty"`
	Dosage          string     `json:"dosage,omitempty"`
	Frequency       string     `json:"frequency,omitempty"`
	Duration        *int       `json:"duration,omitempty"` // días
	VaccineName     string     `json:"vaccineName,omitempty"`
	BatchNumber     string     `json:"batchNumber,omitempty"`
	Attachments     []string   `json:"attachments,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Completed       bool       `json:"completed"`
	ReminderEnabled bool       `json:"reminderEnabled"`
	ReminderDays    int        `json:"reminderDays"`
}

type DiaryEntry struct {
	Record
	DogID         string    `json:"dogId"`
	Date          time.Time `json:"date"`
	Title         string    `json:"title,omitempty"`
	Content       string    `json:"content"`
	Photos        []string  `json:"photos"`
	Mood          Mood      `json:"mood"`
	Weather       Weather   `json:"weather,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	SpecialMoment bool      `json:"specialMoment,omitempty"`
	Milestone     string    `json:"milestone,omitempty"`
	Gratitude     string    `json:"gratitude,omitempty"`
	WordCount     int       `json:"wordCount"`
	IsPublic      bool      `json:"isPublic"`
	UserID        string    `json:"userId"`
	Nickname      string    `json:"nickname"`
}

type Reminder struct {
	Record
	DogID            string       `json:"dogId"`
	Type             ReminderType `json:"type"`
	Title            string       `json:"title"`
	Description      string       `json:"description,omitempty"`
	DueDate          time.Time    `json:"dueDate"`
	IsCompleted      bool         `json:"isCompleted"`
	Priority         Priority     `json:"priority"`
	RelatedRecordID  string       `json:"relatedRecordId,omitempty"`
	NotificationSent bool         `json:"notificationSent,omitempty"`
}

// DogStats resume la actividad de un perro.
type DogStats struct {
	TotalRoutines      int     `json:"totalRoutines"`
	TotalDiaryEntries  int     `json:"totalDiaryEntries"`
	HealthRecordsCount int     `json:"healthRecordsCount"`
	AverageMood        Mood    `json:"averageMood"`
	AverageMoodScore   float64 `json:"averageMoodScore"`
}

type WalkStats struct {
	TotalWalks      int     `json:"totalWalks"`
	TotalDuration   int     `json:"totalDuration"`
	TotalDistance   float64 `json:"totalDistance"`
	AverageDuration float64 `json:"averageDuration"`
	AverageDistance float64 `json:"averageDistance"`
}

type HealthStats struct {
	UpcomingAppointments int        `json:"upcomingAppointments"`
	OverdueAppointments  int        `json:"overdueAppointments"`
	TotalCost            float64    `json:"totalCost"`
	LastCheckup          *time.Time `json:"lastCheckup,omitempty"`
}

// StorageUsage: bytes aproximados (UTF-16 x2) contra la cuota asumida.
type StorageUsage struct {
	Used       int64   `json:"used"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}
