package pawlog

type Mood string

const (
	MoodVeryHappy Mood = "very-happy"
	MoodHappy     Mood = "happy"
	MoodExcited   Mood = "excited"
	MoodNormal    Mood = "normal"
	MoodCalm      Mood = "calm"
	MoodTired     Mood = "tired"
	MoodSad       Mood = "sad"
	MoodSick      Mood = "sick"
	MoodAnxious   Mood = "anxious"
)

var moodScores = map[Mood]int{
	MoodVeryHappy: 5,
	MoodHappy:     4,
	MoodExcited:   4,
	MoodNormal:    3,
	MoodCalm:      3,
	MoodTired:     2,
	MoodSad:       1,
	MoodSick:      1,
	MoodAnxious:   1,
}

func (m Mood) Valid() bool {
	_, ok := moodScores[m]
	return ok
}

// Score devuelve el puntaje 1..5; moods desconocidos valen 3.
func (m Mood) Score() int {
	if s, ok := moodScores[m]; ok {
		return s
	}
	return 3
}

// MoodForScore re-agrupa un promedio en el tier nombrado más cercano.
func MoodForScore(avg float64) Mood {
	switch {
	case avg >= 4.5:
		return MoodVeryHappy
	case avg >= 3.5:
		return MoodHappy
	case avg >= 2.5:
		return MoodNormal
	case avg >= 1.5:
		return MoodSad
	default:
		return MoodSick
	}
}

// AverageMood promedia los puntajes; sin entradas el promedio es 3.
func AverageMood(moods []Mood) (Mood, float64) {
	if len(moods) == 0 {
		return MoodForScore(3), 3
	}
	sum := 0
	for _, m := range moods {
		sum += m.Score()
	}
	avg := float64(sum) / float64(len(moods))
	return MoodForScore(avg), avg
}
