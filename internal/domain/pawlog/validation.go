package pawlog

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	maxDogNameLen   = 20
	maxDiaryContent = 2000
	minWeight       = 0.1
	maxWeight       = 100
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateDogInput valida el formulario de registro. El Store no lo exige;
// lo usan los bordes (HTTP/CLI).
func ValidateDogInput(in DogInput, now time.Time) error {
	name := strings.TrimSpace(in.Name)
	if n := utf8.RuneCountInString(name); n < 1 || n > maxDogNameLen {
		return ValidationFailed("name", "dog name must be between 1 and 20 characters")
	}
	if in.Weight < minWeight || in.Weight > maxWeight {
		return ValidationFailed("weight", "weight must be between 0.1kg and 100kg")
	}
	if in.BirthDate.After(now) {
		return ValidationFailed("birthDate", "birth date must not be in the future")
	}
	if !in.Gender.Valid() {
		return ValidationFailed("gender", "gender must be male or female")
	}
	return nil
}

func validateDiaryContent(content string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(content))
	if n < 1 || n > maxDiaryContent {
		return ValidationFailed("content", "diary content must be between 1 and 2000 characters")
	}
	return nil
}

func validatePhotos(photos []string, settings AppSettings) error {
	max := settings.DataRetention.MaxPhotosPerEntry
	if max > 0 && len(photos) > max {
		return ValidationFailed("photos", "too many photos for one entry")
	}
	return nil
}

// NormalizeTags: NFC, sin espacios ni '#' inicial, sin duplicados.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = norm.NFC.String(strings.TrimSpace(t))
		t = strings.TrimSpace(strings.TrimPrefix(t, "#"))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
