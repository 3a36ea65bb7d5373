package pawlog

import "time"

// GetDogStats cuenta la actividad del perro y promedia el mood del diario.
func (s *Store) GetDogStats(dogID string) DogStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st DogStats
	for _, r := range s.routines {
		if r.DogID == dogID {
			st.TotalRoutines++
		}
	}
	for _, r := range s.health {
		if r.DogID == dogID {
			st.HealthRecordsCount++
		}
	}
	moods := make([]Mood, 0)
	for _, e := range s.diary {
		if e.DogID == dogID {
			moods = append(moods, e.Mood)
		}
	}
	st.TotalDiaryEntries = len(moods)
	st.AverageMood, st.AverageMoodScore = AverageMood(moods)
	return st
}

// WalkStats suma duración y distancia de los paseos registrados.
func (s *Store) WalkStats(dogID string) WalkStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st WalkStats
	withDuration, withDistance := 0, 0
	for _, r := range s.routines {
		if r.DogID != dogID || r.Type != RoutineWalk {
			continue
		}
		st.TotalWalks++
		if r.Duration != nil {
			st.TotalDuration += *r.Duration
			withDuration++
		}
		if r.Distance != nil {
			st.TotalDistance += *r.Distance
			withDistance++
		}
	}
	if withDuration > 0 {
		st.AverageDuration = float64(st.TotalDuration) / float64(withDuration)
	}
	if withDistance > 0 {
		st.AverageDistance = st.TotalDistance / float64(withDistance)
	}
	return st
}

// HealthStats: próximos 30 días, vencidos, costo total y último checkup.
func (s *Store) HealthStats(dogID string) HealthStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	today := s.startOfDay(now)
	until := now.AddDate(0, 0, 30)

	var st HealthStats
	var last time.Time
	for _, r := range s.health {
		if r.DogID != dogID {
			continue
		}
		if r.Cost != nil {
			st.TotalCost += *r.Cost
		}
		if r.Type == HealthCheckup && r.Date.After(last) {
			last = r.Date
		}
		if r.NextDate == nil || r.Completed {
			continue
		}
		switch {
		case r.NextDate.Before(today):
			st.OverdueAppointments++
		case !r.NextDate.Before(now) && !r.NextDate.After(until):
			st.UpcomingAppointments++
		}
	}
	if !last.IsZero() {
		st.LastCheckup = &last
	}
	return st
}

// DogAgeInMonths devuelve la edad en meses cumplidos (0 si el perro no está en el scope).
func (s *Store) DogAgeInMonths(dogID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.dogIndexLocked(dogID)
	if i < 0 {
		return 0
	}
	return monthsBetween(s.dogs[i].BirthDate.In(s.loc), s.now().In(s.loc))
}

func monthsBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()-from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
