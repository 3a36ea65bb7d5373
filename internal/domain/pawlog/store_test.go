package pawlog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kst = time.FixedZone("KST", 9*60*60)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

type fixture struct {
	s     *Store
	repo  *testRepo
	feed  *testFeed
	clock *clock
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	c := &clock{t: now}
	repo := newTestRepo(c.Now)
	feed := &testFeed{}
	s := NewStore(repo, feed, nil)
	s.now = c.Now
	s.SetLocation(kst)
	require.NoError(t, s.Sync(context.Background()))
	return &fixture{s: s, repo: repo, feed: feed, clock: c}
}

func (f *fixture) login(t *testing.T) User {
	t.Helper()
	u, err := f.s.InitializeUser(context.Background(), "owner@example.com", "Owner")
	require.NoError(t, err)
	return u
}

func (f *fixture) addDog(t *testing.T, name string) Dog {
	t.Helper()
	d, err := f.s.AddDog(context.Background(), DogInput{
		Name:      name,
		Breed:     "Poodle",
		BirthDate: time.Date(2022, 1, 1, 0, 0, 0, 0, kst),
		Weight:    3.5,
		Gender:    GenderFemale,
	})
	require.NoError(t, err)
	return d
}

func day(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, kst)
}

// -------------------------
// Dogs
// -------------------------

func TestAddDog_MochiScenario(t *testing.T) {
	f := newFixture(t, day(2024, 6, 1, 10, 0))
	ctx := context.Background()

	d := f.addDog(t, "Mochi")
	assert.NotEmpty(t, d.ID)
	assert.True(t, d.IsActive)

	stored, err := f.repo.Dogs().List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Mochi", stored[0].Name)
	assert.Equal(t, []Dog{d}, f.s.Dogs())
}

func TestAddDog_StampsOwnerOfCurrentUser(t *testing.T) {
	f := newFixture(t, day(2024, 6, 1, 10, 0))
	u := f.login(t)

	d := f.addDog(t, "Mochi")
	assert.Equal(t, u.ID, d.OwnerID)
}

func TestUpdateDog_PatchesOnlyGivenFields(t *testing.T) {
	f := newFixture(t, day(2024, 6, 1, 10, 0))
	d := f.addDog(t, "Mochi")

	w := 4.1
	up, err := f.s.UpdateDog(context.Background(), d.ID, DogPatch{Weight: &w})
	require.NoError(t, err)
	assert.Equal(t, 4.1, up.Weight)
	assert.Equal(t, "Mochi", up.Name)
	require.NotNil(t, up.UpdatedAt)

	_, err = f.s.UpdateDog(context.Background(), "nope", DogPatch{Weight: &w})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDog_CascadesEverything(t *testing.T) {
	f := newFixture(t, day(2024, 6, 1, 10, 0))
	ctx := context.Background()
	f.login(t)
	mochi := f.addDog(t, "Mochi")
	kong := f.addDog(t, "Kong")

	next := day(2024, 7, 1, 0, 0)
	for _, d := range []Dog{mochi, kong} {
		_, err := f.s.AddRoutineRecord(ctx, RoutineInput{DogID: d.ID, Type: RoutineWalk, Timestamp: f.clock.t})
		require.NoError(t, err)
		_, err = f.s.AddHealthRecord(ctx, HealthInput{DogID: d.ID, Type: HealthCheckup, Title: "Checkup", Date: f.clock.t, NextDate: &next})
		require.NoError(t, err)
		_, err = f.s.AddDiaryEntry(ctx, DiaryInput{DogID: d.ID, Date: f.clock.t, Content: "good day", Mood: MoodHappy, IsPublic: true})
		require.NoError(t, err)
	}

	require.NoError(t, f.s.DeleteDog(ctx, mochi.ID))

	_, ok := f.s.Dog(mochi.ID)
	assert.False(t, ok)
	assert.Empty(t, f.s.RoutineRecordsByDog(mochi.ID))
	assert.Empty(t, f.s.HealthRecordsByDog(mochi.ID))
	assert.Empty(t, f.s.DiaryEntriesByDog(mochi.ID))
	assert.Empty(t, f.s.RemindersByDog(mochi.ID))

	for _, r := range f.repo.reminders.items {
		assert.NotEqual(t, mochi.ID, r.DogID)
	}
	for _, e := range f.repo.diary.items {
		assert.NotEqual(t, mochi.ID, e.DogID)
	}
	assert.Len(t, f.s.RoutineRecordsByDog(kong.ID), 1)
	assert.Len(t, f.s.RemindersByDog(kong.ID), 1)

	// la entrada pública de Mochi se retira del feed
	assert.Len(t, f.feed.retracted, 1)

	assert.ErrorIs(t, f.s.DeleteDog(ctx, mochi.ID), ErrNotFound)
}

// -------------------------
// Isolation
// -------------------------

func TestIsolation_RecordsForOtherOwnersDogAreNotFound(t *testing.T) {
	f := newFixture(t, day(2024, 6, 1, 10, 0))
	ctx := context.Background()

	_, err := f.repo.Dogs().Create(ctx, Dog{Name: "Stranger", OwnerID: "someone-else", IsActive: true})
	require.NoError(t, err)
	foreign := f.repo.dogs.items[0]

	f.login(t)
	assert.Empty(t, f.s.Dogs())

	_, err = f.s.AddRoutineRecord(ctx, RoutineInput{DogID: foreign.ID, Type: RoutineWalk, Timestamp: f.clock.t})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInitializeUser_AdoptsOrphanDogs(t *testing.T) {
	f := newFixture(t, day(2024, 6, 1, 10, 0))
	orphan := f.addDog(t, "Mochi")
	assert.Empty(t, orphan.OwnerID)

	u := f.login(t)

	dogs := f.s.Dogs()
	require.Len(t, dogs, 1)
	assert.Equal(t, u.ID, dogs[0].OwnerID)
	assert.Equal(t, u.ID, f.repo.dogs.items[0].OwnerID)
	assert.Equal(t, "Owner", u.Nickname)
	assert.Equal(t, 3, u.Preferences.DefaultReminderDays)
}

func TestInitializeUser_RejectsBadEmail(t *testing.T) {
	f := newFixture(t, day(2024, 6, 1, 10, 0))
	_, err := f.s.InitializeUser(context.Background(), "not-an-email", "x")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, f.s.CurrentUser())
}

func TestLogout_ClearsScopeButKeepsData(t *testing.T) {
	f := newFixture(t, day(2024, 6, 1, 10, 0))
	ctx := context.Background()
	u := f.login(t)
	f.addDog(t, "Mochi")

	require.NoError(t, f.s.Logout(ctx))
	assert.Nil(t, f.s.CurrentUser())
	assert.Empty(t, f.s.Dogs())
	assert.Len(t, f.repo.dogs.items, 1)
	assert.Nil(t, f.feed.viewer)

	require.NoError(t, f.s.LoadUserData(ctx, u.ID))
	assert.Len(t, f.s.Dogs(), 1)
}

// -------------------------
// Health + reminders
// -------------------------

func TestAddHealthRecord_CreatesReminderSevenDaysBefore(t *testing.T) {
	f := newFixture(t, day(2024, 1, 1, 9, 0))
	ctx := context.Background()
	d := f.addDog(t, "Mochi")

	next := day(2025, 1, 1, 0, 0)
	seven := 7
	h, err := f.s.AddHealthRecord(ctx, HealthInput{
		DogID:        d.ID,
		Type:         HealthVaccination,
		Title:        "종합백신",
		Date:         day(2024, 1, 1, 0, 0),
		NextDate:     &next,
		ReminderDays: &seven,
	})
	require.NoError(t, err)
	assert.True(t, h.ReminderEnabled)

	rs := f.s.RemindersByDog(d.ID)
	require.Len(t, rs, 1)
	r := rs[0]
	y, m, dd := r.DueDate.In(kst).Date()
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.December, m)
	assert.Equal(t, 25, dd)
	assert.Equal(t, ReminderHealth, r.Type)
	assert.Equal(t, PriorityHigh, r.Priority)
	assert.Equal(t, h.ID, r.RelatedRecordID)
	assert.Equal(t, "종합백신 예정", r.Title)
	assert.Equal(t, "종합백신이 예정되어 있습니다.", r.Description)
}

func TestAddHealthRecord_NoReminderWhenCompletedOrDisabled(t *testing.T) {
	f := newFixture(t, day(2024, 1, 1, 9, 0))
	ctx := context.Background()
	d := f.addDog(t, "Mochi")
	next := day(2024, 2, 1, 0, 0)
	off := false

	_, err := f.s.AddHealthRecord(ctx, HealthInput{DogID: d.ID, Type: HealthCheckup, Title: "a", NextDate: &next, Completed: true})
	require.NoError(t, err)
	_, err = f.s.AddHealthRecord(ctx, HealthInput{DogID: d.ID, Type: HealthCheckup, Title: "b", NextDate: &next, ReminderEnabled: &off})
	require.NoError(t, err)
	_, err = f.s.AddHealthRecord(ctx, HealthInput{DogID: d.ID, Type: HealthCheckup, Title: "c"})
	require.NoError(t, err)

	assert.Empty(t, f.s.RemindersByDog(d.ID))
}

func TestDeleteHealthRecord_RemovesRelatedReminders(t *testing.T) {
	f := newFixture(t, day(2024, 1, 1, 9, 0))
	ctx := context.Background()
	d := f.addDog(t, "Mochi")
	next := day(2024, 3, 1, 0, 0)

	h, err := f.s.AddHealthRecord(ctx, HealthInput{DogID: d.ID, Type: HealthMedication, Title: "Heartworm", NextDate: &next})
	require.NoError(t, err)
	_, err = f.s.AddReminder(ctx, ReminderInput{DogID: d.ID, Title: "Buy food", DueDate: next})
	require.NoError(t, err)
	require.Len(t, f.s.RemindersByDog(d.ID), 2)

	require.NoError(t, f.s.DeleteHealthRecord(ctx, h.ID))

	rs := f.s.RemindersByDog(d.ID)
	require.Len(t, rs, 1)
	assert.Equal(t, "Buy food", rs[0].Title)
	assert.Len(t, f.repo.reminders.items, 1)
}

func TestUpcomingAndOverdueHealthRecords(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 12, 0))
	ctx := context.Background()
	d := f.addDog(t, "Mochi")
	off := false

	add := func(title string, next time.Time) {
		_, err := f.s.AddHealthRecord(ctx, HealthInput{DogID: d.ID, Type: HealthCheckup, Title: title, NextDate: &next, ReminderEnabled: &off})
		require.NoError(t, err)
	}
	add("overdue", day(2024, 6, 10, 0, 0))
	add("soon", day(2024, 6, 20, 0, 0))
	add("sooner", day(2024, 6, 16, 0, 0))
	add("far", day(2024, 9, 1, 0, 0))

	up := f.s.UpcomingHealthRecords(0)
	require.Len(t, up, 2)
	assert.Equal(t, "sooner", up[0].Title)
	assert.Equal(t, "soon", up[1].Title)

	assert.Len(t, f.s.UpcomingHealthRecords(90), 3)

	over := f.s.OverdueHealthRecords()
	require.Len(t, over, 1)
	assert.Equal(t, "overdue", over[0].Title)
}

func TestGetTodayReminders_WindowAndOrder(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	ctx := context.Background()
	d := f.addDog(t, "Mochi")

	add := func(title string, due time.Time, p Priority) {
		_, err := f.s.AddReminder(ctx, ReminderInput{DogID: d.ID, Title: title, DueDate: due, Priority: p})
		require.NoError(t, err)
	}
	add("late tonight", day(2024, 6, 15, 23, 59), PriorityLow)
	add("tomorrow", day(2024, 6, 16, 0, 1), PriorityHigh)
	add("morning", day(2024, 6, 15, 9, 0), PriorityMedium)
	add("urgent", day(2024, 6, 15, 18, 0), PriorityHigh)
	add("yesterday", day(2024, 6, 14, 23, 59), PriorityHigh)

	today := f.s.GetTodayReminders()
	titles := make([]string, 0, len(today))
	for _, r := range today {
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"urgent", "morning", "late tonight"}, titles)

	_, err := f.s.CompleteReminder(ctx, today[0].ID)
	require.NoError(t, err)
	assert.Len(t, f.s.GetTodayReminders(), 2)
}

func TestDDay(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 23, 0))
	assert.Equal(t, "D-Day", f.s.DDay(day(2024, 6, 15, 1, 0)))
	assert.Equal(t, "D-1", f.s.DDay(day(2024, 6, 16, 0, 1)))
	assert.Equal(t, "D+2", f.s.DDay(day(2024, 6, 13, 12, 0)))
}

// -------------------------
// Routines
// -------------------------

func TestRoutineRecordsByDate_SameLocalDayDescending(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	ctx := context.Background()
	d := f.addDog(t, "Mochi")

	for _, ts := range []time.Time{
		day(2024, 6, 15, 7, 0),
		day(2024, 6, 15, 21, 30),
		day(2024, 6, 14, 23, 59),
		day(2024, 6, 16, 0, 0),
	} {
		_, err := f.s.AddRoutineRecord(ctx, RoutineInput{DogID: d.ID, Type: RoutineMeal, Timestamp: ts})
		require.NoError(t, err)
	}

	got := f.s.RoutineRecordsByDate(day(2024, 6, 15, 12, 0))
	require.Len(t, got, 2)
	assert.True(t, got[0].Timestamp.Equal(day(2024, 6, 15, 21, 30)))
	assert.True(t, got[1].Timestamp.Equal(day(2024, 6, 15, 7, 0)))
}

func TestAddRoutineRecord_Validation(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	ctx := context.Background()
	d := f.addDog(t, "Mochi")

	_, err := f.s.AddRoutineRecord(ctx, RoutineInput{DogID: d.ID, Type: "nap"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.s.AddRoutineRecord(ctx, RoutineInput{DogID: d.ID, Type: RoutineWalk, Photos: make([]string, 6)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.s.AddRoutineRecord(ctx, RoutineInput{DogID: "ghost", Type: RoutineWalk})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWalkStats(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	ctx := context.Background()
	d := f.addDog(t, "Mochi")

	dur := func(v int) *int { return &v }
	dist := func(v float64) *float64 { return &v }
	for _, in := range []RoutineInput{
		{DogID: d.ID, Type: RoutineWalk, Duration: dur(30), Distance: dist(1.5)},
		{DogID: d.ID, Type: RoutineWalk, Duration: dur(10), Distance: dist(0.5)},
		{DogID: d.ID, Type: RoutineMeal},
	} {
		_, err := f.s.AddRoutineRecord(ctx, in)
		require.NoError(t, err)
	}

	st := f.s.WalkStats(d.ID)
	assert.Equal(t, 2, st.TotalWalks)
	assert.Equal(t, 40, st.TotalDuration)
	assert.InDelta(t, 2.0, st.TotalDistance, 1e-9)
	assert.InDelta(t, 20.0, st.AverageDuration, 1e-9)
	assert.InDelta(t, 1.0, st.AverageDistance, 1e-9)
}

// -------------------------
// Diary + feed
// -------------------------

func TestAddDiaryEntry_RequiresUser(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	d := f.addDog(t, "Mochi")

	_, err := f.s.AddDiaryEntry(context.Background(), DiaryInput{DogID: d.ID, Content: "hello", Mood: MoodHappy})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, f.repo.diary.items)
}

func TestAddDiaryEntry_StampsAuthorAndNormalizes(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	u := f.login(t)
	d := f.addDog(t, "Mochi")

	e, err := f.s.AddDiaryEntry(context.Background(), DiaryInput{
		DogID:   d.ID,
		Date:    f.clock.t,
		Content: "  산책 최고  ",
		Mood:    MoodExcited,
		Tags:    []string{"#산책", "산책", " walk "},
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, e.UserID)
	assert.Equal(t, "Owner", e.Nickname)
	assert.Equal(t, "산책 최고", e.Content)
	assert.Equal(t, 5, e.WordCount)
	assert.Equal(t, []string{"산책", "walk"}, e.Tags)
	assert.Equal(t, []string{}, e.Photos)
	require.NotNil(t, e.UpdatedAt)
	assert.Empty(t, f.feed.published)
}

func TestAddDiaryEntry_ContentBounds(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	f.login(t)
	d := f.addDog(t, "Mochi")
	ctx := context.Background()

	_, err := f.s.AddDiaryEntry(ctx, DiaryInput{DogID: d.ID, Content: "   ", Mood: MoodHappy})
	assert.ErrorIs(t, err, ErrValidation)

	long := make([]rune, 2001)
	for i := range long {
		long[i] = '가'
	}
	_, err = f.s.AddDiaryEntry(ctx, DiaryInput{DogID: d.ID, Content: string(long), Mood: MoodHappy})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.s.AddDiaryEntry(ctx, DiaryInput{DogID: d.ID, Content: string(long[:2000]), Mood: MoodHappy})
	assert.NoError(t, err)
}

func TestDiaryPublicTransitionsReachFeed(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	f.login(t)
	d := f.addDog(t, "Mochi")
	ctx := context.Background()

	e, err := f.s.AddDiaryEntry(ctx, DiaryInput{DogID: d.ID, Content: "private", Mood: MoodCalm})
	require.NoError(t, err)
	assert.Empty(t, f.feed.published)

	public := true
	_, err = f.s.UpdateDiaryEntry(ctx, e.ID, DiaryPatch{IsPublic: &public})
	require.NoError(t, err)
	require.Len(t, f.feed.published, 1)
	assert.Equal(t, e.ID, f.feed.published[0].entry.ID)
	assert.Equal(t, "Mochi", f.feed.published[0].dogName)

	// sin cambio de visibilidad no se vuelve a publicar
	title := "t"
	_, err = f.s.UpdateDiaryEntry(ctx, e.ID, DiaryPatch{Title: &title})
	require.NoError(t, err)
	assert.Len(t, f.feed.published, 1)

	private := false
	_, err = f.s.UpdateDiaryEntry(ctx, e.ID, DiaryPatch{IsPublic: &private})
	require.NoError(t, err)
	assert.Equal(t, []string{e.ID}, f.feed.retracted)
}

func TestDiaryPublishWithoutFeedIsDropped(t *testing.T) {
	c := &clock{t: day(2024, 6, 15, 8, 0)}
	s := NewStore(newTestRepo(c.Now), nil, nil)
	s.now = c.Now
	ctx := context.Background()

	_, err := s.InitializeUser(ctx, "a@b.co", "A")
	require.NoError(t, err)
	d, err := s.AddDog(ctx, DogInput{Name: "Mochi"})
	require.NoError(t, err)

	e, err := s.AddDiaryEntry(ctx, DiaryInput{DogID: d.ID, Content: "hi", Mood: MoodHappy, IsPublic: true})
	require.NoError(t, err)
	assert.True(t, e.IsPublic)
}

func TestDiaryEntriesByDateRangeAndMoodStats(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	f.login(t)
	a := f.addDog(t, "Mochi")
	b := f.addDog(t, "Kong")
	ctx := context.Background()

	add := func(dogID string, date time.Time, mood Mood) {
		_, err := f.s.AddDiaryEntry(ctx, DiaryInput{DogID: dogID, Date: date, Content: "x", Mood: mood})
		require.NoError(t, err)
	}
	add(a.ID, day(2024, 6, 1, 0, 0), MoodHappy)
	add(a.ID, day(2024, 6, 10, 0, 0), MoodSad)
	add(b.ID, day(2024, 6, 5, 0, 0), MoodHappy)
	add(a.ID, day(2024, 5, 31, 0, 0), MoodTired)

	got := f.s.DiaryEntriesByDateRange(day(2024, 6, 1, 0, 0), day(2024, 6, 10, 0, 0), "")
	require.Len(t, got, 3)
	assert.True(t, got[0].Date.Equal(day(2024, 6, 10, 0, 0)))

	onlyA := f.s.DiaryEntriesByDateRange(day(2024, 6, 1, 0, 0), day(2024, 6, 30, 0, 0), a.ID)
	assert.Len(t, onlyA, 2)

	assert.Equal(t, map[Mood]int{MoodHappy: 1, MoodSad: 1, MoodTired: 1}, f.s.DiaryStatsByMood(a.ID))
	assert.Equal(t, 2, f.s.DiaryStatsByMood("")[MoodHappy])
}

// -------------------------
// Stats
// -------------------------

func TestGetDogStats_MoodAverage(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	f.login(t)
	d := f.addDog(t, "Mochi")
	ctx := context.Background()

	st := f.s.GetDogStats(d.ID)
	assert.Equal(t, MoodNormal, st.AverageMood)
	assert.Equal(t, 3.0, st.AverageMoodScore)

	for _, m := range []Mood{MoodHappy, MoodHappy, MoodSad} {
		_, err := f.s.AddDiaryEntry(ctx, DiaryInput{DogID: d.ID, Content: "x", Mood: m})
		require.NoError(t, err)
	}
	_, err := f.s.AddRoutineRecord(ctx, RoutineInput{DogID: d.ID, Type: RoutinePoop})
	require.NoError(t, err)

	st = f.s.GetDogStats(d.ID)
	assert.Equal(t, 3, st.TotalDiaryEntries)
	assert.Equal(t, 1, st.TotalRoutines)
	assert.Equal(t, 3.0, st.AverageMoodScore)
	assert.Equal(t, MoodNormal, st.AverageMood)
}

func TestHealthStats(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	d := f.addDog(t, "Mochi")
	ctx := context.Background()
	off := false
	cost := func(v float64) *float64 { return &v }
	past := day(2024, 6, 1, 0, 0)
	soon := day(2024, 6, 20, 0, 0)

	inputs := []HealthInput{
		{DogID: d.ID, Type: HealthCheckup, Title: "old", Date: day(2024, 1, 5, 0, 0), Cost: cost(30000)},
		{DogID: d.ID, Type: HealthCheckup, Title: "recent", Date: day(2024, 5, 5, 0, 0), Cost: cost(20000), NextDate: &soon, ReminderEnabled: &off},
		{DogID: d.ID, Type: HealthMedication, Title: "pill", Date: day(2024, 5, 1, 0, 0), NextDate: &past, ReminderEnabled: &off},
	}
	for _, in := range inputs {
		_, err := f.s.AddHealthRecord(ctx, in)
		require.NoError(t, err)
	}

	st := f.s.HealthStats(d.ID)
	assert.Equal(t, 1, st.UpcomingAppointments)
	assert.Equal(t, 1, st.OverdueAppointments)
	assert.InDelta(t, 50000.0, st.TotalCost, 1e-9)
	require.NotNil(t, st.LastCheckup)
	assert.True(t, st.LastCheckup.Equal(day(2024, 5, 5, 0, 0)))
}

func TestDogAgeInMonths(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	d := f.addDog(t, "Mochi") // nacido 2022-01-01
	assert.Equal(t, 29, f.s.DogAgeInMonths(d.ID))
	assert.Equal(t, 0, f.s.DogAgeInMonths("ghost"))
}

// -------------------------
// Settings
// -------------------------

func TestSettings_UpdateValidatesAndPersists(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	ctx := context.Background()

	s, err := f.s.UpdateSettings(ctx, func(s *AppSettings) { s.Theme = ThemeDark })
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, s.Theme)
	assert.Equal(t, ThemeDark, f.repo.settings.Theme)

	_, err = f.s.UpdateSettings(ctx, func(s *AppSettings) { s.Units.Weight = "stone" })
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "kg", f.s.Settings().Units.Weight)

	s, err = f.s.ResetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

// -------------------------
// Storage failures
// -------------------------

func TestWriteFailure_KeepsMemoryAndSurfacesError(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	f.repo.failWrites(true)

	d, err := f.s.AddDog(context.Background(), DogInput{Name: "Mochi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
	assert.True(t, errors.Is(err, errDiskFull))
	assert.NotEmpty(t, d.ID)
	assert.Len(t, f.s.Dogs(), 1)
}

// -------------------------
// Data
// -------------------------

func TestExportImport_RoundTrip(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	ctx := context.Background()
	f.login(t)
	d := f.addDog(t, "Mochi")
	next := day(2024, 7, 1, 0, 0)
	_, err := f.s.AddHealthRecord(ctx, HealthInput{DogID: d.ID, Type: HealthVaccination, Title: "DHPPL", NextDate: &next, Attachments: []string{"data:image/png;base64,xx"}})
	require.NoError(t, err)
	_, err = f.s.AddDiaryEntry(ctx, DiaryInput{DogID: d.ID, Content: "hi", Mood: MoodHappy, Photos: []string{"data:image/jpeg;base64,yy"}})
	require.NoError(t, err)

	full, err := f.s.ExportData(ctx, ExportOptions{IncludePhotos: true})
	require.NoError(t, err)

	var b Backup
	require.NoError(t, json.Unmarshal(full, &b))
	assert.Equal(t, DataVersion, b.Version)
	require.Len(t, b.DiaryEntries, 1)
	assert.Len(t, b.DiaryEntries[0].Photos, 1)

	lite, err := f.s.ExportData(ctx, ExportOptions{})
	require.NoError(t, err)
	var bl Backup
	require.NoError(t, json.Unmarshal(lite, &bl))
	assert.Equal(t, []string{}, bl.DiaryEntries[0].Photos)
	assert.Empty(t, bl.HealthRecords[0].Attachments)

	require.NoError(t, f.s.ClearAllData(ctx))
	assert.Nil(t, f.s.CurrentUser())
	assert.Empty(t, f.s.Dogs())

	require.NoError(t, f.s.ImportData(ctx, full))
	require.NotNil(t, f.s.CurrentUser())
	assert.Len(t, f.s.Dogs(), 1)
	assert.Len(t, f.s.DiaryEntriesByDog(d.ID), 1)
	assert.Len(t, f.s.RemindersByDog(d.ID), 1)
}

func TestImportData_InvalidLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	ctx := context.Background()
	f.addDog(t, "Mochi")

	for _, raw := range []string{
		`not json`,
		`{"user":{"id":"u"},"dogs":[]}`,
		`{"version":"1.0.0","dogs":[]}`,
		`{"version":"1.0.0","user":{"id":"u"},"dogs":null}`,
	} {
		err := f.s.ImportData(ctx, []byte(raw))
		assert.ErrorIs(t, err, ErrInvalidBackup, raw)
	}
	assert.Len(t, f.s.Dogs(), 1)
	assert.Len(t, f.repo.dogs.items, 1)
}

func TestExportData_DateRange(t *testing.T) {
	f := newFixture(t, day(2024, 6, 15, 8, 0))
	ctx := context.Background()
	d := f.addDog(t, "Mochi")
	for _, ts := range []time.Time{day(2024, 5, 1, 0, 0), day(2024, 6, 1, 0, 0)} {
		_, err := f.s.AddRoutineRecord(ctx, RoutineInput{DogID: d.ID, Type: RoutineWalk, Timestamp: ts})
		require.NoError(t, err)
	}

	out, err := f.s.ExportData(ctx, ExportOptions{From: day(2024, 5, 15, 0, 0)})
	require.NoError(t, err)
	var b Backup
	require.NoError(t, json.Unmarshal(out, &b))
	require.Len(t, b.RoutineRecords, 1)
	assert.Len(t, b.Dogs, 1)
}

func TestBackupFileName(t *testing.T) {
	ts := time.Date(2024, 12, 25, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "pawlog_backup_2024-12-25_09-05-07.json", BackupFileName(ts, false))
	assert.Equal(t, "pawlog_with_photos_backup_2024-12-25_09-05-07.json", BackupFileName(ts, true))
}
