package pawlog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errDiskFull = errors.New("disk full")

type testRepo struct {
	mu       sync.Mutex
	seq      int
	now      func() time.Time
	failing  bool
	user     *User
	settings *AppSettings

	dogs      *testCollection[Dog, *Dog]
	routines  *testCollection[RoutineRecord, *RoutineRecord]
	health    *testCollection[HealthRecord, *HealthRecord]
	diary     *testCollection[DiaryEntry, *DiaryEntry]
	reminders *testCollection[Reminder, *Reminder]
}

func newTestRepo(now func() time.Time) *testRepo {
	r := &testRepo{now: now}
	r.dogs = &testCollection[Dog, *Dog]{r: r}
	r.routines = &testCollection[RoutineRecord, *RoutineRecord]{r: r}
	r.health = &testCollection[HealthRecord, *HealthRecord]{r: r}
	r.diary = &testCollection[DiaryEntry, *DiaryEntry]{r: r}
	r.reminders = &testCollection[Reminder, *Reminder]{r: r}
	return r
}

// failWrites simula un almacén roto: las escrituras aplican en memoria del repo
// de prueba pero devuelven StorageError, igual que el adapter real.
func (r *testRepo) failWrites(on bool) {
	r.mu.Lock()
	r.failing = on
	r.mu.Unlock()
}

func (r *testRepo) writeErr(key string) error {
	if r.failing {
		return &StorageError{Op: "write", Key: key, Err: errDiskFull}
	}
	return nil
}

func (r *testRepo) Dogs() Collection[Dog]                    { return r.dogs }
func (r *testRepo) Routines() Collection[RoutineRecord]      { return r.routines }
func (r *testRepo) HealthRecords() Collection[HealthRecord]  { return r.health }
func (r *testRepo) DiaryEntries() Collection[DiaryEntry]     { return r.diary }
func (r *testRepo) Reminders() Collection[Reminder]          { return r.reminders }

func (r *testRepo) LoadUser(ctx context.Context) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.user == nil {
		return nil, nil
	}
	u := *r.user
	return &u, nil
}

func (r *testRepo) SaveUser(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u == nil {
		r.user = nil
	} else {
		cp := *u
		r.user = &cp
	}
	return r.writeErr("user")
}

func (r *testRepo) LoadSettings(ctx context.Context) (AppSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return DefaultSettings(), nil
	}
	return *r.settings, nil
}

func (r *testRepo) SaveSettings(ctx context.Context, s AppSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = &s
	return r.writeErr("settings")
}

func (r *testRepo) Backup(ctx context.Context) (Backup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	settings := DefaultSettings()
	if r.settings != nil {
		settings = *r.settings
	}
	var user *User
	if r.user != nil {
		u := *r.user
		user = &u
	}
	return Backup{
		Version:        DataVersion,
		Timestamp:      r.now(),
		User:           user,
		Dogs:           cloneSlice(r.dogs.items),
		RoutineRecords: cloneSlice(r.routines.items),
		HealthRecords:  cloneSlice(r.health.items),
		DiaryEntries:   cloneSlice(r.diary.items),
		Reminders:      cloneSlice(r.reminders.items),
		Settings:       settings,
	}, nil
}

func (r *testRepo) Restore(ctx context.Context, b Backup) error {
	if err := b.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *b.User
	r.user = &u
	r.settings = &b.Settings
	r.dogs.items = cloneSlice(b.Dogs)
	r.routines.items = cloneSlice(b.RoutineRecords)
	r.health.items = cloneSlice(b.HealthRecords)
	r.diary.items = cloneSlice(b.DiaryEntries)
	r.reminders.items = cloneSlice(b.Reminders)
	return nil
}

func (r *testRepo) ClearAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = nil
	r.settings = nil
	r.dogs.items = nil
	r.routines.items = nil
	r.health.items = nil
	r.diary.items = nil
	r.reminders.items = nil
	return nil
}

func (r *testRepo) Usage(ctx context.Context) (StorageUsage, error) {
	return StorageUsage{Used: 0, Total: 5 * 1024 * 1024}, nil
}

type testCollection[T any, P interface {
	*T
	Meta() *Record
}] struct {
	r     *testRepo
	items []T
}

func (c *testCollection[T, P]) indexOf(id string) int {
	for i := range c.items {
		if P(&c.items[i]).Meta().ID == id {
			return i
		}
	}
	return -1
}

func (c *testCollection[T, P]) Create(ctx context.Context, item T) (T, error) {
	c.r.mu.Lock()
	defer c.r.mu.Unlock()
	c.r.seq++
	m := P(&item).Meta()
	m.ID = fmt.Sprintf("rec-%d", c.r.seq)
	m.CreatedAt = c.r.now()
	c.items = append(c.items, item)
	return item, c.r.writeErr("create")
}

func (c *testCollection[T, P]) Read(ctx context.Context, id string) (T, bool, error) {
	c.r.mu.Lock()
	defer c.r.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true, nil
	}
	var zero T
	return zero, false, nil
}

func (c *testCollection[T, P]) Update(ctx context.Context, id string, apply func(*T)) (T, error) {
	c.r.mu.Lock()
	defer c.r.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, NotFound("record", id)
	}
	apply(&c.items[i])
	now := c.r.now()
	P(&c.items[i]).Meta().UpdatedAt = &now
	return c.items[i], c.r.writeErr("update")
}

func (c *testCollection[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	c.r.mu.Lock()
	defer c.r.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false, nil
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true, c.r.writeErr("delete")
}

func (c *testCollection[T, P]) DeleteWhere(ctx context.Context, match Filter[T]) (int, error) {
	c.r.mu.Lock()
	defer c.r.mu.Unlock()
	before := len(c.items)
	c.items = removeWhere(c.items, match)
	return before - len(c.items), c.r.writeErr("delete_where")
}

func (c *testCollection[T, P]) List(ctx context.Context, filters ...Filter[T]) ([]T, error) {
	c.r.mu.Lock()
	defer c.r.mu.Unlock()
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		ok := true
		for _, f := range filters {
			if !f(it) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, it)
		}
	}
	return out, nil
}

// -------------------------
// Test feed
// -------------------------

type published struct {
	entry   DiaryEntry
	dogName string
}

type testFeed struct {
	published []published
	retracted []string
	viewer    *User
}

func (f *testFeed) PublishDiary(e DiaryEntry, dogName string) {
	f.published = append(f.published, published{entry: e, dogName: dogName})
}

func (f *testFeed) RetractDiary(id string) { f.retracted = append(f.retracted, id) }

func (f *testFeed) SetViewer(u *User) { f.viewer = u }
