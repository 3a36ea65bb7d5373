package community

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"

	"pawlog/internal/domain/pawlog"
	"pawlog/internal/platform/logger"
)

// Store guarda el feed público en memoria: no se persiste.
type Store struct {
	mu       sync.RWMutex
	log      logger.Logger
	now      func() time.Time
	feed     []PublicDiary // más reciente primero
	comments map[string][]Comment
	current  *Member
}

var _ pawlog.Feed = (*Store)(nil)

func NewStore(log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		log:      log.With(map[string]any{"component": "community"}),
		now:      time.Now,
		comments: make(map[string][]Comment),
	}
}

// AddToPublicFeed inserta al inicio con contadores en cero.
// Un id ya presente se ignora (devuelve false).
func (s *Store) AddToPublicFeed(entry pawlog.DiaryEntry, dogName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(entry.ID) >= 0 {
		s.log.Debug("public diary already in feed", map[string]any{"entry_id": entry.ID})
		return false
	}
	pd := PublicDiary{DiaryEntry: entry, DogName: dogName}
	s.feed = append([]PublicDiary{pd}, s.feed...)
	s.comments[entry.ID] = []Comment{}
	return true
}

func (s *Store) RemoveFromPublicFeed(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.feed = append(s.feed[:i], s.feed[i+1:]...)
	delete(s.comments, id)
	return true
}

// ToggleLike invierte isLikedByUser y ajusta likesCount en ±1.
func (s *Store) ToggleLike(id string) (PublicDiary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return PublicDiary{}, false
	}
	d := &s.feed[i]
	if d.IsLikedByUser {
		d.LikesCount--
	} else {
		d.LikesCount++
	}
	d.IsLikedByUser = !d.IsLikedByUser
	return *d, true
}

// AddComment requiere usuario actual, diario en el feed y contenido no vacío.
func (s *Store) AddComment(diaryID, content string) (Comment, error) {
	content = strings.TrimSpace(content)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Comment{}, ErrNoCurrentUser
	}
	i := s.indexLocked(diaryID)
	if i < 0 {
		return Comment{}, pawlog.NotFound("public diary", diaryID)
	}
	if content == "" {
		return Comment{}, ErrEmptyComment
	}

	c := Comment{
		ID:        "comment-" + xid.New().String(),
		DiaryID:   diaryID,
		UserID:    s.current.ID,
		Nickname:  s.current.Nickname,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.comments[diaryID] = append(s.comments[diaryID], c)
	s.feed[i].CommentsCount++
	return c, nil
}

func (s *Store) Comments(diaryID string) []Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Comment, len(s.comments[diaryID]))
	copy(out, s.comments[diaryID])
	return out
}

func (s *Store) Feed() []PublicDiary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]PublicDiary, len(s.feed))
	copy(out, s.feed)
	return out
}

func (s *Store) Diary(id string) (PublicDiary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return PublicDiary{}, false
	}
	return s.feed[i], true
}

func (s *Store) SetCurrentUser(m *Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m == nil {
		s.current = nil
		return
	}
	cp := *m
	s.current = &cp
}

func (s *Store) CurrentUser() *Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// ---- pawlog.Feed ----

func (s *Store) PublishDiary(entry pawlog.DiaryEntry, dogName string) {
	if s.AddToPublicFeed(entry, dogName) {
		s.log.Info("diary published", map[string]any{"entry_id": entry.ID, "dog": dogName})
	}
}

func (s *Store) RetractDiary(entryID string) {
	if s.RemoveFromPublicFeed(entryID) {
		s.log.Info("diary retracted", map[string]any{"entry_id": entryID})
	}
}

func (s *Store) SetViewer(u *pawlog.User) {
	if u == nil {
		s.SetCurrentUser(nil)
		return
	}
	s.SetCurrentUser(&Member{ID: u.ID, Nickname: u.Nickname})
}

func (s *Store) indexLocked(id string) int {
	for i := range s.feed {
		if s.feed[i].ID == id {
			return i
		}
	}
	return -1
}
