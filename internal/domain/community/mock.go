package community

import (
	"time"

	"pawlog/internal/domain/pawlog"
)

// LoadMockFeed reemplaza el feed con las tres entradas de demostración.
func (s *Store) LoadMockFeed() {
	now := s.now()
	daysAgo := func(n int) time.Time { return now.Add(-time.Duration(n) * 24 * time.Hour) }
	entry := func(id, dogID string, at time.Time, title, content string, mood pawlog.Mood, tags []string, words int, userID, nickname string) pawlog.DiaryEntry {
		return pawlog.DiaryEntry{
			Record:    pawlog.Record{ID: id, CreatedAt: at, UpdatedAt: &at},
			DogID:     dogID,
			Date:      at,
			Title:     title,
			Content:   content,
			Photos:    []string{},
			Mood:      mood,
			Tags:      tags,
			WordCount: words,
			IsPublic:  true,
			UserID:    userID,
			Nickname:  nickname,
		}
	}

	first := entry("mock-diary-1", "mock-dog-1", daysAgo(1),
		"첫 산책 성공! 🐕",
		"오늘 우리 모찌가 처음으로 집 밖으로 나가서 산책을 했어요! 처음엔 무서워했지만 조금씩 적응하더니 나중엔 꼬리를 흔들면서 걸었답니다. 정말 기특한 우리 아가 ❤️",
		pawlog.MoodExcited, []string{"첫산책", "성장", "기특함"}, 85, "mock-user-1", "모찌엄마")
	first.SpecialMoment = true
	first.Milestone = "첫 산책"

	feed := []PublicDiary{
		{DiaryEntry: first, DogName: "모찌", LikesCount: 12, CommentsCount: 3},
		{
			DiaryEntry: entry("mock-diary-2", "mock-dog-2", daysAgo(2),
				"간식 먹방 타임",
				"새로 산 간식을 처음 줘봤는데 너무 맛있어하네요 ㅎㅎ 눈을 동그랗게 뜨고 더 달라고 보채는 모습이 너무 귀여워요!",
				pawlog.MoodHappy, []string{"간식", "먹방"}, 56, "mock-user-2", "콩이아빠"),
			DogName:       "콩이",
			LikesCount:    8,
			CommentsCount: 1,
		},
		{
			DiaryEntry: entry("mock-diary-3", "mock-dog-3", daysAgo(3),
				"비 오는 날의 실내 놀이",
				"오늘은 비가 와서 산책을 못 갔지만, 집에서 숨바꼭질하고 공 던지기 놀이를 했어요. 생각보다 집에서도 충분히 놀 수 있다는 걸 깨달았네요!",
				pawlog.MoodExcited, []string{"실내놀이", "비오는날"}, 71, "mock-user-3", "루이맘"),
			DogName:       "루이",
			LikesCount:    5,
			CommentsCount: 2,
			IsLikedByUser: true,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed = feed
	s.comments = make(map[string][]Comment, len(feed))
	for _, d := range feed {
		s.comments[d.ID] = []Comment{}
	}
	s.log.Debug("mock feed loaded", map[string]any{"entries": len(feed)})
}
