package community

import (
	"fmt"
	"time"

	"pawlog/internal/domain/pawlog"
)

// Member es la identidad mínima con la que se comenta en el feed.
type Member struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
}

// PublicDiary es la proyección pública de una entrada del diario.
type PublicDiary struct {
	pawlog.DiaryEntry
	DogName       string `json:"dogName"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
	IsLikedByUser bool   `json:"isLikedByUser"`
}

type Comment struct {
	ID        string    `json:"id"`
	DiaryID   string    `json:"diaryId"`
	UserID    string    `json:"userId"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

var (
	ErrNoCurrentUser = fmt.Errorf("%w: no current community user", pawlog.ErrUnauthenticated)
	ErrEmptyComment  = pawlog.ValidationFailed("content", "comment content is required")
)
