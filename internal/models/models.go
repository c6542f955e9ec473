package models

import (
	"time"
)

// DefaultImageURL подставляется, если пользователь не указал картинку профиля
const DefaultImageURL = "https://bitsofco.de/content/images/2018/12/broken-1.png"

type User struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	ImageURL  string `db:"image_url"`
}

// FullName - имя для списков и заголовков страниц
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type Post struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UserID    int64     `db:"user_id"`
}

type Tag struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// PostTag - связка многие-ко-многим между постами и тегами,
// композитный ключ (post_id, tag_id), собственного жизненного цикла нет
type PostTag struct {
	PostID int64 `db:"post_id"`
	TagID  int64 `db:"tag_id"`
}
