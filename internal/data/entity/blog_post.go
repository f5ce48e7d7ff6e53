package entity

type BlogPost struct {
	Base
	Title      string `db:"title"`
	Content    string `db:"content"`
	ImageURL   string `db:"image_url"`
	AuthorID   int64  `db:"author_id"`
	IsApproved bool   `db:"is_approved"`
}
