package entities

import "time"

type User struct {
	ID        string    `db:"id"`
	Login     string    `db:"login"`
	PassHash  []byte    `db:"pass_hash"`
	IsAdmin   bool      `db:"is_admin"`
	CreatedAt time.Time `db:"created_at"`
}
