package models

import "time"

type contextKey string

const UserContextKey contextKey = "user"

type User struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	PassHash  []byte    `json:"-"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
