// internal/model/user.go
package model

import "time"

type User struct {
    ID           int       `db:"id" json:"id"`
    Email        string    `db:"email" json:"email"`
    PasswordHash string    `db:"password_hash" json:"-"`
    Provider     string    `db:"provider" json:"provider"` // password, google
    CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
