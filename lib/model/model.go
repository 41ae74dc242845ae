// Package model contains the plain records stored by dWeet. The records only
// carry the fields the indexes compare by.
package model

import (
	"fmt"
	"time"
)

// User is a user profile
type User struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	DateJoined time.Time `json:"date_joined"`
}

func (u User) String() string {
	return fmt.Sprintf("User{ID: %d, Name: %q, DateJoined: %s}", u.ID, u.Name, u.DateJoined.Format(time.RFC3339))
}

// Weet is a short message written by a user
type Weet struct {
	ID      int       `json:"id"`
	UserID  int       `json:"user_id"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

func (w Weet) String() string {
	return fmt.Sprintf("Weet{ID: %d, UserID: %d, Date: %s, Message: %q}", w.ID, w.UserID, w.Date.Format(time.RFC3339), w.Message)
}
