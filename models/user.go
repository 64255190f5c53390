package models

import "time"

// User is a staff account allowed to sign in to the console.
type User struct {
	ID           string    `json:"id" bson:"_id" gorm:"primaryKey;size:64"`
	Email        string    `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"passwordHash" bson:"passwordHash" gorm:"not null"`
	Disabled     bool      `json:"disabled" bson:"disabled"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// Session is created by a successful sign-in and removed by sign-out.
type Session struct {
	ID        string    `json:"id" bson:"_id" gorm:"primaryKey;size:64"`
	UserID    string    `json:"userId" bson:"userId" gorm:"index;size:64"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
