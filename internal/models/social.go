// ABOUTME: Friend and FriendActivity models for the social layer.
// ABOUTME: Presence is static mock data; the activity feed is transient.
package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendStatus is a friend's presence indicator.
type FriendStatus string

const (
	StatusOnline  FriendStatus = "online"
	StatusOffline FriendStatus = "offline"
	StatusBusy    FriendStatus = "busy"
)

// IsValidFriendStatus checks if a string is a valid presence status.
func IsValidFriendStatus(s string) bool {
	switch FriendStatus(s) {
	case StatusOnline, StatusOffline, StatusBusy:
		return true
	}
	return false
}

// Friend is a read-mostly contact record. There is no real presence backend.
type Friend struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Avatar     string       `json:"avatar,omitempty"`
	Status     FriendStatus `json:"status"`
	LastActive string       `json:"last_active,omitempty"`
}

// NewFriend creates a friend record with generated UUID.
func NewFriend(name string) *Friend {
	return &Friend{
		ID:     uuid.New(),
		Name:   name,
		Status: StatusOffline,
	}
}

// WithAvatar sets the avatar glyph.
func (f *Friend) WithAvatar(glyph string) *Friend {
	f.Avatar = glyph
	return f
}

// WithStatus sets the presence status.
func (f *Friend) WithStatus(s FriendStatus) *Friend {
	f.Status = s
	return f
}

// FriendActivity is one entry of the transient activity feed.
type FriendActivity struct {
	ID         uuid.UUID `json:"id"`
	FriendID   string    `json:"friend_id"`
	FriendName string    `json:"friend_name"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
}

// ActivityFeedCap is the number of feed entries retained.
const ActivityFeedCap = 10
