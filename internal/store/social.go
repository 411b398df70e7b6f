// ABOUTME: Friend roster mutations and the mock activity feed.
// ABOUTME: The feed is synthesized from fixed pools and capped at ten entries.
package store

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/willow/internal/models"
)

// Fixed pools the mock feed draws from. There is no presence backend; this
// simulates a social layer for the gamification loop.
var (
	activityActions = []string{
		"completed Morning Yoga",
		"drank water",
		"finished a 5k run",
		"meditated for 10 mins",
		"ate a healthy lunch",
	}
	activityNames = []string{"Sarah", "Mike", "Jessica", "David", "Emma"}
)

// AddFriend appends a friend. No xp effect.
func (s *Store) AddFriend(f *models.Friend) error {
	return s.mutate(func(doc *Document) {
		doc.Friends = append(doc.Friends, f)
	})
}

// RemoveFriend removes a friend by id.
func (s *Store) RemoveFriend(id uuid.UUID) error {
	return s.mutate(func(doc *Document) {
		for i, f := range doc.Friends {
			if f.ID == id {
				doc.Friends = append(doc.Friends[:i], doc.Friends[i+1:]...)
				return
			}
		}
	})
}

// TriggerFriendActivity synthesizes one random feed entry and prepends it,
// truncating the feed to the most recent ten.
func (s *Store) TriggerFriendActivity() error {
	return s.mutate(func(doc *Document) {
		entry := &models.FriendActivity{
			ID:         uuid.New(),
			FriendID:   "mock-friend",
			FriendName: activityNames[rand.IntN(len(activityNames))],
			Action:     activityActions[rand.IntN(len(activityActions))],
			Timestamp:  time.Now(),
		}
		doc.FriendActivity = append([]*models.FriendActivity{entry}, doc.FriendActivity...)
		if len(doc.FriendActivity) > models.ActivityFeedCap {
			doc.FriendActivity = doc.FriendActivity[:models.ActivityFeedCap]
		}
	})
}

// PingFriends is an extension point for a future notification backend. It
// persists nothing and reports how many friends the message would reach.
func (s *Store) PingFriends(message string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = message
	return len(s.doc.Friends)
}
