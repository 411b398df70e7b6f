// ABOUTME: Protocol catalog mutations: create and exactly-once join.
// ABOUTME: Joining schedules a single synthetic kickoff task for today.
package store

import "github.com/harperreed/willow/internal/models"

// CreateProtocol appends a protocol to the catalog.
func (s *Store) CreateProtocol(p *models.Protocol) error {
	return s.mutate(func(doc *Document) {
		doc.Protocols = append(doc.Protocols, p)
	})
}

// JoinProtocol marks a protocol as joined. Joining twice is a no-op.
//
// When the protocol exists, exactly one synthetic kickoff task is scheduled
// for 08:00 today. The protocol's template task list is not materialized;
// the kickoff task is the only timeline effect of joining.
func (s *Store) JoinProtocol(protocolID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.joined(protocolID) {
		return nil
	}

	if p := s.doc.protocolByID(protocolID); p != nil {
		task := models.NewTimelineTask(
			"Start "+p.Title, models.TaskEvent, models.Today(), "08:00")
		s.doc.Timeline = append(s.doc.Timeline, task)
	}
	s.doc.JoinedProtocols = append(s.doc.JoinedProtocols, protocolID)

	return s.persist()
}

// Joined reports whether the protocol id is in the joined set.
func (s *Store) Joined(protocolID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.joined(protocolID)
}
