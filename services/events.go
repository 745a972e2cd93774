//go:generate go run go.uber.org/mock/mockgen -source=events.go -destination=../mocks/mock_event_dispatcher.go -package=mocks

// Package services holds the business logic of meetings.
//
// ParticipantService and MeetingService orchestrate three collaborators:
// the repositories (source of truth), MediaServerService (the remote media
// graph derived from the store) and EventDispatcher (fan-out to chat room
// members). Every mutation of one meeting runs inside that meeting's
// keylock section.
package services

import "github.com/akinalp/huddle/ws"

// EventDispatcher delivers an event to every connection of the given users.
// Delivery is fire-and-forget. *ws.Hub satisfies it.
type EventDispatcher interface {
	Publish(userIDs []string, event ws.Event)
}
