// Package ws manages client WebSocket connections and real-time event
// delivery.
//
//   - Hub: tracks every connection per user and fans events out
//   - Client: one connection (one browser tab or device session)
//   - Event: the frame format in both directions
//
// Meeting events flow: service mutates the store → EventDispatcher.Publish
// with the chat room's member ids → Hub queues the frame on every
// connection of those users → each Client's WritePump writes it out.
package ws

import "github.com/akinalp/huddle/models"

// Event is one frame on the wire. Seq increases per outbound event so
// clients can detect gaps.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// Client → Server
const (
	OpHeartbeat = "heartbeat" // sent every 30s by the client
)

// Server → Client
const (
	OpReady        = "ready"
	OpHeartbeatAck = "heartbeat_ack"

	OpMeetingParticipantJoin   = "meeting_participant_join"
	OpMeetingParticipantLeave  = "meeting_participant_leave"
	OpMeetingParticipantUpdate = "meeting_participant_update" // stream flags changed
	OpMeetingEnd               = "meeting_end"
)

// ReadyData is sent once after the connection is accepted. SessionID is the
// id this connection must use in meeting join requests; meeting
// participations of that session are removed when the connection closes.
type ReadyData struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

// ParticipantEventData is the payload of the meeting_participant_* events.
type ParticipantEventData struct {
	MeetingID   string              `json:"meeting_id"`
	RoomID      string              `json:"room_id"`
	Participant *models.Participant `json:"participant"`
}

// MeetingEndData is the payload of meeting_end.
type MeetingEndData struct {
	MeetingID string `json:"meeting_id"`
	RoomID    string `json:"room_id"`
}
