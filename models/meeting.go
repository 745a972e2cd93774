// Package models holds the domain types shared by every layer.
//
// A Meeting is the live call of one chat room. Media identifiers (gateway
// session and handle ids, media room ids) are internal and never serialized
// to API clients.
package models

import (
	"encoding/json"
	"time"
)

// MeetingKind decides what happens when the last participant leaves.
type MeetingKind string

const (
	// MeetingTransient meetings are deleted when their last participant leaves.
	MeetingTransient MeetingKind = "transient"
	// MeetingPersistent meetings survive with zero participants.
	MeetingPersistent MeetingKind = "persistent"
)

func (k MeetingKind) Valid() bool {
	return k == MeetingTransient || k == MeetingPersistent
}

// MeetingMediaResources is the shared resource bundle of a live meeting on
// the media gateway: one gateway session holding an audio bridge handle and
// a video room handle, plus the rooms created through them.
type MeetingMediaResources struct {
	ConnectionID    int64
	AudioRoomHandle int64
	AudioRoomID     int64
	VideoRoomHandle int64
	VideoRoomID     int64
}

type Meeting struct {
	ID           string                 `json:"id"`
	RoomID       string                 `json:"room_id"`
	Kind         MeetingKind            `json:"kind"`
	Media        *MeetingMediaResources `json:"-"`
	Participants []Participant          `json:"participants"`
	CreatedAt    time.Time              `json:"created_at"`
}

// IsLive reports whether the meeting currently holds media resources.
func (m *Meeting) IsLive() bool {
	return m.Media != nil
}

// MarshalJSON adds the derived "live" flag.
func (m Meeting) MarshalJSON() ([]byte, error) {
	type meeting Meeting
	if m.Participants == nil {
		m.Participants = []Participant{}
	}
	return json.Marshal(struct {
		meeting
		Live bool `json:"live"`
	}{meeting(m), m.Media != nil})
}
