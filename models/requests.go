package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// JoinMeetingRequest is the body of the join endpoints.
type JoinMeetingRequest struct {
	SessionID string `json:"session_id" validate:"required,max=128"`
	Audio     bool   `json:"audio"`
	Video     bool   `json:"video"`
	Screen    bool   `json:"screen"`
}

func (r *JoinMeetingRequest) Validate() error {
	r.SessionID = strings.TrimSpace(r.SessionID)
	return validate.Struct(r)
}

func (r *JoinMeetingRequest) Flags() StreamFlags {
	return StreamFlags{Audio: r.Audio, Video: r.Video, Screen: r.Screen}
}

// LeaveMeetingRequest is the body of the leave endpoint.
type LeaveMeetingRequest struct {
	SessionID string `json:"session_id" validate:"required,max=128"`
}

func (r *LeaveMeetingRequest) Validate() error {
	r.SessionID = strings.TrimSpace(r.SessionID)
	return validate.Struct(r)
}

// SyncRoomRequest replaces the membership snapshot of a chat room.
type SyncRoomRequest struct {
	Name    string       `json:"name" validate:"max=200"`
	Members []RoomMember `json:"members" validate:"dive"`
}

func (r *SyncRoomRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validate.Struct(r)
}

// JoinMeetingResponse is returned by the join endpoints. MediaToken and
// MediaURL are set when media tokens are configured.
type JoinMeetingResponse struct {
	Meeting     *Meeting     `json:"meeting"`
	Participant *Participant `json:"participant"`
	MediaToken  string       `json:"media_token,omitempty"`
	MediaURL    string       `json:"media_url,omitempty"`
}

// StreamResponse answers a stream toggle. Enabling a stream carries a fresh
// media token when tokens are configured, since publish rights follow the
// participant's streams.
type StreamResponse struct {
	Capability Capability `json:"capability"`
	On         bool       `json:"on"`
	MediaToken string     `json:"media_token,omitempty"`
}

// StreamRequest is the body of the stream enable/disable endpoints. It names
// the client session whose stream is switched.
type StreamRequest struct {
	SessionID string `json:"session_id" validate:"required,max=128"`
}

func (r *StreamRequest) Validate() error {
	r.SessionID = strings.TrimSpace(r.SessionID)
	return validate.Struct(r)
}
