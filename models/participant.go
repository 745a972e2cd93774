package models

import (
	"fmt"
	"time"
)

// Capability is a stream a participant can switch on or off.
type Capability string

const (
	CapabilityAudio  Capability = "audio"
	CapabilityVideo  Capability = "video"
	CapabilityScreen Capability = "screen"
)

func ParseCapability(s string) (Capability, error) {
	switch c := Capability(s); c {
	case CapabilityAudio, CapabilityVideo, CapabilityScreen:
		return c, nil
	}
	return "", fmt.Errorf("unknown capability %q", s)
}

// StreamFlags is the requested or current on/off state of each capability.
type StreamFlags struct {
	Audio  bool `json:"audio"`
	Video  bool `json:"video"`
	Screen bool `json:"screen"`
}

// ParticipantMediaSession is the per-participant resource bundle: a gateway
// session of its own and one optional handle per stream direction.
// A nil handle means it is not allocated.
type ParticipantMediaSession struct {
	ConnectionID   int64
	AudioHandle    *int64
	VideoOutHandle *int64 // publisher in the video room
	VideoInHandle  *int64 // subscriber in the video room
	ScreenHandle   *int64
}

// Handles returns every allocated handle id.
func (s *ParticipantMediaSession) Handles() []int64 {
	var out []int64
	for _, h := range []*int64{s.AudioHandle, s.VideoOutHandle, s.VideoInHandle, s.ScreenHandle} {
		if h != nil {
			out = append(out, *h)
		}
	}
	return out
}

// Participant is one (user, session) pair in a meeting. The same user may be
// in a meeting from several sessions at once.
type Participant struct {
	MeetingID string                   `json:"meeting_id"`
	UserID    string                   `json:"user_id"`
	SessionID string                   `json:"session_id"`
	AudioOn   bool                     `json:"audio_on"`
	VideoOn   bool                     `json:"video_on"`
	ScreenOn  bool                     `json:"screen_on"`
	Media     *ParticipantMediaSession `json:"-"`
	JoinedAt  time.Time                `json:"joined_at"`
}

func (p *Participant) StreamOn(c Capability) bool {
	switch c {
	case CapabilityAudio:
		return p.AudioOn
	case CapabilityVideo:
		return p.VideoOn
	case CapabilityScreen:
		return p.ScreenOn
	}
	return false
}

func (p *Participant) SetStreamOn(c Capability, on bool) {
	switch c {
	case CapabilityAudio:
		p.AudioOn = on
	case CapabilityVideo:
		p.VideoOn = on
	case CapabilityScreen:
		p.ScreenOn = on
	}
}

func (p *Participant) Flags() StreamFlags {
	return StreamFlags{Audio: p.AudioOn, Video: p.VideoOn, Screen: p.ScreenOn}
}
