package models

// Membership is the answer of the room collaborator for one (room, user).
type Membership struct {
	IsMember bool `json:"is_member"`
	IsOwner  bool `json:"is_owner"`
}

// RoomMember is one entry of a chat room membership snapshot.
type RoomMember struct {
	UserID  string `json:"user_id" validate:"required,max=128"`
	IsOwner bool   `json:"is_owner"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}

// ChatRoom is the local view of a chat room owned by the room service.
type ChatRoom struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	MeetingID *string      `json:"meeting_id"`
	Members   []RoomMember `json:"members,omitempty"`
}
