package main

import (
	"database/sql"

	"github.com/akinalp/huddle/repository"
)

// Repositories holds every store. All of them share one *sql.DB pool.
type Repositories struct {
	Meeting     repository.MeetingRepository
	Participant repository.ParticipantRepository
	Room        repository.RoomRepository
}

func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		Meeting:     repository.NewSQLiteMeetingRepo(conn),
		Participant: repository.NewSQLiteParticipantRepo(conn),
		Room:        repository.NewSQLiteRoomRepo(conn),
	}
}
