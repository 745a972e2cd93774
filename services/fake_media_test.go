package services_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/akinalp/huddle/pkg"
	"github.com/akinalp/huddle/services"
)

// fakeMedia is an in-memory media backend. It keeps the resource graph so
// tests can assert what is alive after each operation, and it can be told
// to fail a given operation.
type fakeMedia struct {
	mu     sync.Mutex
	nextID int64

	conns      map[int64]map[int64]services.MediaPlugin // connection → handle → plugin
	audioRooms map[int64]bool
	videoRooms map[int64]bool
	members    map[int64]int64 // handle → room it joined

	calls  []string
	failOn map[string]bool
}

func newFakeMedia() *fakeMedia {
	return &fakeMedia{
		nextID:     100,
		conns:      make(map[int64]map[int64]services.MediaPlugin),
		audioRooms: make(map[int64]bool),
		videoRooms: make(map[int64]bool),
		members:    make(map[int64]int64),
		failOn:     make(map[string]bool),
	}
}

func (f *fakeMedia) fail(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOn[op] = true
}

// record must be called with f.mu held.
func (f *fakeMedia) record(op string) error {
	f.calls = append(f.calls, op)
	if f.failOn[op] {
		return fmt.Errorf("%w: %s: injected failure", pkg.ErrDependencyUnavailable, op)
	}
	return nil
}

// restart drops every connection and room, as a gateway restart does.
func (f *fakeMedia) restart() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conns = make(map[int64]map[int64]services.MediaPlugin)
	f.audioRooms = make(map[int64]bool)
	f.videoRooms = make(map[int64]bool)
	f.members = make(map[int64]int64)
}

func (f *fakeMedia) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeMedia) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeMedia) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeMedia) Connections() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.conns)
}

func (f *fakeMedia) Handles() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, hs := range f.conns {
		n += len(hs)
	}
	return n
}

func (f *fakeMedia) Rooms() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.audioRooms) + len(f.videoRooms)
}

// Empty reports whether nothing at all is left on the backend.
func (f *fakeMedia) Empty() bool {
	return f.Connections() == 0 && f.Rooms() == 0
}

func (f *fakeMedia) OpenConnection(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("open_connection"); err != nil {
		return 0, err
	}
	id := f.id()
	f.conns[id] = make(map[int64]services.MediaPlugin)
	return id, nil
}

func (f *fakeMedia) CloseConnection(ctx context.Context, connID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("close_connection"); err != nil {
		return err
	}
	for h := range f.conns[connID] {
		delete(f.members, h)
	}
	delete(f.conns, connID)
	return nil
}

func (f *fakeMedia) AttachHandle(ctx context.Context, connID int64, plugin services.MediaPlugin) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("attach_" + pluginName(plugin)); err != nil {
		return 0, err
	}
	hs, ok := f.conns[connID]
	if !ok {
		return 0, fmt.Errorf("%w: no such connection %d", pkg.ErrDependencyUnavailable, connID)
	}
	id := f.id()
	hs[id] = plugin
	return id, nil
}

func (f *fakeMedia) DetachHandle(ctx context.Context, connID, handleID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("detach"); err != nil {
		return err
	}
	delete(f.conns[connID], handleID)
	delete(f.members, handleID)
	return nil
}

func (f *fakeMedia) CreateAudioRoom(ctx context.Context, connID, handleID int64, description string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("create_audio_room"); err != nil {
		return 0, err
	}
	id := f.id()
	f.audioRooms[id] = true
	return id, nil
}

func (f *fakeMedia) DestroyAudioRoom(ctx context.Context, connID, handleID, roomID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("destroy_audio_room"); err != nil {
		return err
	}
	delete(f.audioRooms, roomID)
	return nil
}

func (f *fakeMedia) CreateVideoRoom(ctx context.Context, connID, handleID int64, description string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("create_video_room"); err != nil {
		return 0, err
	}
	id := f.id()
	f.videoRooms[id] = true
	return id, nil
}

func (f *fakeMedia) DestroyVideoRoom(ctx context.Context, connID, handleID, roomID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("destroy_video_room"); err != nil {
		return err
	}
	delete(f.videoRooms, roomID)
	return nil
}

func (f *fakeMedia) JoinAudioRoom(ctx context.Context, connID, handleID, roomID int64, display string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("join_audio_room"); err != nil {
		return err
	}
	if !f.audioRooms[roomID] {
		return fmt.Errorf("%w: %w: no such audio room %d", pkg.ErrDependencyUnavailable, services.ErrMediaRoomGone, roomID)
	}
	f.members[handleID] = roomID
	return nil
}

func (f *fakeMedia) JoinVideoRoom(ctx context.Context, connID, handleID, roomID int64, role services.VideoRole, display string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("join_video_room_" + string(role)); err != nil {
		return err
	}
	if !f.videoRooms[roomID] {
		return fmt.Errorf("%w: %w: no such video room %d", pkg.ErrDependencyUnavailable, services.ErrMediaRoomGone, roomID)
	}
	f.members[handleID] = roomID
	return nil
}

func (f *fakeMedia) LeaveRoom(ctx context.Context, connID, handleID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("leave_room"); err != nil {
		return err
	}
	delete(f.members, handleID)
	return nil
}

func pluginName(p services.MediaPlugin) string {
	if p == services.PluginAudio {
		return "audio"
	}
	return "video"
}
