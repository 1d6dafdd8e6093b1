package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/sakif/travel-blog/internal/apperror"
	"github.com/sakif/travel-blog/internal/model"
	"github.com/sakif/travel-blog/internal/repository"
)

// =========================================================================
// IN-MEMORY FAKES
// =========================================================================
//
// Hand-written fakes of the repository interfaces. Each one stores data in
// memory and can be told to fail with err, so the service tests cover the
// database-failure paths without a database.

var errDatabaseDown = errors.New("connection refused")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeDestinationRepo struct {
	items  []model.Destination
	nextID int
	err    error

	insertCalls int
}

func (f *fakeDestinationRepo) Count(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.items)), nil
}

func (f *fakeDestinationRepo) InsertMany(_ context.Context, destinations []model.Destination) error {
	f.insertCalls++
	if f.err != nil {
		return f.err
	}
	for i := range destinations {
		f.nextID++
		destinations[i].ID = fmt.Sprintf("dest-%d", f.nextID)
		f.items = append(f.items, destinations[i])
	}
	return nil
}

func (f *fakeDestinationRepo) List(_ context.Context, filter repository.DestinationFilter) ([]model.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Destination{}
	for _, d := range f.items {
		if filter.PopularOnly && !d.IsPopular {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDestinationRepo) GetByID(_ context.Context, id string) (*model.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.items {
		if d.ID == id {
			found := d
			return &found, nil
		}
	}
	return nil, apperror.NotFound("destination", id)
}

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]model.User
	nextID int

	getErr    error
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, apperror.Missing("User not found")
	}
	return &u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.Username]; ok {
		return apperror.Conflict("user", user.Username)
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users[user.Username] = *user
	return nil
}

type fakeMessageRepo struct {
	messages map[string]model.Message
	nextID   int
	clock    time.Time
	err      error

	deleted []string
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{
		messages: make(map[string]model.Message),
		clock:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *model.Message) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	f.clock = f.clock.Add(time.Second)
	msg.ID = fmt.Sprintf("msg-%03d", f.nextID)
	msg.CreatedAt = f.clock
	f.messages[msg.ID] = *msg
	return nil
}

func (f *fakeMessageRepo) List(_ context.Context) ([]model.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Message, 0, len(f.messages))
	for _, m := range f.messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeMessageRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	delete(f.messages, id)
	return nil
}
