package remote

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"HireHub-backend/internal/model"
)

// UserEventsChannel carries user ids whose documents changed, so every
// instance re-reads the collection and pushes it to its watchers.
const UserEventsChannel = "hirehub:users"

// NewRedisClient parses REDIS_URL (or the given override) and verifies
// connectivity. An empty URL returns nil: user events then stay
// in-process only.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		redisURL = os.Getenv("REDIS_URL")
	}
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// WatchUsers registers a live feed over the users collection. The
// handler fires once with the current list before WatchUsers returns,
// then again after every change this instance observes.
func (s *DocStore) WatchUsers(ctx context.Context, handler func([]model.User)) (func(), error) {
	users, err := s.Users(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = handler
	s.mu.Unlock()

	handler(users)

	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}, nil
}

// notifyUserChange pushes the refreshed user list to local watchers and
// publishes the event for other instances. Failures are logged only:
// callers already applied their write.
func (s *DocStore) notifyUserChange(ctx context.Context, userID string) {
	s.fanOut(ctx)

	if s.rdb != nil {
		if err := s.rdb.Publish(ctx, UserEventsChannel, userID).Err(); err != nil {
			log.Printf("Failed to publish user event for %s: %v", userID, err)
		}
	}
}

func (s *DocStore) fanOut(ctx context.Context) {
	users, err := s.Users(ctx)
	if err != nil {
		log.Printf("Failed to read users collection for watchers: %v", err)
		return
	}

	s.mu.Lock()
	handlers := make([]func([]model.User), 0, len(s.watchers))
	for _, h := range s.watchers {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, h := range handlers {
		h(users)
	}
}

// subscribeUserEvents feeds cross-instance events into the same watcher
// path. Our own publishes come back too; the overlay merge downstream is
// idempotent so the duplicate delivery is harmless.
func (s *DocStore) subscribeUserEvents(ctx context.Context) {
	sub := s.rdb.Subscribe(ctx, UserEventsChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, open := <-ch:
			if !open {
				return
			}
			_ = msg
			s.fanOut(ctx)
		}
	}
}
