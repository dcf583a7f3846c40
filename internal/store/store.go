// Package store holds the canonical in-memory snapshot of every domain
// collection and mediates all reads and writes. It bootstraps from the
// local cache or seed data, mirrors the authenticated profile from the
// auth bridge, keeps the users collection live through the remote feed,
// and persists every mutation to the local cache and the remote state
// document.
package store

import (
	"context"
	"log"
	"sync"

	"HireHub-backend/internal/cache"
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/remote"
)

// Outcome describes how far a mutation's persistence got. The in-memory
// state is authoritative for the session either way.
type Outcome string

const (
	// CommittedLocal means the write reached the local cache only, either
	// because no remote backend is configured or the remote write has not
	// resolved yet.
	CommittedLocal Outcome = "committed-local"
	// CommittedRemote means the remote state document accepted the write.
	CommittedRemote Outcome = "committed-remote"
	// RemoteFailed means the remote write failed; the local copy stands.
	RemoteFailed Outcome = "remote-failed"
)

// Commit tracks one mutation's persistence. Wait blocks until the
// remote round-trip resolves; the default UI path never calls it.
type Commit struct {
	done    chan struct{}
	outcome Outcome
}

// Wait returns the final outcome once persistence has settled.
func (c *Commit) Wait() Outcome {
	<-c.done
	return c.outcome
}

// Deps are the injected collaborators. Backend may be nil, meaning no
// remote store is configured and the session is local-cache-only.
type Deps struct {
	Cache     *cache.Cache
	Backend   remote.Backend
	SeedUsers []model.User
	SeedJobs  []model.Job
}

// Store is the single source of truth for all domain collections
// visible to the presentation layer.
type Store struct {
	mu sync.RWMutex

	cache     *cache.Cache
	backend   remote.Backend
	seedUsers []model.User
	seedJobs  []model.Job

	users       []model.User
	state       model.StateSnapshot
	currentUser *model.User

	currentPage   string
	selectedJobID string
	history       []string
	searchQuery   string
	filterType    string
	location      string

	stopWatch  func()
	lastCommit *Commit
}

// New constructs an unbootstrapped store.
func New(deps Deps) *Store {
	return &Store{
		cache:       deps.Cache,
		backend:     deps.Backend,
		seedUsers:   deps.SeedUsers,
		seedJobs:    deps.SeedJobs,
		currentPage: "home",
	}
}

// Bootstrap runs the once-per-session load protocol: local cache else
// seed, then the one-shot remote state read, then the live users feed.
// The authenticated-user field always starts empty; only the auth bridge
// fills it in.
func (s *Store) Bootstrap(ctx context.Context) error {
	s.mu.Lock()

	snap, err := s.cache.Load()
	if err != nil {
		log.Printf("Failed to load local state cache: %v", err)
	}
	if snap != nil {
		s.state = *snap
	} else {
		s.state = model.StateSnapshot{
			Jobs:          append([]model.Job(nil), s.seedJobs...),
			Applications:  []model.Application{},
			Threads:       []model.Thread{},
			Announcements: []model.Announcement{},
		}
	}
	if s.state.Theme == "" {
		s.state.Theme = "dark"
	}
	s.users = append([]model.User(nil), s.seedUsers...)
	s.currentUser = nil
	s.mu.Unlock()

	if s.backend == nil {
		return nil
	}

	if err := s.loadRemoteState(ctx); err != nil {
		// Remote trouble never blocks the session; memory and the local
		// cache stay authoritative.
		log.Printf("Failed to load state from remote store: %v", err)
	}

	stop, err := s.backend.WatchUsers(ctx, s.overlayUsers)
	if err != nil {
		log.Printf("Failed to subscribe to users collection: %v", err)
		return nil
	}
	s.stopWatch = stop
	return nil
}

// Close tears down the live users subscription. In-flight remote writes
// are not cancelled and may resolve afterwards.
func (s *Store) Close() {
	if s.stopWatch != nil {
		s.stopWatch()
		s.stopWatch = nil
	}
}

// loadRemoteState performs the one-shot read of the singleton state
// document, initializing it from the bootstrap snapshot when absent.
func (s *Store) loadRemoteState(ctx context.Context) error {
	remoteSnap, ok, err := s.backend.LoadState(ctx)
	if err != nil {
		return err
	}

	if !ok {
		s.mu.RLock()
		boot := s.state
		s.mu.RUnlock()
		return s.backend.InitState(ctx, boot)
	}

	// Remote values win where present; in-memory seed values remain the
	// fallback for collections absent remotely.
	s.mu.Lock()
	defer s.mu.Unlock()
	if remoteSnap.Jobs != nil {
		s.state.Jobs = remoteSnap.Jobs
	}
	if remoteSnap.Applications != nil {
		s.state.Applications = remoteSnap.Applications
	}
	if remoteSnap.Threads != nil {
		s.state.Threads = remoteSnap.Threads
	}
	if remoteSnap.Announcements != nil {
		s.state.Announcements = remoteSnap.Announcements
	}
	if remoteSnap.Theme != "" {
		s.state.Theme = remoteSnap.Theme
	}
	return nil
}

// overlayUsers recomputes the user list from the live feed: seed users
// first, then every remote user keyed by id, so remote records fully
// supersede matching seeds and demo accounts survive when no remote
// record exists.
func (s *Store) overlayUsers(remoteUsers []model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]int, len(s.seedUsers))
	merged := make([]model.User, 0, len(s.seedUsers)+len(remoteUsers))
	for _, su := range s.seedUsers {
		seen[su.ID] = len(merged)
		merged = append(merged, su)
	}
	for _, ru := range remoteUsers {
		if i, ok := seen[ru.ID]; ok {
			merged[i] = ru
			continue
		}
		seen[ru.ID] = len(merged)
		merged = append(merged, ru)
	}
	s.users = merged
}

// persist writes the touched slices to the local cache synchronously
// (best-effort) and merge-writes them to the remote state document in
// the background. Callers never see persistence failures; the returned
// Commit makes the final outcome inspectable.
func (s *Store) persist(update model.StateUpdate) *Commit {
	if err := s.cache.Save(update); err != nil {
		log.Printf("Failed to save state to local cache: %v", err)
	}

	commit := &Commit{done: make(chan struct{})}
	if s.backend == nil {
		commit.outcome = CommittedLocal
		close(commit.done)
	} else {
		go func() {
			if err := s.backend.SaveState(context.Background(), update); err != nil {
				log.Printf("Failed to save state to remote store: %v", err)
				commit.outcome = RemoteFailed
			} else {
				commit.outcome = CommittedRemote
			}
			close(commit.done)
		}()
	}

	s.mu.Lock()
	s.lastCommit = commit
	s.mu.Unlock()
	return commit
}

// LastCommit returns the persistence record of the most recent
// mutation, or nil before the first one.
func (s *Store) LastCommit() *Commit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastCommit
}

// SetCurrentUser mirrors the authenticated profile supplied by the auth
// bridge. nil means signed out.
func (s *Store) SetCurrentUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = u
}

// CurrentUser returns the mirrored authenticated profile, or nil.
func (s *Store) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// Navigate changes the current view identifier, records the selected
// job when given, and pushes a history entry.
func (s *Store) Navigate(page string, jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
	if jobID != "" {
		s.selectedJobID = jobID
	}
	s.history = append(s.history, page)
}

// Back pops the history stack, restoring the previous view identifier.
func (s *Store) Back() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.history); n > 1 {
		s.history = s.history[:n-1]
		s.currentPage = s.history[n-2]
	}
	return s.currentPage
}

// CurrentPage returns the current view identifier.
func (s *Store) CurrentPage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// SelectedJobID returns the job the UI last navigated to.
func (s *Store) SelectedJobID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedJobID
}

// SetSearchQuery stores the browse-page search text.
func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = q
}

// SetFilterType stores the employment-type filter.
func (s *Store) SetFilterType(f string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterType = f
}

// SetLocation stores the location filter.
func (s *Store) SetLocation(l string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = l
}

// ToggleTheme flips between light and dark and persists the choice.
func (s *Store) ToggleTheme() string {
	s.mu.Lock()
	if s.state.Theme == "light" {
		s.state.Theme = "dark"
	} else {
		s.state.Theme = "light"
	}
	theme := s.state.Theme
	s.mu.Unlock()

	s.persist(model.StateUpdate{Theme: theme})
	return theme
}

// Theme returns the current theme.
func (s *Store) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Theme
}
