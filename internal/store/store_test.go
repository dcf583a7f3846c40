package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"HireHub-backend/internal/cache"
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/remote"
)

// fakeBackend is an in-memory remote.Backend for exercising the
// bootstrap, overlay, and persistence paths without a database.
type fakeBackend struct {
	mu       sync.Mutex
	state    *model.StateSnapshot
	users    []model.User
	watchers []func([]model.User)
	saves    []model.StateUpdate
	saveErr  error
}

var _ remote.Backend = (*fakeBackend)(nil)

func (f *fakeBackend) LoadState(ctx context.Context) (*model.StateSnapshot, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == nil {
		return nil, false, nil
	}
	snap := *f.state
	return &snap, true, nil
}

func (f *fakeBackend) InitState(ctx context.Context, snap model.StateSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = &snap
	return nil
}

func (f *fakeBackend) SaveState(ctx context.Context, update model.StateUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.state == nil {
		f.state = &model.StateSnapshot{}
	}
	f.state.Apply(update)
	f.saves = append(f.saves, update)
	return nil
}

func (f *fakeBackend) PutUser(ctx context.Context, user model.User) error {
	f.mu.Lock()
	replaced := false
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			replaced = true
		}
	}
	if !replaced {
		f.users = append(f.users, user)
	}
	f.mu.Unlock()
	f.notify()
	return nil
}

func (f *fakeBackend) DeleteUser(ctx context.Context, id string) error {
	f.mu.Lock()
	kept := f.users[:0]
	for _, u := range f.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	f.users = kept
	f.mu.Unlock()
	f.notify()
	return nil
}

func (f *fakeBackend) Users(ctx context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.User(nil), f.users...), nil
}

func (f *fakeBackend) WatchUsers(ctx context.Context, handler func([]model.User)) (func(), error) {
	f.mu.Lock()
	f.watchers = append(f.watchers, handler)
	users := append([]model.User(nil), f.users...)
	f.mu.Unlock()
	handler(users)
	return func() {}, nil
}

func (f *fakeBackend) notify() {
	f.mu.Lock()
	users := append([]model.User(nil), f.users...)
	handlers := append(([]func([]model.User))(nil), f.watchers...)
	f.mu.Unlock()
	for _, h := range handlers {
		h(users)
	}
}

func (f *fakeBackend) SetPassword(ctx context.Context, id, hash string) error { return nil }

func (f *fakeBackend) UserByEmail(ctx context.Context, email string) (model.User, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, "", nil
		}
	}
	return model.User{}, "", remote.ErrUserNotFound
}

func (f *fakeBackend) UserByID(ctx context.Context, id string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, remote.ErrUserNotFound
}

func (f *fakeBackend) AddContactMessage(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	return msg, nil
}
func (f *fakeBackend) ContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return nil, nil
}
func (f *fakeBackend) MarkContactMessageRead(ctx context.Context, id uint) error { return nil }
func (f *fakeBackend) ReplyContactMessage(ctx context.Context, id uint, reply string) error {
	return nil
}

/* ---------------- fixtures ---------------- */

func testStudent() model.User {
	return model.User{
		ID: "stu-1", Name: "Alice Nguyen", Email: "alice@example.com",
		Role: model.RoleStudent, Student: &model.StudentProfile{Skills: []string{"Go"}},
	}
}

func testEmployer() model.User {
	return model.User{
		ID: "emp-1", Name: "Bob Somsak", Email: "bob@technova.com",
		Role: model.RoleEmployer,
		Employer: &model.EmployerProfile{
			CompanyName: "TechNova", CompanyLogo: "🏢", IsApproved: true,
		},
	}
}

func testAdmin() model.User {
	return model.User{ID: "adm-1", Name: "Site Admin", Email: "admin@example.com", Role: model.RoleAdmin}
}

func seedJob() model.Job {
	return model.Job{
		ID: "job-seed", EmployerID: "emp-1", CompanyName: "TechNova",
		Title: "Backend Engineer", Type: model.JobTypeFullTime,
		Status: model.JobStatusActive, PostedDate: time.Now(),
	}
}

// newLocalStore bootstraps a store with no remote backend and a cache
// file under the test's temp dir.
func newLocalStore(t *testing.T) *Store {
	t.Helper()
	s := New(Deps{
		Cache:     cache.New(filepath.Join(t.TempDir(), "state.json")),
		SeedUsers: []model.User{testAdmin(), testEmployer(), testStudent()},
		SeedJobs:  []model.Job{seedJob()},
	})
	if err := s.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	return s
}

func newRemoteStore(t *testing.T, backend *fakeBackend) *Store {
	t.Helper()
	s := New(Deps{
		Cache:     cache.New(filepath.Join(t.TempDir(), "state.json")),
		Backend:   backend,
		SeedUsers: []model.User{testAdmin(), testEmployer(), testStudent()},
		SeedJobs:  []model.Job{seedJob()},
	})
	if err := s.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	return s
}

/* ---------------- bootstrap ---------------- */

func TestBootstrapFromSeed(t *testing.T) {
	s := newLocalStore(t)

	assert.Len(t, s.Jobs(), 1)
	assert.Len(t, s.Users(), 3)
	assert.Empty(t, s.Applications())
	assert.Equal(t, "dark", s.Theme(), "theme must default to dark")
	assert.Nil(t, s.CurrentUser(), "sessions always start signed out")
}

func TestBootstrapPrefersCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	c := cache.New(path)
	err := c.Save(model.StateUpdate{
		Jobs:  []model.Job{{ID: "cached-job", Title: "Cached Role"}},
		Theme: "light",
	})
	assert.NoError(t, err)

	s := New(Deps{Cache: c, SeedJobs: []model.Job{seedJob()}})
	assert.NoError(t, s.Bootstrap(context.Background()))

	jobs := s.Jobs()
	assert.Len(t, jobs, 1)
	assert.Equal(t, "cached-job", jobs[0].ID, "cached snapshot must win over seed data")
	assert.Equal(t, "light", s.Theme())
}

func TestPostedJobSurvivesRebootstrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s := New(Deps{Cache: cache.New(path), SeedJobs: []model.Job{seedJob()}})
	assert.NoError(t, s.Bootstrap(context.Background()))
	posted := s.PostJob(testEmployer(), model.EditableJobInfo{
		Title: "Platform Engineer", Location: "Bangkok", Type: model.JobTypeFullTime,
	})

	// fresh store, same cache file
	s2 := New(Deps{Cache: cache.New(path), SeedJobs: []model.Job{seedJob()}})
	assert.NoError(t, s2.Bootstrap(context.Background()))

	got, ok := s2.JobByID(posted.ID)
	assert.True(t, ok, "posted job must come back from the cache")
	assert.Equal(t, posted.Title, got.Title)
	assert.Equal(t, posted.Location, got.Location)
	assert.Equal(t, posted.EmployerID, got.EmployerID)
}

func TestBootstrapInitializesRemoteState(t *testing.T) {
	backend := &fakeBackend{}
	s := newRemoteStore(t, backend)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.NotNil(t, backend.state, "a missing remote document must be created from the bootstrap snapshot")
	assert.Len(t, backend.state.Jobs, 1)
	_ = s
}

func TestBootstrapRemoteStateWins(t *testing.T) {
	backend := &fakeBackend{
		state: &model.StateSnapshot{
			Jobs:  []model.Job{{ID: "remote-job", Title: "Remote Role"}},
			Theme: "light",
		},
	}
	s := newRemoteStore(t, backend)

	jobs := s.Jobs()
	assert.Len(t, jobs, 1)
	assert.Equal(t, "remote-job", jobs[0].ID)
	assert.Equal(t, "light", s.Theme())
}

/* ---------------- users overlay ---------------- */

func TestOverlayUsersMerge(t *testing.T) {
	renamed := testEmployer()
	renamed.Name = "Bob S. (remote)"
	backend := &fakeBackend{
		users: []model.User{
			renamed,
			{ID: "remote-only", Name: "Remote Only", Email: "ro@example.com", Role: model.RoleStudent},
		},
	}
	s := newRemoteStore(t, backend)

	users := s.Users()
	assert.Len(t, users, 4, "3 seeds with one superseded, plus one remote-only")

	byID := map[string]model.User{}
	for _, u := range users {
		byID[u.ID] = u
	}
	assert.Equal(t, "Bob S. (remote)", byID["emp-1"].Name, "remote record must supersede the matching seed")
	assert.Contains(t, byID, "remote-only")
	assert.Contains(t, byID, "stu-1", "seed-only accounts must survive the overlay")

	// Seeds keep their original positions.
	assert.Equal(t, "adm-1", users[0].ID)
	assert.Equal(t, "emp-1", users[1].ID)
}

func TestUpdateUserRoundTripsThroughFeed(t *testing.T) {
	backend := &fakeBackend{}
	s := newRemoteStore(t, backend)

	edited := testStudent()
	edited.Name = "Alice Edited"
	s.UpdateUser(edited)

	assert.Eventually(t, func() bool {
		u, ok := s.UserByID("stu-1")
		return ok && u.Name == "Alice Edited"
	}, time.Second, 5*time.Millisecond, "profile edit must come back through the live feed")
}

func TestUpdateUserLocalOnly(t *testing.T) {
	s := newLocalStore(t)

	edited := testStudent()
	edited.Name = "Alice Edited"
	s.UpdateUser(edited)

	u, ok := s.UserByID("stu-1")
	assert.True(t, ok)
	assert.Equal(t, "Alice Edited", u.Name)
}

/* ---------------- jobs ---------------- */

func TestPostJobStampsFields(t *testing.T) {
	s := newLocalStore(t)

	job := s.PostJob(testEmployer(), model.EditableJobInfo{Title: "Intern", Type: model.JobTypeInternship})

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "emp-1", job.EmployerID)
	assert.Equal(t, "TechNova", job.CompanyName)
	assert.Equal(t, "🏢", job.CompanyLogo)
	assert.Equal(t, model.JobStatusActive, job.Status, "status defaults to active")
	assert.Zero(t, job.ApplicantCount)

	jobs := s.Jobs()
	assert.Len(t, jobs, 2)
	assert.Equal(t, job.ID, jobs[0].ID, "new postings go to the front")
}

func TestDeleteJobCascadesApplications(t *testing.T) {
	s := newLocalStore(t)
	job := s.PostJob(testEmployer(), model.EditableJobInfo{Title: "Intern"})

	assert.True(t, s.ApplyForJob(testStudent(), job.ID, "hello"))
	assert.Len(t, s.Applications(), 1)

	s.DeleteJob(job.ID)

	assert.Len(t, s.Jobs(), 1, "only the seed job remains")
	assert.Empty(t, s.Applications(), "applications for the deleted job must go with it")
}

/* ---------------- applications ---------------- */

func TestApplyForJobOncePerStudent(t *testing.T) {
	s := newLocalStore(t)
	job := s.PostJob(testEmployer(), model.EditableJobInfo{Title: "Intern"})

	assert.True(t, s.ApplyForJob(testStudent(), job.ID, "first"))
	assert.False(t, s.ApplyForJob(testStudent(), job.ID, "second"), "duplicate application must be rejected")

	apps := s.Applications()
	assert.Len(t, apps, 1)
	assert.Equal(t, model.ApplicationStatusPending, apps[0].Status)
	assert.Equal(t, "first", apps[0].CoverLetter)

	got, ok := s.JobByID(job.ID)
	assert.True(t, ok)
	assert.Equal(t, 1, got.ApplicantCount, "applicant count increments exactly once")
}

func TestApplicantCountTracksDistinctApplicants(t *testing.T) {
	s := newLocalStore(t)
	job := s.PostJob(testEmployer(), model.EditableJobInfo{Title: "Intern"})

	assert.True(t, s.ApplyForJob(testStudent(), job.ID, ""))
	assert.True(t, s.ApplyForJob(testAdmin(), job.ID, ""), "admins may apply like students")

	got, ok := s.JobByID(job.ID)
	assert.True(t, ok)
	assert.Equal(t, 2, got.ApplicantCount)
	assert.Len(t, s.ApplicationsForJob(job.ID), 2)
}

func TestApplyForJobRejectsEmployers(t *testing.T) {
	s := newLocalStore(t)
	job := s.PostJob(testEmployer(), model.EditableJobInfo{Title: "Intern"})

	assert.False(t, s.ApplyForJob(testEmployer(), job.ID, ""))
	assert.Empty(t, s.Applications())
}

func TestUpdateApplicationStatus(t *testing.T) {
	s := newLocalStore(t)
	job := s.PostJob(testEmployer(), model.EditableJobInfo{Title: "Intern"})
	s.ApplyForJob(testStudent(), job.ID, "")

	id := s.Applications()[0].ID
	s.UpdateApplicationStatus(id, model.ApplicationStatusShortlisted)

	assert.Equal(t, model.ApplicationStatusShortlisted, s.Applications()[0].Status)
}

/* ---------------- user cascade ---------------- */

func TestDeleteUserCascades(t *testing.T) {
	s := newLocalStore(t)
	job := s.PostJob(testEmployer(), model.EditableJobInfo{Title: "Intern"})
	s.ApplyForJob(testStudent(), job.ID, "")

	s.DeleteUser("emp-1")

	_, ok := s.UserByID("emp-1")
	assert.False(t, ok)
	assert.Empty(t, s.JobsForEmployer("emp-1"))
	for _, j := range s.Jobs() {
		assert.NotEqual(t, "emp-1", j.EmployerID)
	}
	assert.Empty(t, s.Applications(), "applications for the employer's jobs vanish with the jobs")
}

func TestRejectEmployerKeepsRemoteRecordUnapproved(t *testing.T) {
	backend := &fakeBackend{users: []model.User{testEmployer()}}
	s := newRemoteStore(t, backend)

	s.RejectEmployer("emp-1")

	assert.Empty(t, s.JobsForEmployer("emp-1"), "rejected employer's jobs are removed")

	assert.Eventually(t, func() bool {
		u, err := backend.UserByID(context.Background(), "emp-1")
		return err == nil && u.Employer != nil && !u.Employer.IsApproved
	}, time.Second, 5*time.Millisecond, "remote record must be kept with the approval cleared")
}

func TestApproveEmployer(t *testing.T) {
	s := newLocalStore(t)
	pending := testEmployer()
	pending.ID = "emp-2"
	pending.Employer.IsApproved = false
	// emp-2 is not a seed; feed it through the overlay path.
	s.overlayUsers([]model.User{pending})

	s.ApproveEmployer("emp-2")

	u, ok := s.UserByID("emp-2")
	assert.True(t, ok)
	assert.True(t, u.Approved())
}

/* ---------------- persistence outcome ---------------- */

func TestPersistOutcomeLocalOnly(t *testing.T) {
	s := newLocalStore(t)

	s.ToggleTheme()

	commit := s.LastCommit()
	assert.NotNil(t, commit)
	assert.Equal(t, CommittedLocal, commit.Wait())
}

func TestPersistOutcomeRemote(t *testing.T) {
	backend := &fakeBackend{}
	s := newRemoteStore(t, backend)

	s.PostJob(testEmployer(), model.EditableJobInfo{Title: "Intern"})

	assert.Equal(t, CommittedRemote, s.LastCommit().Wait())

	backend.mu.Lock()
	saved := len(backend.saves)
	backend.mu.Unlock()
	assert.Equal(t, 1, saved)
}

func TestPersistOutcomeRemoteFailed(t *testing.T) {
	backend := &fakeBackend{saveErr: errors.New("boom")}
	s := newRemoteStore(t, backend)

	s.ToggleTheme()

	assert.Equal(t, RemoteFailed, s.LastCommit().Wait())
	assert.NotEqual(t, "", s.Theme(), "the in-memory write stands even when the remote fails")
}

func TestToggleThemePersistsToCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	c := cache.New(path)
	s := New(Deps{Cache: c, SeedJobs: []model.Job{seedJob()}})
	assert.NoError(t, s.Bootstrap(context.Background()))

	theme := s.ToggleTheme()
	assert.Equal(t, "light", theme)
	s.LastCommit().Wait()

	snap, err := c.Load()
	assert.NoError(t, err)
	assert.NotNil(t, snap)
	assert.Equal(t, "light", snap.Theme)
}

/* ---------------- navigation ---------------- */

func TestNavigateAndBack(t *testing.T) {
	s := newLocalStore(t)

	s.Navigate("browse", "")
	s.Navigate("job-detail", "job-seed")

	assert.Equal(t, "job-detail", s.CurrentPage())
	assert.Equal(t, "job-seed", s.SelectedJobID())

	assert.Equal(t, "browse", s.Back())
	assert.Equal(t, "browse", s.CurrentPage())
	assert.Equal(t, "job-seed", s.SelectedJobID(), "going back keeps the selected job")
}

/* ---------------- threads ---------------- */

func TestThreadRoleGating(t *testing.T) {
	s := newLocalStore(t)

	assert.False(t, s.SendAdminThread(testStudent(), "s", "b"), "only employers write to the admin team")
	assert.True(t, s.SendAdminThread(testEmployer(), "Approval?", "Please review us"))

	assert.False(t, s.SendEmployerThread(testEmployer(), "emp-1", "s", "b"), "only admins write employer-inbound")
	assert.True(t, s.SendEmployerThread(testAdmin(), "emp-1", "Welcome", "You're approved"))
	assert.False(t, s.SendEmployerThread(testAdmin(), "nobody", "s", "b"), "unknown employer fails")

	assert.True(t, s.SendPeerThread(testStudent(), "emp-1", "Question", "About the role"))
	assert.False(t, s.SendPeerThread(testAdmin(), "emp-1", "s", "b"), "admins have no peer inbox")

	assert.Len(t, s.Threads(), 3)
}

func TestMarkThreadReadIdempotent(t *testing.T) {
	s := newLocalStore(t)
	s.SendAdminThread(testEmployer(), "Subject", "Body")
	id := s.Threads()[0].ID

	s.ReplyToThread(id, testAdmin(), "We are on it")
	s.MarkThreadRead(id)
	s.MarkThreadRead(id)

	threads := s.Threads()
	assert.True(t, threads[0].Read)
	assert.Len(t, threads[0].Replies, 1, "re-marking read must not touch replies")
}

func TestDecideThread(t *testing.T) {
	s := newLocalStore(t)
	s.SendEmployerThread(testAdmin(), "emp-1", "Decision time", "Accept or reject")
	id := s.Threads()[0].ID
	assert.Equal(t, model.DecisionPending, s.Threads()[0].Decision)

	s.DecideThread(id, true)
	assert.Equal(t, model.DecisionAccepted, s.Threads()[0].Decision)

	s.DecideThread(id, false)
	assert.Equal(t, model.DecisionRejected, s.Threads()[0].Decision)

	// Decisions only exist on employer-inbound threads.
	s.SendAdminThread(testEmployer(), "s", "b")
	other := s.Threads()[1].ID
	s.DecideThread(other, true)
	assert.Empty(t, s.Threads()[1].Decision)
}

func TestUnreadCount(t *testing.T) {
	s := newLocalStore(t)
	s.SendAdminThread(testEmployer(), "one", "b")
	s.SendAdminThread(testEmployer(), "two", "b")
	s.MarkThreadRead(s.Threads()[0].ID)

	assert.Equal(t, 1, UnreadCount(s.ThreadsForAdmin()))
}

/* ---------------- announcements ---------------- */

func TestAnnouncementVisibility(t *testing.T) {
	s := newLocalStore(t)
	admin := testAdmin()

	s.CreateAnnouncement(admin, model.Announcement{Title: "For everyone", TargetAudience: model.AudienceAll})
	s.CreateAnnouncement(admin, model.Announcement{Title: "Students only", TargetAudience: model.AudienceStudents})
	expired := time.Now().Add(-time.Hour)
	s.CreateAnnouncement(admin, model.Announcement{Title: "Expired", ExpiryDate: &expired})

	titles := func(list []model.Announcement) []string {
		out := make([]string, 0, len(list))
		for _, a := range list {
			out = append(out, a.Title)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"For everyone", "Students only"}, titles(s.AnnouncementsForRole(model.RoleStudent)))
	assert.ElementsMatch(t, []string{"For everyone"}, titles(s.AnnouncementsForRole(model.RoleEmployer)))
	assert.ElementsMatch(t, []string{"For everyone"}, titles(s.AnnouncementsForRole(model.RoleAdmin)),
		"admins see untargeted announcements only")
	assert.Len(t, s.Announcements(), 3, "the raw list keeps expired entries")
}

func TestAnnouncementPostedByFallback(t *testing.T) {
	s := newLocalStore(t)

	a := s.CreateAnnouncement(model.User{Role: model.RoleAdmin}, model.Announcement{Title: "t"})
	assert.Equal(t, "Admin", a.PostedBy)
	assert.NotEmpty(t, a.ID)
	assert.False(t, a.PostedDate.IsZero())
}
