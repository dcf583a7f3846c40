package account

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"HireHub-backend/internal/auth"
	"HireHub-backend/internal/cache"
	"HireHub-backend/internal/middleware"
	"HireHub-backend/internal/model"
	"HireHub-backend/internal/store"
	"HireHub-backend/internal/testutil"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.Deps{
		Cache: cache.New(filepath.Join(t.TempDir(), "state.json")),
		SeedUsers: []model.User{
			{ID: "adm-1", Name: "Admin", Email: "admin@example.com", Role: model.RoleAdmin},
			{ID: "emp-1", Name: "Bob", Email: "bob@technova.com", Role: model.RoleEmployer,
				Employer: &model.EmployerProfile{CompanyName: "TechNova", IsApproved: false}},
			{ID: "stu-1", Name: "Alice", Email: "alice@example.com", Role: model.RoleStudent,
				Student: &model.StudentProfile{Skills: []string{"Go"}}},
		},
		SeedJobs: []model.Job{
			{ID: "job-1", EmployerID: "emp-1", Title: "Backend Engineer", Status: model.JobStatusActive},
		},
	})
	if err := st.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	return st
}

func accessToken(t *testing.T, userID string) string {
	t.Helper()
	token, _, err := auth.GenerateStandardToken(userID)
	assert.NoError(t, err)
	return token
}

func TestMe(t *testing.T) {
	st := newTestStore(t)
	r := gin.Default()
	ac := NewAccountController(st)
	r.GET("/users/me", middleware.RequireAuth(st), ac.MeHandler)

	rec, resp := testutil.MakeJSONRequest(nil, accessToken(t, "stu-1"), r, "/users/me", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "stu-1", resp["id"])
	assert.Equal(t, "alice@example.com", resp["email"])
}

func TestGetUser_notFound(t *testing.T) {
	st := newTestStore(t)
	r := gin.Default()
	ac := NewAccountController(st)
	r.GET("/users/:id", middleware.RequireAuth(st), ac.GetUserHandler)

	rec, _ := testutil.MakeJSONRequest(nil, accessToken(t, "stu-1"), r, "/users/ghost", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListUsersByRole(t *testing.T) {
	st := newTestStore(t)
	r := gin.Default()
	ac := NewAccountController(st)
	r.GET("/admin/users", middleware.RequireAuth(st), ac.ListUsersHandler)

	rec, _ := testutil.MakeJSONRequest(nil, accessToken(t, "adm-1"), r, "/admin/users?role=student", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	var users []model.User
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 1)
	assert.Equal(t, "stu-1", users[0].ID)
}

func TestUpdateProfile_pinsIdentity(t *testing.T) {
	st := newTestStore(t)
	r := gin.Default()
	ac := NewAccountController(st)
	r.PUT("/users/me", middleware.RequireAuth(st), ac.UpdateProfileHandler)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"id":   "someone-else",
		"name": "Alice Updated",
		"role": "admin",
	}, accessToken(t, "stu-1"), r, "/users/me", http.MethodPut)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "stu-1", resp["id"], "profile edits cannot change identity")
	assert.Equal(t, "student", resp["role"], "profile edits cannot change role")
	assert.Equal(t, "Alice Updated", resp["name"])

	u, ok := st.UserByID("stu-1")
	assert.True(t, ok)
	assert.Equal(t, "Alice Updated", u.Name)
}

func TestUpdateProfile_cannotSelfApprove(t *testing.T) {
	st := newTestStore(t)
	r := gin.Default()
	ac := NewAccountController(st)
	r.PUT("/users/me", middleware.RequireAuth(st), ac.UpdateProfileHandler)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"name": "Bob",
		"employer": gin.H{
			"companyName": "TechNova",
			"isApproved":  true,
		},
	}, accessToken(t, "emp-1"), r, "/users/me", http.MethodPut)

	assert.Equal(t, http.StatusOK, rec.Code)
	u, _ := st.UserByID("emp-1")
	assert.False(t, u.Approved(), "approval stays the admin's call")
}

func TestDeleteUser_selfAndCascade(t *testing.T) {
	st := newTestStore(t)
	r := gin.Default()
	ac := NewAccountController(st)
	r.DELETE("/users/:id", middleware.RequireAuth(st), ac.DeleteUserHandler)

	rec, _ := testutil.MakeJSONRequest(nil, accessToken(t, "emp-1"), r, "/users/emp-1", http.MethodDelete)

	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := st.UserByID("emp-1")
	assert.False(t, ok)
	assert.Empty(t, st.Jobs(), "owned jobs cascade with the account")
	assert.Nil(t, st.CurrentUser())
}

func TestDeleteUser_otherAccountForbidden(t *testing.T) {
	st := newTestStore(t)
	r := gin.Default()
	ac := NewAccountController(st)
	r.DELETE("/users/:id", middleware.RequireAuth(st), ac.DeleteUserHandler)

	rec, _ := testutil.MakeJSONRequest(nil, accessToken(t, "stu-1"), r, "/users/emp-1", http.MethodDelete)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	_, ok := st.UserByID("emp-1")
	assert.True(t, ok)
}

func TestApproveEmployer(t *testing.T) {
	st := newTestStore(t)
	r := gin.Default()
	ac := NewAccountController(st)
	r.POST("/admin/employers/:id/approve", middleware.RequireAuth(st), ac.ApproveEmployerHandler)

	rec, _ := testutil.MakeJSONRequest(nil, accessToken(t, "adm-1"), r, "/admin/employers/emp-1/approve", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	u, _ := st.UserByID("emp-1")
	assert.True(t, u.Approved())
}

func TestApproveEmployer_notAnEmployer(t *testing.T) {
	st := newTestStore(t)
	r := gin.Default()
	ac := NewAccountController(st)
	r.POST("/admin/employers/:id/approve", middleware.RequireAuth(st), ac.ApproveEmployerHandler)

	rec, _ := testutil.MakeJSONRequest(nil, accessToken(t, "adm-1"), r, "/admin/employers/stu-1/approve", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRejectEmployer(t *testing.T) {
	st := newTestStore(t)
	r := gin.Default()
	ac := NewAccountController(st)
	r.POST("/admin/employers/:id/reject", middleware.RequireAuth(st), ac.RejectEmployerHandler)

	rec, _ := testutil.MakeJSONRequest(nil, accessToken(t, "adm-1"), r, "/admin/employers/emp-1/reject", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := st.UserByID("emp-1")
	assert.False(t, ok, "rejected employers leave the session")
	assert.Empty(t, st.Jobs())
}
