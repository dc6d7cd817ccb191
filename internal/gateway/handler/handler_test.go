package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omniportal/internal/assistant"
	"omniportal/internal/gateway/auth"
	"omniportal/internal/gateway/entity"
	"omniportal/internal/gateway/repository/media"
	"omniportal/internal/gateway/repository/portal"
	"omniportal/internal/suggest"
)

// newTestService wires the full service in offline mode against fresh stores.
func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(
		portal.New(),
		suggest.New(nil),
		assistant.New(nil),
		auth.NewStore(filepath.Join(t.TempDir(), "auth.json")),
		media.NewMemoryStore(),
	)
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h(rec, req)
	if out != nil && rec.Code < 300 {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

func TestHandleProfileRoundTrip(t *testing.T) {
	svc := newTestService(t)

	var profile entity.UserProfile
	rec := doJSON(t, svc.HandleProfile, http.MethodGet, "/api/profile", nil, &profile)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Luna", profile.Name)

	profile.Name = "Nova"
	var updated entity.UserProfile
	rec = doJSON(t, svc.HandleProfile, http.MethodPut, "/api/profile", profile, &updated)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Nova", updated.Name)
}

func TestHandleStrengthsOffline(t *testing.T) {
	svc := newTestService(t)

	var out strengthsResponse
	rec := doJSON(t, svc.HandleStrengths, http.MethodPost, "/api/profile/strengths",
		strengthsRequest{Bio: "数字游民，设计师"}, &out)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"跨界整合者", "高维审美", "技术赋能", "长期主义"}, out.Strengths)
}

func TestHandleProjectByID(t *testing.T) {
	svc := newTestService(t)

	var project entity.Project
	rec := doJSON(t, svc.HandleProjectByID, http.MethodGet, "/api/projects/1", nil, &project)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 45, project.Progress)

	rec = doJSON(t, svc.HandleProjectByID, http.MethodGet, "/api/projects/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleProjectsRejectsBadBody(t *testing.T) {
	svc := newTestService(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewBufferString("{broken"))
	rec := httptest.NewRecorder()
	svc.HandleProjects(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreationFlowOverHTTP(t *testing.T) {
	svc := newTestService(t)

	var state creationStateResponse
	rec := doJSON(t, svc.HandleCreationStart, http.MethodPost, "/api/creation/start", nil, &state)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, state.SessionID)
	assert.Equal(t, "draft", state.Stage)

	session := state.SessionID
	rec = doJSON(t, svc.HandleCreationDescribe, http.MethodPost, "/api/creation/describe",
		describeRequest{SessionID: session, Description: "I want a nomad-news DAO"}, &state)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, svc.HandleCreationAnalyze, http.MethodPost, "/api/creation/analyze",
		sessionRequest{SessionID: session}, &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "review", state.Stage)
	require.Len(t, state.Roles, 3)

	rec = doJSON(t, svc.HandleCreationEquity, http.MethodPost, "/api/creation/equity",
		equityRequest{SessionID: session, RoleID: "1", EquityShare: 25}, &state)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 25, state.Roles[0].EquityShare)

	var published publishResponse
	rec = doJSON(t, svc.HandleCreationPublish, http.MethodPost, "/api/creation/publish",
		sessionRequest{SessionID: session}, &published)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "I want a...", published.Project.Title)
	assert.Equal(t, 25, published.Project.DetailedRoles[0].EquityShare)
	require.NotEmpty(t, published.Projects)
	assert.Equal(t, published.Project.ID, published.Projects[0].ID)

	// The session is gone after publish.
	rec = doJSON(t, svc.HandleCreationPublish, http.MethodPost, "/api/creation/publish",
		sessionRequest{SessionID: session}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreationPublishBeforeAnalyze(t *testing.T) {
	svc := newTestService(t)

	var state creationStateResponse
	doJSON(t, svc.HandleCreationStart, http.MethodPost, "/api/creation/start", nil, &state)

	rec := doJSON(t, svc.HandleCreationPublish, http.MethodPost, "/api/creation/publish",
		sessionRequest{SessionID: state.SessionID}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreationAbandonedSessionsAreEvicted(t *testing.T) {
	svc := newTestService(t)

	var first creationStateResponse
	doJSON(t, svc.HandleCreationStart, http.MethodPost, "/api/creation/start", nil, &first)

	// Abandon enough newer sessions to push the first one out of the cache.
	for i := 0; i < flowSessionCap; i++ {
		doJSON(t, svc.HandleCreationStart, http.MethodPost, "/api/creation/start", nil, nil)
	}

	rec := doJSON(t, svc.HandleCreationDescribe, http.MethodPost, "/api/creation/describe",
		describeRequest{SessionID: first.SessionID, Description: "x"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreationUnknownSession(t *testing.T) {
	svc := newTestService(t)
	rec := doJSON(t, svc.HandleCreationAnalyze, http.MethodPost, "/api/creation/analyze",
		sessionRequest{SessionID: "nope"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleChatOffline(t *testing.T) {
	svc := newTestService(t)

	var out chatResponse
	rec := doJSON(t, svc.HandleChat, http.MethodPost, "/api/chat",
		chatRequest{Message: "你好"}, &out)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, out.Reply, "离线演示模式")
}

func TestHandleMoreTransactions(t *testing.T) {
	svc := newTestService(t)

	var out transactionsResponse
	rec := doJSON(t, svc.HandleMoreTransactions, http.MethodPost, "/api/finance/transactions/more", nil, &out)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, out.Transactions, 3)
	assert.Equal(t, "Apple One 订阅", out.Transactions[0].Name)
}

func TestHandleClaimTask(t *testing.T) {
	svc := newTestService(t)

	var task entity.AllianceTask
	rec := doJSON(t, svc.HandleClaimTask, http.MethodPost, "/api/tasks/1/claim", nil, &task)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", task.ID)

	rec = doJSON(t, svc.HandleClaimTask, http.MethodPost, "/api/tasks/1", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionLifecycle(t *testing.T) {
	svc := newTestService(t)

	var session sessionResponse
	doJSON(t, svc.HandleSession, http.MethodGet, "/api/auth/session", nil, &session)
	assert.False(t, session.Authenticated)

	doJSON(t, svc.HandleLogin, http.MethodPost, "/api/auth/login", nil, &session)
	assert.True(t, session.Authenticated)

	doJSON(t, svc.HandleSession, http.MethodGet, "/api/auth/session", nil, &session)
	assert.True(t, session.Authenticated)

	doJSON(t, svc.HandleLogout, http.MethodPost, "/api/auth/logout", nil, &session)
	assert.False(t, session.Authenticated)
}

func TestHandleMediaRoundTrip(t *testing.T) {
	svc := newTestService(t)

	req := httptest.NewRequest(http.MethodPut, "/api/media/p-1/cover.png", bytes.NewReader([]byte{1, 2, 3}))
	rec := httptest.NewRecorder()
	svc.HandleMedia(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/media/p-1/cover.png", nil)
	rec = httptest.NewRecorder()
	svc.HandleMedia(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte{1, 2, 3}, rec.Body.Bytes())

	var list mediaListResponse
	req = httptest.NewRequest(http.MethodGet, "/api/media/p-1", nil)
	rec = httptest.NewRecorder()
	svc.HandleMedia(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Equal(t, []string{"cover.png"}, list.Names)

	req = httptest.NewRequest(http.MethodGet, "/api/media/p-1/missing.png", nil)
	rec = httptest.NewRecorder()
	svc.HandleMedia(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	svc := newTestService(t)

	rec := doJSON(t, svc.HandleFinance, http.MethodPost, "/api/finance", nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = doJSON(t, svc.HandleChat, http.MethodGet, "/api/chat", nil, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
