package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-career/internal/domain/transfer"
	"github.com/riskibarqy/football-career/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-career/internal/platform/id"
	"github.com/riskibarqy/football-career/internal/platform/logging"
	"github.com/riskibarqy/football-career/internal/platform/random"
	"github.com/riskibarqy/football-career/internal/platform/resilience"
	"github.com/riskibarqy/football-career/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJobToken = "job-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	careers := memory.NewCareerRepository()
	clubs := memory.NewClubRepository(memory.SeedClubs())
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	locks := &resilience.KeyedMutex{}
	rules := transfer.DefaultRules()
	logger := logging.NewNop()
	// 0.1 wins the 40% offer roll; index 0 picks the first candidate and bidder.
	rng := random.NewScripted([]float64{0.1}, []int{0})

	transferService := usecase.NewTransferService(careers, clubs, players, locks, rules, rng, id.NewUUIDGenerator("off-"), logger)
	handler := NewHandler(
		usecase.NewCareerService(careers, clubs, players, locks, rules, id.NewUUIDGenerator("car-"), logger),
		usecase.NewClubService(clubs),
		usecase.NewScoutService(careers, players, locks, rules),
		transferService,
		usecase.NewMatchdayService(transferService, 2, logger),
		logger,
	)
	return NewRouter(handler, logger, true, []string{"*"}, testJobToken)
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var envelope map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope), "body: %s", rec.Body.String())
	return rec, envelope
}

func dataObject(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "expected object data, got %v", envelope)
	return data
}

func dataList(t *testing.T, envelope map[string]any) []any {
	t.Helper()
	data, ok := envelope["data"].([]any)
	require.True(t, ok, "expected list data, got %v", envelope)
	return data
}

func errorStatus(envelope map[string]any) string {
	body, _ := envelope["error"].(map[string]any)
	status, _ := body["status"].(string)
	return status
}

func startTestCareer(t *testing.T, h http.Handler) string {
	t.Helper()

	rec, envelope := doRequest(t, h, http.MethodPost, "/v1/careers", map[string]any{
		"club_id":     "eng-ars",
		"start_date":  "2025-07-01",
		"window_open": true,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	data := dataObject(t, envelope)
	careerID, _ := data["id"].(string)
	require.NotEmpty(t, careerID)
	return careerID
}

func TestHandler_HealthzAndClubs(t *testing.T) {
	h := newTestRouter(t)

	rec, envelope := doRequest(t, h, http.MethodGet, "/healthz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", dataObject(t, envelope)["status"])

	rec, envelope = doRequest(t, h, http.MethodGet, "/v1/clubs", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, envelope), len(memory.SeedClubs()))
}

func TestHandler_StartCareerErrors(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name       string
		body       any
		wantCode   int
		wantStatus string
	}{
		{name: "unknown club", body: map[string]any{"club_id": "xx-none"}, wantCode: http.StatusNotFound, wantStatus: "NOT_FOUND"},
		{name: "missing club", body: map[string]any{"start_date": "2025-07-01"}, wantCode: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
		{name: "unknown field", body: map[string]any{"club_id": "eng-ars", "budget": 1}, wantCode: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
		{name: "bad date", body: map[string]any{"club_id": "eng-ars", "start_date": "01/07/2025"}, wantCode: http.StatusBadRequest, wantStatus: "INVALID_ARGUMENT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, envelope := doRequest(t, h, http.MethodPost, "/v1/careers", tt.body, nil)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantStatus, errorStatus(envelope))
		})
	}
}

func TestHandler_GetCareerNotFound(t *testing.T) {
	h := newTestRouter(t)

	rec, envelope := doRequest(t, h, http.MethodGet, "/v1/careers/car-missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorStatus(envelope))
}

func TestHandler_ScoutingRedactsByTier(t *testing.T) {
	h := newTestRouter(t)
	careerID := startTestCareer(t, h)

	rec, envelope := doRequest(t, h, http.MethodGet, "/v1/careers/"+careerID+"/scouting/players/p-0006", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	full := dataObject(t, envelope)
	assert.Equal(t, "full", full["intel_tier"])
	assert.Equal(t, float64(75_000_000), full["market_value"])
	assert.Equal(t, float64(86), full["overall"])

	rec, envelope = doRequest(t, h, http.MethodGet, "/v1/careers/"+careerID+"/scouting/players/p-0027", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	unknown := dataObject(t, envelope)
	assert.Equal(t, "unknown", unknown["intel_tier"])
	assert.Nil(t, unknown["age"])
	assert.Nil(t, unknown["market_value"])
	assert.Nil(t, unknown["wage"])
	assert.Nil(t, unknown["attributes"])
	assert.Equal(t, transfer.HiddenText, unknown["club_name"])
	assert.Equal(t, map[string]any{"min": float64(64), "max": float64(80)}, unknown["overall"])
	assert.Equal(t, "Japan", unknown["nationality"])

	rec, envelope = doRequest(t, h, http.MethodGet, "/v1/careers/"+careerID+"/scouting/players?league=Premier+League", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, item := range dataList(t, envelope) {
		report := item.(map[string]any)
		assert.NotEqual(t, "Arsenal", report["club_name"], "own players must be excluded")
	}

	rec, envelope = doRequest(t, h, http.MethodGet, "/v1/careers/"+careerID+"/scouting/players?min_overall=abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", errorStatus(envelope))
}

func TestHandler_ReleaseClauseSigningAndSale(t *testing.T) {
	h := newTestRouter(t)
	careerID := startTestCareer(t, h)
	base := "/v1/careers/" + careerID

	rec, envelope := doRequest(t, h, http.MethodPost, base+"/bids", map[string]any{"player_id": "p-0010", "amount": 45_000_000}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	bid := dataObject(t, envelope)
	assert.Equal(t, "release_clause", bid["status"])
	assert.Equal(t, float64(40_000_000), bid["fee"])

	rec, envelope = doRequest(t, h, http.MethodPost, base+"/contracts", map[string]any{
		"player_id": "p-0010",
		"fee":       40_000_000,
		"contract":  map[string]any{"length_years": 3, "weekly_wage": 77_000, "signing_bonus": 0},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	signed := dataObject(t, envelope)
	assert.Equal(t, "accepted", signed["status"])
	assert.Equal(t, true, signed["success"])
	budget := signed["budget"].(map[string]any)
	assert.Equal(t, float64(80_000_000), budget["transfer_budget"])
	signedPlayer := signed["player"].(map[string]any)
	assert.Equal(t, "Arsenal", signedPlayer["club_name"])
	assert.Equal(t, float64(2028), signedPlayer["contract_end_year"])

	rec, envelope = doRequest(t, h, http.MethodGet, base+"/squad", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, envelope), 5)

	rec, envelope = doRequest(t, h, http.MethodPost, base+"/sales", map[string]any{"player_id": "p-0003", "amount": 50_000_000, "buyer_club_id": "eng-new"}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sale := dataObject(t, envelope)
	assert.Equal(t, "completed", sale["status"])
	assert.Equal(t, float64(130_000_000), sale["budget"].(map[string]any)["transfer_budget"])

	rec, envelope = doRequest(t, h, http.MethodGet, base+"/history", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	history := dataList(t, envelope)
	require.Len(t, history, 2)
	assert.Equal(t, "IN", history[0].(map[string]any)["direction"])
	assert.Equal(t, "Sevilla", history[0].(map[string]any)["counterparty"])
	assert.Equal(t, "OUT", history[1].(map[string]any)["direction"])
}

func TestHandler_WindowClosedBid(t *testing.T) {
	h := newTestRouter(t)
	careerID := startTestCareer(t, h)
	base := "/v1/careers/" + careerID

	rec, envelope := doRequest(t, h, http.MethodPut, base+"/window", map[string]any{"open": false}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, false, dataObject(t, envelope)["window_open"])

	rec, envelope = doRequest(t, h, http.MethodPost, base+"/bids", map[string]any{"player_id": "p-0006", "amount": 1_000}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "window_closed", dataObject(t, envelope)["status"])

	rec, envelope = doRequest(t, h, http.MethodPut, base+"/window", map[string]any{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ARGUMENT", errorStatus(envelope))
}

func TestHandler_MatchGeneratesOfferAndAccept(t *testing.T) {
	h := newTestRouter(t)
	careerID := startTestCareer(t, h)
	base := "/v1/careers/" + careerID

	rec, envelope := doRequest(t, h, http.MethodGet, base+"/budget", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	before := dataObject(t, envelope)["transfer_budget"].(float64)

	rec, envelope = doRequest(t, h, http.MethodPost, base+"/matches", map[string]any{"home_goals": 2, "away_goals": 1}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tick := dataObject(t, envelope)
	require.Equal(t, true, tick["generated"])
	offer := tick["offer"].(map[string]any)
	assert.Equal(t, "p-0001", offer["player_id"])
	assert.Equal(t, "Newcastle United", offer["club_name"])

	rec, envelope = doRequest(t, h, http.MethodGet, base+"/offers", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dataList(t, envelope), 1)

	offerID := offer["id"].(string)
	rec, envelope = doRequest(t, h, http.MethodPost, base+"/offers/"+offerID+"/accept", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := dataObject(t, envelope)
	assert.Equal(t, "accepted", result["status"])
	assert.Equal(t, before+offer["amount"].(float64), result["budget"].(map[string]any)["transfer_budget"])

	rec, envelope = doRequest(t, h, http.MethodPost, base+"/offers/"+offerID+"/reject", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "not_pending", dataObject(t, envelope)["status"])
}

func TestHandler_MatchdayRequiresJobToken(t *testing.T) {
	h := newTestRouter(t)
	careerID := startTestCareer(t, h)
	body := map[string]any{"results": []map[string]any{{"career_id": careerID, "home_goals": 1, "away_goals": 0}}}

	rec, envelope := doRequest(t, h, http.MethodPost, "/v1/internal/matchdays", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorStatus(envelope))

	rec, envelope = doRequest(t, h, http.MethodPost, "/v1/internal/matchdays", body, map[string]string{"X-Internal-Job-Token": testJobToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := dataObject(t, envelope)
	assert.Equal(t, float64(1), data["task_count"])
	assert.Equal(t, float64(1), data["success_count"])
}

func TestHandler_RejectsOversizedAmounts(t *testing.T) {
	h := newTestRouter(t)
	careerID := startTestCareer(t, h)
	base := "/v1/careers/" + careerID

	requests := []struct {
		path string
		body map[string]any
	}{
		{path: base + "/offers/off-1/counter", body: map[string]any{"amount": int64(184_467_440_757_095_517)}},
		{path: base + "/bids", body: map[string]any{"player_id": "p-0006", "amount": int64(1_000_000_000_000_001)}},
		{path: base + "/contracts", body: map[string]any{"player_id": "p-0006", "fee": int64(1 << 62), "contract": map[string]any{"length_years": 4, "weekly_wage": 110_000, "signing_bonus": int64(1 << 62)}}},
	}
	for _, tc := range requests {
		rec, envelope := doRequest(t, h, http.MethodPost, tc.path, tc.body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.path)
		assert.Equal(t, "INVALID_ARGUMENT", errorStatus(envelope), tc.path)
	}
}
