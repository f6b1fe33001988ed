package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinhtrinh326/schedsim/internal/config"
)

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return &testApp{t: t, cfg: &config.SchedulerConfig{Policy: "all", TimeQuantum: 2, PriorityLevels: 2, MaxTicks: 100}}
}

type testApp struct {
	t   *testing.T
	cfg *config.SchedulerConfig
}

func (a *testApp) do(method, path, body string, out interface{}) int {
	a.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := NewApp(a.cfg).Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(a.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

const twoProcesses = `{"processes":[{"id":1,"arrival_time":0,"burst_time":3},{"id":2,"arrival_time":0,"burst_time":3}]}`

type slice struct {
	PID   int64 `json:"pid"`
	Start int64 `json:"start"`
	Stop  int64 `json:"stop"`
	Level int   `json:"level"`
}

type response struct {
	Policy         string           `json:"policy"`
	Timeline       []slice          `json:"timeline"`
	WaitingTime    map[string]int64 `json:"waiting_time"`
	TurnaroundTime map[string]int64 `json:"turnaround_time"`
	AverageWaiting float64          `json:"average_waiting_time"`
	Makespan       int64            `json:"makespan"`
	Utilization    float64          `json:"utilization"`
}

func TestHealth(t *testing.T) {
	var out map[string]string
	status := newTestApp(t).do(http.MethodGet, "/api/v1/health", "", &out)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", out["status"])
}

func TestScheduleUsesConfigQuantum(t *testing.T) {
	var out response
	status := newTestApp(t).do(http.MethodPost, "/api/v1/schedule/rr", twoProcesses, &out)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "rr", out.Policy)
	assert.Equal(t, []slice{{1, 0, 2, 0}, {2, 2, 4, 0}, {1, 4, 5, 0}, {2, 5, 6, 0}}, out.Timeline)
	assert.Equal(t, map[string]int64{"1": 2, "2": 3}, out.WaitingTime)
	assert.Equal(t, int64(6), out.Makespan)
	assert.Equal(t, 1.0, out.Utilization)
}

func TestScheduleRequestOverridesQuantum(t *testing.T) {
	body := `{"processes":[{"id":1,"arrival_time":0,"burst_time":3},{"id":2,"arrival_time":0,"burst_time":3}],"time_quantum":3}`
	var out response
	status := newTestApp(t).do(http.MethodPost, "/api/v1/schedule/RR", body, &out)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []slice{{1, 0, 3, 0}, {2, 3, 6, 0}}, out.Timeline)
}

func TestScheduleErrors(t *testing.T) {
	app := newTestApp(t)
	var out map[string]string

	assert.Equal(t, http.StatusNotFound, app.do(http.MethodPost, "/api/v1/schedule/lottery", twoProcesses, &out))
	assert.Contains(t, out["error"], "unknown scheduling policy")

	assert.Equal(t, http.StatusBadRequest, app.do(http.MethodPost, "/api/v1/schedule/fcfs", `{"processes":[]}`, &out))
	assert.Contains(t, out["error"], "no processes")

	assert.Equal(t, http.StatusBadRequest, app.do(http.MethodPost, "/api/v1/schedule/sjf",
		`{"processes":[{"id":1,"burst_time":0}]}`, &out))
	assert.Contains(t, out["error"], "invalid process")

	assert.Equal(t, http.StatusBadRequest, app.do(http.MethodPost, "/api/v1/schedule/mlfq",
		`{"processes":[{"id":1,"burst_time":2}],"priority_levels":7}`, &out))
	assert.Contains(t, out["error"], "priority levels")

	assert.Equal(t, http.StatusBadRequest, app.do(http.MethodPost, "/api/v1/schedule/fcfs", `{"processes":`, &out))
	assert.Equal(t, "invalid request format", out["error"])
}

func TestCompare(t *testing.T) {
	var out []response
	status := newTestApp(t).do(http.MethodPost, "/api/v1/compare", twoProcesses, &out)
	require.Equal(t, http.StatusOK, status)

	require.Len(t, out, 5)
	var policies []string
	for _, r := range out {
		policies = append(policies, r.Policy)
		assert.Equal(t, int64(6), r.Makespan)
	}
	assert.Equal(t, []string{"fcfs", "sjf", "stcf", "rr", "mlfq"}, policies)
}

func TestTickBudget(t *testing.T) {
	app := newTestApp(t)
	var out map[string]string

	huge := `{"processes":[{"id":1,"arrival_time":0,"burst_time":9223372036854775807},{"id":2,"arrival_time":0,"burst_time":5}]}`
	assert.Equal(t, http.StatusBadRequest, app.do(http.MethodPost, "/api/v1/schedule/stcf", huge, &out))
	assert.Contains(t, out["error"], "overflows")

	long := `{"processes":[{"id":1,"arrival_time":90,"burst_time":20}]}`
	assert.Equal(t, http.StatusBadRequest, app.do(http.MethodPost, "/api/v1/schedule/stcf", long, &out))
	assert.Contains(t, out["error"], "limit is 100")
	assert.Equal(t, http.StatusBadRequest, app.do(http.MethodPost, "/api/v1/compare", long, &out))

	app.cfg.MaxTicks = 0
	var res response
	assert.Equal(t, http.StatusOK, app.do(http.MethodPost, "/api/v1/schedule/stcf", long, &res))
	assert.Equal(t, int64(110), res.Makespan)
}
