package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendazap/slot-suggester/internal/config"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
	"github.com/agendazap/slot-suggester/internal/core/services/suggestion_service"
)

type nopLogger struct{}

func (l nopLogger) Debug(event string, fields out.LogFields) {}
func (l nopLogger) Info(event string, fields out.LogFields)  {}
func (l nopLogger) Warn(event string, fields out.LogFields)  {}
func (l nopLogger) Error(event string, fields out.LogFields) {}

func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

func newScheduleRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	clock := func() time.Time {
		return time.Date(2025, 4, 25, 0, 0, 0, 0, loc)
	}

	svc := suggestion_service.NewSuggestionService(clock, nopLogger{})
	router := gin.New()
	NewScheduleController(svc, cfg, nopLogger{}).RegisterRoutes(router)
	return router
}

const suggestionsBody = `{
	"id": "req-1",
	"businessHours": {"friday": [{"start": "09:00", "end": "12:00"}]},
	"appointmentDurationInMinutes": 60,
	"timezone": "America/Sao_Paulo",
	"maxSuggestions": 2
}`

func postSuggestions(router *gin.Engine, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/schedule/suggestions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.SetBasicAuth("slot_suggester", "slot_suggester")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateSuggestions(t *testing.T) {
	router := newScheduleRouter(t)

	recorder := postSuggestions(router, suggestionsBody, true)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		ID    string `json:"id"`
		Slots []struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"slots"`
		FormattedSlots []string `json:"formattedSlots"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Equal(t, "req-1", response.ID)
	require.Len(t, response.Slots, 2)
	assert.Equal(t, "2025-04-25T09:00:00-03:00", response.Slots[0].Start)
	assert.Equal(t, "2025-04-25T10:00:00-03:00", response.Slots[0].End)
	require.Len(t, response.FormattedSlots, 2)
	assert.Equal(t, "25/04/2025 Sexta-feira às 09:00h", response.FormattedSlots[0])
}

func TestCreateSuggestions_RequiresBasicAuth(t *testing.T) {
	router := newScheduleRouter(t)

	recorder := postSuggestions(router, suggestionsBody, false)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	req := httptest.NewRequest(http.MethodPost, "/schedule/suggestions", strings.NewReader(suggestionsBody))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("slot_suggester", "wrong")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCreateSuggestions_RejectsInvalidBody(t *testing.T) {
	router := newScheduleRouter(t)

	// Missing required appointmentDurationInMinutes
	recorder := postSuggestions(router, `{"timezone": "America/Sao_Paulo"}`, true)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = postSuggestions(router, `{broken`, true)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateSuggestions_RejectsUnknownTimezone(t *testing.T) {
	router := newScheduleRouter(t)

	body := strings.Replace(suggestionsBody, "America/Sao_Paulo", "America/Nowhere", 1)
	recorder := postSuggestions(router, body, true)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
