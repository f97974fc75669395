package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"ITINERARY_BACK-END/internal/models"
)

type selectionBody struct {
	DayIndex *int   `json:"day_index" validate:"required,min=0"`
	Slot     string `json:"slot" validate:"required,timeslot"`
	Kind     string `json:"kind" validate:"required,oneof=activity transfer"`
}

func decode(body string) (*httptest.ResponseRecorder, selectionBody, error) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var dst selectionBody
	err := DecodeJSONRequest(w, r, &dst)
	return w, dst, err
}

func TestDecodeJSONRequest(t *testing.T) {
	w, got, err := decode(`{"day_index":0,"slot":"evening","kind":"transfer"}`)
	require.NoError(t, err)
	assert.Equal(t, 0, *got.DayIndex)
	assert.Equal(t, "evening", got.Slot)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDecodeJSONRequestRejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty body", ``, "Request body is required"},
		{"bad json", `{"day_index":`, "Request body must be valid JSON"},
		{"unknown field", `{"day_index":0,"slot":"morning","kind":"activity","x":1}`, "Request body must be valid JSON"},
		{"missing index", `{"slot":"morning","kind":"activity"}`, "day_index is required"},
		{"bad slot", `{"day_index":1,"slot":"night","kind":"activity"}`, "slot must be morning, afternoon, or evening"},
		{"bad kind", `{"day_index":1,"slot":"morning","kind":"hotel"}`, "kind must be one of: activity transfer"},
		{"negative index", `{"day_index":-1,"slot":"morning","kind":"activity"}`, "day_index must be at least 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, err := decode(tt.body)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, gjson.Get(w.Body.String(), "message").String(), tt.message)
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorResponse(w, http.StatusConflict, "Conflict", "days already exist")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "Conflict", gjson.Get(w.Body.String(), "error").String())
	assert.Equal(t, "days already exist", gjson.Get(w.Body.String(), "message").String())
}

func TestActorFromContext(t *testing.T) {
	_, ok := ActorFromContext(context.Background())
	assert.False(t, ok)

	id := uuid.New()
	actor, ok := ActorFromContext(WithUser(context.Background(), id, "agent@example.com", ""))
	require.True(t, ok)
	assert.Equal(t, models.Actor{UserID: id, Role: models.RoleAgent}, actor)

	actor, _ = ActorFromContext(WithUser(context.Background(), id, "", models.RoleAdmin))
	assert.Equal(t, models.RoleAdmin, actor.Role)

	_, ok = GetUserIDFromContext(WithUser(context.Background(), uuid.Nil, "", ""))
	assert.False(t, ok)
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	assert.Equal(t, "2025-03-01T08:00:00Z", FormatTimestamp(time.Date(2025, 3, 1, 10, 0, 0, 0, loc)))
}
