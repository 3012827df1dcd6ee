package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/digitalbuddiesspune/stylegenz/pkg/errors"
	"github.com/digitalbuddiesspune/stylegenz/pkg/pagination"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestWriteError_AppError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)

	WriteError(rec, req, apperrors.InvalidCategory("Handbags"), discardLogger())

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_CATEGORY", resp.Error.Code)
}

func TestWriteError_UnknownErrorIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)

	WriteError(rec, req, errors.New("boom"), discardLogger())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
	// Internal details never leak to the client.
	assert.NotContains(t, resp.Error.Message, "boom")
}

func TestWriteListError_AttachesEmptyEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)

	params := pagination.Params{Page: 3, PerPage: 20, Offset: 40}
	WriteListError(rec, req, apperrors.StoreUnavailable(errors.New("down")), params, discardLogger())

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp struct {
		Data struct {
			Items      []json.RawMessage   `json:"items"`
			Pagination pagination.Envelope `json:"pagination"`
		} `json:"data"`
		Error *ErrorResponse `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Error)
	assert.Equal(t, "STORE_UNAVAILABLE", resp.Error.Code)
	assert.Empty(t, resp.Data.Items)
	assert.Equal(t, 3, resp.Data.Pagination.CurrentPage)
	assert.Zero(t, resp.Data.Pagination.TotalItems)
	assert.False(t, resp.Data.Pagination.HasNext)
}

func TestNewListResponse_NilItems(t *testing.T) {
	resp := NewListResponse[string](nil, pagination.Empty(pagination.DefaultParams()))
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestParseUUID(t *testing.T) {
	rec := httptest.NewRecorder()
	_, ok := ParseUUID(rec, "not-a-uuid")

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	id, ok := ParseUUID(rec, "3b241101-e2bb-4255-8caf-4136c566a962")
	assert.True(t, ok)
	assert.Equal(t, "3b241101-e2bb-4255-8caf-4136c566a962", id.String())
}
