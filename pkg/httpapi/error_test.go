package httpapi

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campuskit/campuskit/pkg/serrors"
)

func TestWriteServiceError_Taxonomy(t *testing.T) {
	rec := httptest.NewRecorder()
	err := serrors.NewNotFound("org_unit_not_found", "org unit not found").
		WithDetails(map[string]any{"unitId": "abc"})
	require.NoError(t, WriteServiceError(rec, err))

	require.Equal(t, 404, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "org_unit_not_found", envelope.Code)
	require.Equal(t, "abc", envelope.Details["unitId"])
}

func TestWriteServiceError_Unknown(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteServiceError(rec, errors.New("boom")))

	require.Equal(t, 500, rec.Code)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "internal", envelope.Code)
}
