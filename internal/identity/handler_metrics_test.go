package identity

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegister_TypeMismatchRecordsValidationOutcome(t *testing.T) {
	repo := newMockRepository()
	handler := NewHandler(NewService(repo, &mockHasher{}, Config{}), Pages{Error: "/auth/error", Landing: "/"})

	before := testutil.ToFloat64(registrationsTotal.WithLabelValues(OutcomeValidation))

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":["a@example.com"]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email must be a string")
	assert.Equal(t, before+1, testutil.ToFloat64(registrationsTotal.WithLabelValues(OutcomeValidation)))
	assert.Equal(t, 0, repo.getCalls)
}
