package observability_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/automat/pkg/observability"
)

func TestMetrics_Exposition(t *testing.T) {
	m := observability.NewMetrics()

	m.ObserveProcess("div3", 4, true, nil)
	m.ObserveProcess("div3", 2, false, nil)
	m.ObserveProcess("div3", 1, false, errors.New("invalid symbol"))
	m.ObserveCompile(nil)
	m.ObserveCompile(errors.New("incomplete"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `automat_sequences_processed_total{machine="div3",result="accepted"} 1`)
	assert.Contains(t, body, `automat_sequences_processed_total{machine="div3",result="rejected"} 1`)
	assert.Contains(t, body, `automat_sequences_processed_total{machine="div3",result="error"} 1`)
	assert.Contains(t, body, `automat_symbols_consumed_total{machine="div3"} 7`)
	assert.Contains(t, body, `automat_definition_compiles_total{result="ok"} 1`)
	assert.Contains(t, body, `automat_definition_compiles_total{result="error"} 1`)
}
