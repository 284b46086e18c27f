package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/toolness/nycdb-fun/pkg/errors"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		class error
	}{
		{"missing table", pkgerrors.NewNotFoundError("table", "hpd_violations"), pkgerrors.ErrNotFound},
		{"unknown type", pkgerrors.NewValidationError("data_type", "money", "unrecognized catalog type"), pkgerrors.ErrInvalid},
		{"array without element type", pkgerrors.NewInconsistencyError("catalog", "hpd_violations", "tags", "no element type"), pkgerrors.ErrInconsistent},
		{"offline source", pkgerrors.NewUnavailableError("NYC Open Data", "pluto_18v1.json", nil), pkgerrors.ErrSourceUnavailable},
		{"view gone", pkgerrors.NewHTTPError("NYC Open Data", "https://data.cityofnewyork.us/api/views/x", http.StatusNotFound), pkgerrors.ErrNotFound},
		{"throttled", pkgerrors.NewHTTPError("NYC Open Data", "https://data.cityofnewyork.us/api/views/x", http.StatusTooManyRequests), pkgerrors.ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("reconcile: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.class)
		})
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{pkgerrors.NewNotFoundError("table", "pluto_18v1"), `table "pluto_18v1" not found`},
		{pkgerrors.NewValidationError("db_driver", "mysql", "must be one of pgx, pgdriver"), "invalid db_driver mysql: must be one of pgx, pgdriver"},
		{&pkgerrors.ValidationError{Message: "empty manifest"}, "invalid value: empty manifest"},
		{pkgerrors.NewInconsistencyError("render", "hpd_violations", "", "no columns"), "render inconsistency at hpd_violations: no columns"},
		{pkgerrors.NewInconsistencyError("render", "", "", "nothing to render"), "render inconsistency: nothing to render"},
		{pkgerrors.NewConfigError("database", "database URL is not set", nil), "config: database: database URL is not set"},
		{pkgerrors.WrapParse("yaml", "datasets.yml", errors.New("bad indentation")), "datasets.yml: malformed yaml: bad indentation"},
		{&pkgerrors.ParseError{Format: "json", Message: "unexpected EOF"}, "malformed json: unexpected EOF"},
		{pkgerrors.WrapResource("query", "catalog", "public", errors.New("timeout")), "query catalog public: timeout"},
		{pkgerrors.NewHTTPError("manifest", "https://example.com/datasets.yml", http.StatusBadGateway), "manifest: GET https://example.com/datasets.yml: 502 Bad Gateway"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestUnwrapChain(t *testing.T) {
	cause := pkgerrors.NewHTTPError("NYC Open Data", "https://data.cityofnewyork.us/api/views/x", http.StatusServiceUnavailable)
	err := pkgerrors.NewUnavailableError("NYC Open Data", "pluto_18v1.json", cause)

	assert.True(t, pkgerrors.IsSourceUnavailable(err))
	assert.False(t, pkgerrors.IsNotFound(err))

	var httpErr *pkgerrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
}

func TestConnectionFailure(t *testing.T) {
	base := errors.New("connection refused")
	err := &pkgerrors.HTTPError{Source: "manifest", URL: "https://example.com", Err: base}

	assert.Equal(t, "manifest: GET https://example.com: connection refused", err.Error())
	assert.ErrorIs(t, err, base)
	assert.False(t, pkgerrors.IsNotFound(err))
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
	assert.NoError(t, pkgerrors.WrapResource("open", "catalog", "", nil))

	err := pkgerrors.WrapIO("read", "data/pluto_18v1.json", errors.New("permission denied"))
	var ioErr *pkgerrors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
	assert.Equal(t, "data/pluto_18v1.json", ioErr.Path)
}
