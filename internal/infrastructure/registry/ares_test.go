package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/morvy/kybernaut-ic-dic/internal/domain/shared"
)

func newAresAdapter(t *testing.T, handler http.HandlerFunc) *AresAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAresAdapter(AresConfig{BaseURL: server.URL, TimeoutSeconds: 2}, zap.NewNop())
}

func TestAresAdapter_FindByBusinessID(t *testing.T) {
	adapter := newAresAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ekonomicke-subjekty/25596641", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ico": "25596641",
			"obchodniJmeno": "ACME s.r.o.",
			"dic": "CZ25596641",
			"sidlo": {
				"nazevUlice": "Vodickova",
				"cisloDomovni": 704,
				"cisloOrientacni": 36,
				"nazevObce": "Praha",
				"psc": 11000
			}
		}`))
	})

	info, err := adapter.FindByBusinessID(context.Background(), "25596641")

	require.NoError(t, err)
	assert.Equal(t, "25596641", info.BusinessID)
	assert.Equal(t, "ACME s.r.o.", info.Name)
	assert.Equal(t, "CZ25596641", info.TaxID)
	assert.Equal(t, "Vodickova 704/36", info.Address)
	assert.Equal(t, "Praha", info.City)
	assert.Equal(t, "11000", info.Postcode)
}

func TestAresAdapter_FindByBusinessID_NoStreetName(t *testing.T) {
	adapter := newAresAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"ico": "10000038",
			"obchodniJmeno": "Statek Lhota",
			"sidlo": {"cisloDomovni": 12, "nazevObce": "Lhota", "psc": 27714}
		}`))
	})

	info, err := adapter.FindByBusinessID(context.Background(), "10000038")

	require.NoError(t, err)
	assert.Equal(t, "Lhota 12", info.Address)
	assert.Equal(t, "Lhota", info.City)
	assert.Equal(t, "27714", info.Postcode)
}

func TestAresAdapter_FindByBusinessID_NotFound(t *testing.T) {
	adapter := newAresAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	info, err := adapter.FindByBusinessID(context.Background(), "11111119")

	assert.Nil(t, info)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAresAdapter_FindByBusinessID_ServerError(t *testing.T) {
	adapter := newAresAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	info, err := adapter.FindByBusinessID(context.Background(), "25596641")

	assert.Nil(t, info)
	require.Error(t, err)
	assert.NotErrorIs(t, err, shared.ErrNotFound)
	assert.Contains(t, err.Error(), "503")
}

func TestAresAdapter_FindByBusinessID_TransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	adapter := NewAresAdapter(AresConfig{BaseURL: server.URL, TimeoutSeconds: 1}, zap.NewNop())

	info, err := adapter.FindByBusinessID(context.Background(), "25596641")

	assert.Nil(t, info)
	assert.Error(t, err)
}

func TestAresConfig_Defaults(t *testing.T) {
	adapter := NewAresAdapter(AresConfig{}, zap.NewNop())

	assert.Equal(t, DefaultAresBaseURL, adapter.config.BaseURL)
	assert.Equal(t, 10, adapter.config.TimeoutSeconds)
}
