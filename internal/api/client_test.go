package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estantelabs/estante/internal/model"
)

func TestClient_FetchBooks(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantCount int
		wantErr   func(t *testing.T, err error)
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/livros", r.URL.Path)
				_, _ = w.Write([]byte(`{"success": true, "livros": [
					{"id": 1, "titulo": "Cujo", "genero": "horror", "tipo": "ficcao", "nivel": "intermediario"},
					{"id": 2, "titulo": "Duna", "genero": "fantasia", "tipo": "ficcao", "nivel": "avancado"}
				], "total": 2}`))
			},
			wantCount: 2,
		},
		{
			name: "empty list is still success",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success": true, "livros": [], "total": 0}`))
			},
			wantCount: 0,
		},
		{
			name: "http failure surfaces as APIError",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"success": false, "error": "banco indisponível"}`))
			},
			wantErr: func(t *testing.T, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
				assert.Equal(t, "banco indisponível", apiErr.Message)
				assert.False(t, Recoverable(err))
			},
		},
		{
			name: "success flag false is a protocol failure",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success": false}`))
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, IsProtocol(err))
				assert.True(t, Recoverable(err))
			},
		},
		{
			name: "missing livros field is a protocol failure",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"success": true}`))
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, IsProtocol(err))
			},
		},
		{
			name: "garbage body is a protocol failure",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`<html>nope</html>`))
			},
			wantErr: func(t *testing.T, err error) {
				assert.True(t, IsProtocol(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL)
			books, err := client.FetchBooks(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				tt.wantErr(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, books, tt.wantCount)
		})
	}
}

func TestClient_FetchBooks_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL)
	_, err := client.FetchBooks(context.Background())

	require.Error(t, err)
	assert.True(t, IsNetwork(err))
	assert.True(t, Recoverable(err))
}

func TestClient_FetchStatistics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/estatisticas", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "estatisticas": {
			"total_livros": 21,
			"total_generos": 7,
			"generos": {"fantasia": 8, "horror": 4},
			"tipos": {"ficcao": 18, "nao_ficcao": 3},
			"niveis": {"iniciante": 5, "intermediario": 8, "avancado": 8}
		}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	stats, err := client.FetchStatistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 21, stats.TotalBooks)
	assert.Equal(t, 7, stats.TotalGenres)
	assert.Equal(t, 8, stats.Genres["fantasia"])
	assert.Equal(t, 3, stats.Types[model.TypeNonFiction])
}

func TestClient_FetchRecommendations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/recomendacoes/perfil", r.URL.Path)

		var query model.RecommendationQuery
		require.NoError(t, decodeBody(r, &query))
		assert.Equal(t, "fantasia", query.Genre)
		assert.Equal(t, 6, query.TopN)

		_, _ = w.Write([]byte(`{"success": true, "recomendacoes": [
			{"id": 3, "titulo": "O Hobbit", "genero": "fantasia", "tipo": "ficcao",
			 "nivel": "iniciante", "score_similaridade": 0.83, "ano_publicacao": "N/A"}
		], "total": 1}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	profile := model.UserProfile{Name: "Ana", Genre: "fantasia", Type: model.TypeFiction, Level: model.LevelBeginner}
	recs, err := client.FetchRecommendations(context.Background(), profile.Query(0))

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "O Hobbit", recs[0].Title)
	assert.InDelta(t, 0.83, recs[0].Score, 0.0001)
	assert.False(t, recs[0].Year.Known())
}

func TestClient_FetchRecommendations_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "error": "Gênero, tipo e nível são obrigatórios"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.FetchRecommendations(context.Background(), model.RecommendationQuery{TopN: 6})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "obrigatórios")
	// The recommendation path never recovers via fallback data.
	assert.False(t, Recoverable(err))
}

func TestClient_CheckHealth(t *testing.T) {
	t.Run("online", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/", r.URL.Path)
			_, _ = w.Write([]byte(`{"message": "ok", "status": "online"}`))
		}))
		defer srv.Close()

		assert.NoError(t, NewClient(srv.URL).CheckHealth(context.Background()))
	})

	t.Run("offline", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		err := NewClient(srv.URL).CheckHealth(context.Background())
		assert.True(t, IsNetwork(err))
	})
}

func TestClient_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(srv.URL)
	for i := 0; i < 10; i++ {
		_, err := client.FetchBooks(context.Background())
		require.Error(t, err)
		// Every failure, tripped breaker included, stays a network failure
		// from the caller's point of view.
		assert.True(t, IsNetwork(err), "attempt %d", i)
	}
}

func decodeBody(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}
