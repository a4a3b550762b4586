package imagepig

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("APIキーは必須", func(t *testing.T) {
		_, err := New("")
		require.Error(t, err)
	})

	t.Run("既定値で初期化される", func(t *testing.T) {
		client, err := New("key")
		require.NoError(t, err)
		assert.Equal(t, "https://api.imagepig.com", client.apiURL)
		assert.NotNil(t, client.httpClient)
		assert.Nil(t, client.cache)
	})

	t.Run("WithAPIURLは末尾スラッシュを除去する", func(t *testing.T) {
		client, err := New("key", WithAPIURL("https://example.com/api/"))
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/api", client.apiURL)
	})

	t.Run("WithImageCacheでキャッシュが設定される", func(t *testing.T) {
		cache := &mockCache{data: map[string]any{}}
		client, err := New("key", WithImageCache(cache, 0))
		require.NoError(t, err)
		assert.Same(t, cache, client.cache)
	})
}

func TestClient_Call(t *testing.T) {
	t.Run("トランスポート障害はHTTPErrorに包まれる", func(t *testing.T) {
		cause := errors.New("connection refused")
		client, err := New("key", WithHTTPClient(&scriptedDoer{steps: []scriptedStep{{err: cause}}}))
		require.NoError(t, err)

		_, err = client.Generate(context.Background(), GenerateRequest{Prompt: "pig"})

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.ErrorIs(t, httpErr.Err, cause)
	})

	t.Run("JSONとして解析できないボディはErrUnexpectedResponse", func(t *testing.T) {
		client, err := New("key", WithHTTPClient(&scriptedDoer{steps: []scriptedStep{
			{status: http.StatusOK, body: "<html>not json</html>"},
		}}))
		require.NoError(t, err)

		_, err = client.Generate(context.Background(), GenerateRequest{Prompt: "pig"})
		require.ErrorIs(t, err, ErrUnexpectedResponse)
	})

	t.Run("非2xxでもJSONボディならハンドルとして返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			w.Write([]byte(`{"error":"out of credits"}`))
		}))
		t.Cleanup(server.Close)

		client := newTestClient(t, server)
		resp, err := client.Generate(context.Background(), GenerateRequest{Prompt: "pig"})

		require.NoError(t, err, "ステータスコードでは拒否しない")
		require.NotNil(t, resp)
		_, ok := resp.URL()
		assert.False(t, ok)
	})

	t.Run("キャンセルはctx.Err()として返る", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		t.Cleanup(server.Close)

		client := newTestClient(t, server)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.Generate(ctx, GenerateRequest{Prompt: "pig"})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("並行呼び出しで干渉しない", func(t *testing.T) {
		server, calls := newCaptureServer(t, `{"image_data":"aGVsbG8="}`)
		client := newTestClient(t, server)

		const workers = 8
		done := make(chan error, workers)
		for i := 0; i < workers; i++ {
			go func() {
				_, err := client.Generate(context.Background(), GenerateRequest{Prompt: "pig"})
				done <- err
			}()
		}
		for i := 0; i < workers; i++ {
			require.NoError(t, <-done)
		}
		assert.Equal(t, workers, calls.len())
	})
}
