package imagepig

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// --- Mocks ---

// scriptedStep は scriptedDoer が 1 回の呼び出しで返す内容です。
type scriptedStep struct {
	status int
	body   string
	err    error
}

// scriptedDoer は台本どおりのレスポンスを順に返す Doer 実装です。
// 台本より多く呼ばれた場合は最後のステップを繰り返します。
type scriptedDoer struct {
	steps    []scriptedStep
	requests []*http.Request
}

func (d *scriptedDoer) Do(req *http.Request) (*http.Response, error) {
	d.requests = append(d.requests, req)
	if len(d.steps) == 0 {
		return nil, errors.New("scripted doer: no steps configured")
	}

	step := d.steps[0]
	if len(d.steps) > 1 {
		d.steps = d.steps[1:]
	}

	if step.err != nil {
		return nil, step.err
	}
	return &http.Response{
		StatusCode: step.status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(step.body)),
	}, nil
}

// brokenBodyDoer は 2xx を返すがボディの読み取りが失敗する Doer です。
type brokenBodyDoer struct {
	readErr error
}

func (d *brokenBodyDoer) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       io.NopCloser(&failingReader{err: d.readErr}),
	}, nil
}

type failingReader struct {
	err error
}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, r.err
}

type mockCache struct {
	data    map[string]any
	lastTTL time.Duration
}

func (m *mockCache) Get(key string) (any, bool) {
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	m.data[key] = value
	m.lastTTL = d
}

// newTestResponse は待機間隔を短縮した APIResponse を構築します。
func newTestResponse(content map[string]any, doer Doer) *APIResponse {
	return &APIResponse{
		content:       content,
		httpClient:    doer,
		retryInterval: time.Millisecond,
	}
}
