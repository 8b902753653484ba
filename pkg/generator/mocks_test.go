package generator

import (
	"context"
	"time"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"google.golang.org/genai"
)

// --- Mocks ---

// mockAIClient は gemini.GenerativeModel のテスト用モックなのだ。
// 未使用メソッドは埋め込みインターフェースに解決させます。
type mockAIClient struct {
	gemini.GenerativeModel

	resp *gemini.Response
	err  error

	lastModel string
	lastParts []*genai.Part
	lastOpts  gemini.GenerateOptions
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	m.lastModel = model
	m.lastParts = parts
	m.lastOpts = opts
	return m.resp, m.err
}

// responseWithParts は指定パーツを持つ応答を組み立てるヘルパーなのだ。
func responseWithParts(parts ...*genai.Part) *gemini.Response {
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: parts},
			}},
		},
	}
}

func textPart(text string) *genai.Part {
	return &genai.Part{Text: text}
}

func imagePart(data []byte) *genai.Part {
	return &genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: data}}
}

// mockVideoModel は VideoModel のテスト用モックなのだ。
// pollsUntilDone 回のポーリング後に完了になります。
type mockVideoModel struct {
	pollsUntilDone int
	result         *genai.GenerateVideosResponse

	startErr error
	pollErr  error

	startCalls int
	pollCalls  int
	lastPrompt string
}

func (m *mockVideoModel) StartJob(ctx context.Context, model, prompt string, image *genai.Image, cfg *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	m.startCalls++
	m.lastPrompt = prompt
	if m.startErr != nil {
		return nil, m.startErr
	}
	if m.pollsUntilDone == 0 {
		return &genai.GenerateVideosOperation{Done: true, Response: m.result}, nil
	}
	return &genai.GenerateVideosOperation{}, nil
}

func (m *mockVideoModel) PollJob(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	m.pollCalls++
	if m.pollErr != nil {
		return nil, m.pollErr
	}
	if m.pollCalls >= m.pollsUntilDone {
		return &genai.GenerateVideosOperation{Done: true, Response: m.result}, nil
	}
	return &genai.GenerateVideosOperation{}, nil
}

// mockHTTPClient は httpkit.ClientInterface のテスト用モックなのだ。
// 未使用メソッドは埋め込みインターフェースに解決させます。
type mockHTTPClient struct {
	httpkit.ClientInterface

	data []byte
	err  error

	lastURL string
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.lastURL = url
	return m.data, m.err
}

// fakeClock はテストで実時間を待たないための Clock 実装なのだ。
// バッファ済みのティックを順に払い出します。
type fakeClock struct {
	ticks chan time.Time
}

func newFakeClock(buffered int) *fakeClock {
	c := &fakeClock{ticks: make(chan time.Time, buffered)}
	for i := 0; i < buffered; i++ {
		c.ticks <- time.Now()
	}
	return c
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time { return c.ticks }
