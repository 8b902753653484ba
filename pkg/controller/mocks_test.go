package controller

import (
	"bytes"
	"context"
	"io"

	"github.com/shouni/gemini-room-kit/pkg/domain"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// --- Mocks ---

// mockStyler は generator.RoomStyler のテスト用モックなのだ。
// onStyle を使うと、リモート呼び出し中の割り込み（新しいベース画像設定など）を再現できます。
type mockStyler struct {
	result *domain.StyleResult
	err    error

	suggestText string
	costText    string

	onStyle     func()
	lastRequest domain.StyleRequest
	styleCalls  int
}

func (m *mockStyler) StyleRoom(ctx context.Context, base domain.ImageRef, req domain.StyleRequest) (*domain.StyleResult, error) {
	m.styleCalls++
	m.lastRequest = req
	if m.onStyle != nil {
		m.onStyle()
	}
	return m.result, m.err
}

func (m *mockStyler) SuggestIdeas(ctx context.Context, img domain.ImageRef) (string, error) {
	return m.suggestText, m.err
}

func (m *mockStyler) EstimateCost(ctx context.Context, original, styled domain.ImageRef) (string, error) {
	return m.costText, m.err
}

// mockTours は generator.TourGenerator のテスト用モックなのだ。
type mockTours struct {
	result *domain.VideoResult
	err    error

	// started と release を設定すると完了まで呼び出し元をブロックできる
	started chan struct{}
	release chan struct{}

	calls int
}

func (m *mockTours) GenerateVideoTour(ctx context.Context, styled domain.ImageRef) (*domain.VideoResult, error) {
	m.calls++
	if m.started != nil {
		close(m.started)
	}
	if m.release != nil {
		<-m.release
	}
	return m.result, m.err
}

// gallery.Resolver は具象型なので、実物を httpkit / remoteio のモックで組み立てる。

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func fakePNG() []byte {
	return append(append([]byte{}, pngHeader...), []byte("fake-image-body")...)
}

type mockHTTPClient struct {
	httpkit.ClientInterface

	data []byte
	err  error
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	return m.data, m.err
}

type mockReader struct {
	remoteio.InputReader

	data []byte
	err  error
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	return nil
}
