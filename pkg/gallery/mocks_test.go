package gallery

import (
	"bytes"
	"context"
	"io"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// --- Mocks ---

// pngHeader は http.DetectContentType が PNG と判定する最小のシグネチャなのだ。
var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func fakePNG() []byte {
	return append(append([]byte{}, pngHeader...), []byte("fake-image-body")...)
}

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

type mockReader struct {
	remoteio.InputReader

	data []byte
	err  error

	lastURI string
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	m.lastURI = uri
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	return nil
}
