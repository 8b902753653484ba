package gallery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-room-kit/pkg/domain"
	"github.com/shouni/gemini-room-kit/pkg/imgutil"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// Sample はサンプルギャラリーの1項目です。Locator は http(s) URL または gs:// URI です。
type Sample struct {
	Name    string
	Locator string
}

// Samples はギャラリーに表示する部屋写真の静的リストを返すのだ。
func Samples() []Sample {
	return []Sample{
		{Name: "Living Room", Locator: "gs://gemini-room-kit-samples/living-room.jpg"},
		{Name: "Bedroom", Locator: "gs://gemini-room-kit-samples/bedroom.jpg"},
		{Name: "Kitchen", Locator: "gs://gemini-room-kit-samples/kitchen.jpg"},
	}
}

// Resolver はロケーターを ImageRef に解決します。
// gs:// は remoteio、http(s) は SSRF 検証のうえ httpkit を使います。
type Resolver struct {
	httpClient httpkit.ClientInterface
	reader     remoteio.InputReader
}

// NewResolver は依存関係を注入して Resolver を初期化するのだ。
func NewResolver(httpClient httpkit.ClientInterface, reader remoteio.InputReader) (*Resolver, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	return &Resolver{httpClient: httpClient, reader: reader}, nil
}

// ResolveSample は名前でサンプルを引き、その画像を取得します。
func (r *Resolver) ResolveSample(ctx context.Context, name string) (*domain.ImageRef, error) {
	for _, s := range Samples() {
		if s.Name == name {
			return r.Resolve(ctx, s.Locator)
		}
	}
	return nil, domain.InputFailure(fmt.Sprintf("サンプル %q は見つかりませんでした", name))
}

// Resolve はロケーターから画像バイトを取得して ImageRef を組み立てます。
// 取得したデータが画像でない場合はハード失敗です。
func (r *Resolver) Resolve(ctx context.Context, locator string) (*domain.ImageRef, error) {
	data, err := r.fetch(ctx, locator)
	if err != nil {
		return nil, domain.HardFailure("サンプル画像の取得に失敗しました", err)
	}

	mimeType := imgutil.DetectMIME(data)
	if !strings.HasPrefix(mimeType, "image/") {
		slog.WarnContext(ctx, "取得データが画像ではありませんでした", "locator", locator, "detected_mime_type", mimeType)
		return nil, domain.HardFailure("取得したデータを画像として解釈できませんでした", nil)
	}

	return &domain.ImageRef{Data: data, MIMEType: mimeType}, nil
}

func (r *Resolver) fetch(ctx context.Context, locator string) ([]byte, error) {
	if strings.HasPrefix(locator, "gs://") {
		rc, err := r.reader.Open(ctx, locator)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if safe, err := isSafeURL(locator); !safe || err != nil {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	return r.httpClient.FetchBytes(ctx, locator)
}
