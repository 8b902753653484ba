package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shouni/gemini-room-kit/pkg/domain"
	"github.com/shouni/gemini-room-kit/pkg/prompt"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"google.golang.org/genai"
)

// VideoPollInterval はジョブ状態を確認する固定間隔です。
const VideoPollInterval = 10 * time.Second

// TourDirector はスタイル済み画像からウォークスルー動画を生成します。
// ジョブ開始→固定間隔ポーリング→完了時に一時リンクから動画バイトを取得、の流れです。
// 全体のタイムアウトは持たず、打ち切りは ctx のキャンセルのみに従います。
type TourDirector struct {
	videoModel VideoModel
	httpClient httpkit.ClientInterface
	apiKey     string
	model      string

	pollInterval time.Duration
	clock        Clock
}

// NewTourDirector は依存関係を注入して TourDirector を初期化するのだ。
// apiKey は完了時の一時ダウンロードリンクの取得に必要です。
func NewTourDirector(videoModel VideoModel, httpClient httpkit.ClientInterface, apiKey, model string) (*TourDirector, error) {
	if videoModel == nil {
		return nil, fmt.Errorf("videoModel is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	return &TourDirector{
		videoModel:   videoModel,
		httpClient:   httpClient,
		apiKey:       apiKey,
		model:        model,
		pollInterval: VideoPollInterval,
		clock:        realClock{},
	}, nil
}

// GenerateVideoTour はスタイル済み画像を動画生成ジョブへ投入し、完了まで待って
// 動画バイトを返します。取得失敗や空の結果リンクはハード失敗です。
func (d *TourDirector) GenerateVideoTour(ctx context.Context, styled domain.ImageRef) (*domain.VideoResult, error) {
	if len(styled.Data) == 0 {
		return nil, domain.PreconditionFailure("動画を生成する前に、まずスタイルを適用してください")
	}

	image := &genai.Image{ImageBytes: styled.Data, MIMEType: styled.MIMEType}
	cfg := &genai.GenerateVideosConfig{NumberOfVideos: 1}

	op, err := d.videoModel.StartJob(ctx, d.model, prompt.VideoTourPrompt, image, cfg)
	if err != nil {
		return nil, domain.HardFailure("動画生成ジョブの開始に失敗しました", err)
	}
	slog.InfoContext(ctx, "動画生成ジョブを開始しました", "model", d.model)

	for !op.Done {
		select {
		case <-ctx.Done():
			return nil, domain.HardFailure("動画生成が中断されました", ctx.Err())
		case <-d.clock.After(d.pollInterval):
		}

		op, err = d.videoModel.PollJob(ctx, op)
		if err != nil {
			return nil, domain.HardFailure("動画生成ジョブの状態取得に失敗しました", err)
		}
	}

	return d.extractVideo(ctx, op)
}

// extractVideo は完了済みジョブから動画バイトを取り出します。
// インラインのバイト列があればそれを使い、なければ一時リンクを API キー付きで取得します。
func (d *TourDirector) extractVideo(ctx context.Context, op *genai.GenerateVideosOperation) (*domain.VideoResult, error) {
	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 || op.Response.GeneratedVideos[0].Video == nil {
		return nil, domain.HardFailure("動画が生成されませんでした", nil)
	}
	video := op.Response.GeneratedVideos[0].Video

	mimeType := video.MIMEType
	if mimeType == "" {
		mimeType = "video/mp4"
	}

	if len(video.VideoBytes) > 0 {
		return &domain.VideoResult{Data: video.VideoBytes, MIMEType: mimeType}, nil
	}

	if video.URI == "" {
		return nil, domain.HardFailure("動画のダウンロードリンクが空でした", nil)
	}

	// 一時リンクは API キーを付与しないと取得できない
	uri := video.URI
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	data, err := d.httpClient.FetchBytes(ctx, uri+sep+"key="+d.apiKey)
	if err != nil {
		return nil, domain.HardFailure("動画のダウンロードに失敗しました", err)
	}
	if len(data) == 0 {
		return nil, domain.HardFailure("ダウンロードした動画が空でした", nil)
	}

	return &domain.VideoResult{Data: data, MIMEType: mimeType}, nil
}

// GenaiVideoModel は google.golang.org/genai のクライアントを VideoModel に適合させる
// 薄いアダプターです。
type GenaiVideoModel struct {
	client *genai.Client
}

// NewGenaiVideoModel は genai クライアントを包んで GenaiVideoModel を初期化するのだ。
func NewGenaiVideoModel(client *genai.Client) (*GenaiVideoModel, error) {
	if client == nil {
		return nil, fmt.Errorf("client is required")
	}
	return &GenaiVideoModel{client: client}, nil
}

func (m *GenaiVideoModel) StartJob(ctx context.Context, model, videoPrompt string, image *genai.Image, cfg *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error) {
	return m.client.Models.GenerateVideos(ctx, model, videoPrompt, image, cfg)
}

func (m *GenaiVideoModel) PollJob(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
	return m.client.Operations.GetVideosOperation(ctx, op, nil)
}
