package generator

import (
	"context"
	"time"

	"github.com/shouni/gemini-room-kit/pkg/domain"
	"google.golang.org/genai"
)

// RoomStyler はビジネスロジック層が利用する画像スタイリングの統合窓口です。
type RoomStyler interface {
	// StyleRoom は現在表示中の画像（前回のスタイル結果でもよい）に指示文を適用します。
	StyleRoom(ctx context.Context, base domain.ImageRef, req domain.StyleRequest) (*domain.StyleResult, error)
	// SuggestIdeas は部屋写真に対するリスタイリング案のテキストを生成します。
	SuggestIdeas(ctx context.Context, img domain.ImageRef) (string, error)
	// EstimateCost は元画像とスタイル済み画像から概算費用のテキストを生成します。
	EstimateCost(ctx context.Context, original, styled domain.ImageRef) (string, error)
}

// TourGenerator はウォークスルー動画生成の窓口です。
type TourGenerator interface {
	GenerateVideoTour(ctx context.Context, styled domain.ImageRef) (*domain.VideoResult, error)
}

// VideoModel は Veo 動画生成ジョブの開始とポーリングを抽象化するインターフェースです。
type VideoModel interface {
	// StartJob は動画生成ジョブを開始し、ジョブハンドルを返します。
	StartJob(ctx context.Context, model, prompt string, image *genai.Image, cfg *genai.GenerateVideosConfig) (*genai.GenerateVideosOperation, error)
	// PollJob はジョブの最新状態を取得します。
	PollJob(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error)
}

// Clock は時間経過を抽象化し、テストで実時間を待たずにポーリングや
// メッセージローテーションを検証できるようにします。
type Clock interface {
	After(d time.Duration) <-chan time.Time
}
