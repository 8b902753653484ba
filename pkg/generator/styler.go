package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-room-kit/pkg/domain"
	"github.com/shouni/gemini-room-kit/pkg/imgutil"
	"github.com/shouni/gemini-room-kit/pkg/prompt"
	"github.com/shouni/gemini-room-kit/pkg/utils"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

const (
	UseImageCompression     = true
	ImageCompressionQuality = 75
)

// GeminiRoomStyler は部屋写真のスタイリングとテキスト生成（提案・費用見積り）を
// 1つの Gemini クライアントで担当します。呼び出しごとにステートレスです。
type GeminiRoomStyler struct {
	aiClient gemini.GenerativeModel
	model    string
}

// NewGeminiRoomStyler は依存関係を注入して GeminiRoomStyler を初期化するのだ。
func NewGeminiRoomStyler(aiClient gemini.GenerativeModel, model string) (*GeminiRoomStyler, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	return &GeminiRoomStyler{aiClient: aiClient, model: model}, nil
}

// StyleRoom は base（現在表示中の画像）に指示文と配置ヒントを適用します。
// 応答に画像が含まれない場合はソフト失敗、通信エラーはハード失敗になり、
// いずれの場合も呼び出し側の状態は変更されません。
func (g *GeminiRoomStyler) StyleRoom(ctx context.Context, base domain.ImageRef, req domain.StyleRequest) (*domain.StyleResult, error) {
	if strings.TrimSpace(req.Instruction) == "" {
		return nil, domain.InputFailure("スタイルの指示を入力してください")
	}
	if len(base.Data) == 0 {
		return nil, domain.InputFailure("先に部屋の写真を選択してください")
	}

	instruction := prompt.BuildInstruction(req.Instruction, req.PlacementHint)

	imgPart := g.toImagePart(base)
	if imgPart == nil {
		return nil, domain.HardFailure("選択されたデータを画像として解釈できませんでした", nil)
	}
	parts := []*genai.Part{{Text: instruction}, imgPart}

	if req.Seed != nil {
		slog.DebugContext(ctx, "シードを固定してスタイリングします", "seed", utils.DereferenceSeed(req.Seed))
	}

	opts := gemini.GenerateOptions{Seed: req.Seed}
	resp, err := g.aiClient.GenerateWithParts(ctx, g.model, parts, opts)
	if err != nil {
		return nil, domain.HardFailure("スタイリングのリクエストに失敗しました", err)
	}

	return parseStyleResponse(resp)
}

// SuggestIdeas は部屋写真からリスタイリング案のテキストを生成するのだ。
func (g *GeminiRoomStyler) SuggestIdeas(ctx context.Context, img domain.ImageRef) (string, error) {
	if len(img.Data) == 0 {
		return "", domain.InputFailure("先に部屋の写真を選択してください")
	}

	imgPart := g.toImagePart(img)
	if imgPart == nil {
		return "", domain.HardFailure("選択されたデータを画像として解釈できませんでした", nil)
	}
	parts := []*genai.Part{{Text: prompt.SuggestionPrompt}, imgPart}

	resp, err := g.aiClient.GenerateWithParts(ctx, g.model, parts, gemini.GenerateOptions{})
	if err != nil {
		return "", domain.HardFailure("提案の取得に失敗しました", err)
	}
	return collectText(resp)
}

// EstimateCost は元画像とスタイル済み画像の差分から概算費用テキストを生成するのだ。
func (g *GeminiRoomStyler) EstimateCost(ctx context.Context, original, styled domain.ImageRef) (string, error) {
	if len(original.Data) == 0 || len(styled.Data) == 0 {
		return "", domain.PreconditionFailure("費用を見積もる前に、まずスタイルを適用してください")
	}

	beforePart := g.toImagePart(original)
	afterPart := g.toImagePart(styled)
	if beforePart == nil || afterPart == nil {
		return "", domain.HardFailure("画像の変換に失敗しました", nil)
	}
	parts := []*genai.Part{{Text: prompt.CostEstimatePrompt}, beforePart, afterPart}

	resp, err := g.aiClient.GenerateWithParts(ctx, g.model, parts, gemini.GenerateOptions{})
	if err != nil {
		return "", domain.HardFailure("費用見積りの取得に失敗しました", err)
	}
	return collectText(resp)
}

// toImagePart は ImageRef を genai.Part (InlineData) へ変換します。
// 転送量削減のため、送信前に JPEG 圧縮を試みます（失敗時は元データのまま）。
func (g *GeminiRoomStyler) toImagePart(img domain.ImageRef) *genai.Part {
	data := img.Data
	mimeType := img.MIMEType

	if UseImageCompression {
		if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil {
			data = compressed
			mimeType = "image/jpeg"
		}
	}

	if mimeType == "" {
		mimeType = imgutil.DetectMIME(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil
	}
	return &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}
}

// parseStyleResponse は Gemini の応答から画像1枚と付随テキストを取り出します。
// テキストのみで画像がない応答はソフト失敗として報告します。
func parseStyleResponse(resp *gemini.Response) (*domain.StyleResult, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return nil, domain.HardFailure("Geminiからの有効な応答がありませんでした", nil)
	}

	// 現在の仕様では、最初の候補 (Candidate) のみを利用する。
	candidate := resp.RawResponse.Candidates[0]

	var image *domain.ImageRef
	var texts []string
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			switch {
			case part.InlineData != nil && len(part.InlineData.Data) > 0 && image == nil:
				image = &domain.ImageRef{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType}
			case part.Text != "":
				texts = append(texts, part.Text)
			}
		}
	}
	message := strings.TrimSpace(strings.Join(texts, "\n"))

	if image == nil {
		// 安全フィルター等によるブロックの確認
		if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
			return nil, domain.HardFailure(fmt.Sprintf("画像生成が異常終了しました (FinishReason: %s)", candidate.FinishReason), nil)
		}
		if message != "" {
			return nil, domain.SoftFailure("モデルは画像を返しませんでした: " + message)
		}
		return nil, domain.SoftFailure("モデルは画像を返しませんでした")
	}

	return &domain.StyleResult{Image: image, Message: message}, nil
}

// collectText は応答のテキストパーツをすべて連結して返します。
func collectText(resp *gemini.Response) (string, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return "", domain.HardFailure("Geminiからの有効な応答がありませんでした", nil)
	}

	var sb strings.Builder
	candidate := resp.RawResponse.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", domain.SoftFailure("モデルはテキストを返しませんでした")
	}
	return text, nil
}
