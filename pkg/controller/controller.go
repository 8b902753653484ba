package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shouni/gemini-room-kit/pkg/domain"
	"github.com/shouni/gemini-room-kit/pkg/gallery"
	"github.com/shouni/gemini-room-kit/pkg/generator"
	"github.com/shouni/gemini-room-kit/pkg/prompt"
	"github.com/shouni/gemini-room-kit/pkg/session"
)

// Outcome は1コマンド処理の結果として描画層へ返す情報です。
// View には処理後の最新スナップショットが必ず入ります。
type Outcome struct {
	Message string
	Text    string              // 提案・費用見積りなどのテキスト結果
	Video   *domain.VideoResult // 動画生成コマンドの結果
	View    session.Snapshot
}

// Controller は利用者操作をセッション状態の変更と生成呼び出しへ配線する唯一の主体です。
//
// 失敗はすべてここで domain.Failure として呼び出し側へ返り、プロセスを落とすことは
// ありません。描画層は domain.UserMessage(err) をインライン表示するだけです。
// スタイリングと動画生成は同時に1つしか実行できません（2つ目は前提条件失敗）。
type Controller struct {
	session *session.Session
	styler  generator.RoomStyler
	tours   generator.TourGenerator
	gallery *gallery.Resolver

	// onWait は待機メッセージの通知先（nil 可）。生成処理の進行はブロックしません。
	onWait func(string)

	busy chan struct{} // 容量1。生成系操作の相互排他に使う
}

// NewController は依存関係を注入して Controller を初期化するのだ。
func NewController(sess *session.Session, styler generator.RoomStyler, tours generator.TourGenerator, resolver *gallery.Resolver, onWait func(string)) (*Controller, error) {
	if sess == nil {
		return nil, fmt.Errorf("session is required")
	}
	if styler == nil {
		return nil, fmt.Errorf("styler is required")
	}
	if tours == nil {
		return nil, fmt.Errorf("tours is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	return &Controller{
		session: sess,
		styler:  styler,
		tours:   tours,
		gallery: resolver,
		onWait:  onWait,
		busy:    make(chan struct{}, 1),
	}, nil
}

// Dispatch は1つのコマンドを処理します。エラー時も View は常に最新です。
func (c *Controller) Dispatch(ctx context.Context, cmd Command) (*Outcome, error) {
	switch cmd := cmd.(type) {
	case UploadCommand:
		return c.setBase(&cmd.Image, "写真を読み込みました")

	case PickSampleCommand:
		img, err := c.gallery.ResolveSample(ctx, cmd.Name)
		if err != nil {
			return c.outcome(""), err
		}
		return c.setBase(img, fmt.Sprintf("サンプル %q を読み込みました", cmd.Name))

	case StyleCommand:
		return c.styleRoom(ctx, cmd)

	case GenerateVideoCommand:
		return c.generateVideo(ctx)

	case UndoCommand:
		if _, err := c.session.Undo(); err != nil {
			return c.outcome(""), err
		}
		return c.outcome("1つ前の状態に戻しました"), nil

	case RedoCommand:
		if _, err := c.session.Redo(); err != nil {
			return c.outcome(""), err
		}
		return c.outcome("やり直しました"), nil

	case SuggestCommand:
		return c.suggest(ctx)

	case EstimateCostCommand:
		return c.estimateCost(ctx)

	case ZoomInCommand:
		c.session.ZoomIn()
		return c.outcome(""), nil
	case ZoomOutCommand:
		c.session.ZoomOut()
		return c.outcome(""), nil
	case ResetZoomCommand:
		c.session.ResetZoom()
		return c.outcome(""), nil

	case BeginPanCommand:
		c.session.BeginPan(cmd.X, cmd.Y)
		return c.outcome(""), nil
	case PanToCommand:
		c.session.PanTo(cmd.X, cmd.Y)
		return c.outcome(""), nil
	case EndPanCommand:
		c.session.EndPan()
		return c.outcome(""), nil

	case ToggleComparisonCommand:
		if err := c.session.ToggleComparison(); err != nil {
			return c.outcome(""), err
		}
		return c.outcome(""), nil

	case SetSliderCommand:
		c.session.SetSliderPercent(cmd.Percent)
		return c.outcome(""), nil
	}

	return c.outcome(""), fmt.Errorf("unknown command: %T", cmd)
}

func (c *Controller) setBase(img *domain.ImageRef, message string) (*Outcome, error) {
	if img == nil || len(img.Data) == 0 {
		return c.outcome(""), domain.InputFailure("画像が空です")
	}
	c.session.SetBaseImage(img)
	return c.outcome(message), nil
}

// styleRoom はスタイリングの一連の流れを担当します:
// 入力検証 → 世代番号の控え → 待機メッセージ回転の開始 → リモート呼び出し →
// 世代が一致する場合のみ結果を反映。
func (c *Controller) styleRoom(ctx context.Context, cmd StyleCommand) (*Outcome, error) {
	snap := c.session.Snapshot()
	if snap.Current == nil {
		return c.outcome(""), domain.InputFailure("先に部屋の写真を選択してください")
	}
	if strings.TrimSpace(cmd.Instruction) == "" {
		return c.outcome(""), domain.InputFailure("スタイルの指示を入力してください")
	}

	release, err := c.acquire()
	if err != nil {
		return c.outcome(""), err
	}
	defer release()

	hint := ""
	if cmd.Click != nil {
		hint = prompt.PlacementHint(cmd.Click.X, cmd.Click.Y)
	}

	stopWait := c.startWaitMessages(ctx, prompt.StylingWaitMessages, prompt.StyleWaitInterval)
	result, err := c.styler.StyleRoom(ctx, *snap.Current, domain.StyleRequest{
		Instruction:   cmd.Instruction,
		PlacementHint: hint,
		Seed:          cmd.Seed,
	})
	stopWait()
	if err != nil {
		return c.outcome(""), err
	}

	if err := c.session.ApplyStyledResult(snap.Epoch, result.Image); err != nil {
		if errors.Is(err, session.ErrStaleResult) {
			// リモート呼び出し中に新しいベース画像が設定されたので、結果は捨てる
			slog.InfoContext(ctx, "古い世代のスタイル結果を破棄しました", "epoch", snap.Epoch)
			return c.outcome("新しい写真が選択されたため、前の結果を破棄しました"), nil
		}
		return c.outcome(""), err
	}

	message := result.Message
	if message == "" {
		message = "スタイルを適用しました"
	}
	return c.outcome(message), nil
}

func (c *Controller) generateVideo(ctx context.Context) (*Outcome, error) {
	snap := c.session.Snapshot()
	if snap.LastStyled == nil {
		return c.outcome(""), domain.PreconditionFailure("動画を生成する前に、まずスタイルを適用してください")
	}

	release, err := c.acquire()
	if err != nil {
		return c.outcome(""), err
	}
	defer release()

	stopWait := c.startWaitMessages(ctx, prompt.VideoWaitMessages, prompt.VideoWaitInterval)
	video, err := c.tours.GenerateVideoTour(ctx, *snap.LastStyled)
	stopWait()
	if err != nil {
		return c.outcome(""), err
	}

	out := c.outcome("ウォークスルー動画が完成しました")
	out.Video = video
	return out, nil
}

func (c *Controller) suggest(ctx context.Context) (*Outcome, error) {
	snap := c.session.Snapshot()
	if snap.Current == nil {
		return c.outcome(""), domain.InputFailure("先に部屋の写真を選択してください")
	}

	text, err := c.styler.SuggestIdeas(ctx, *snap.Current)
	if err != nil {
		return c.outcome(""), err
	}
	out := c.outcome("")
	out.Text = text
	return out, nil
}

func (c *Controller) estimateCost(ctx context.Context) (*Outcome, error) {
	snap := c.session.Snapshot()
	if snap.Original == nil || snap.LastStyled == nil {
		return c.outcome(""), domain.PreconditionFailure("費用を見積もる前に、まずスタイルを適用してください")
	}

	text, err := c.styler.EstimateCost(ctx, *snap.Original, *snap.LastStyled)
	if err != nil {
		return c.outcome(""), err
	}
	out := c.outcome("")
	out.Text = text
	return out, nil
}

// acquire は生成系操作の排他スロットを取得します。取得できない場合は
// 別の生成処理が実行中なので、即座に前提条件失敗を返します。
func (c *Controller) acquire() (func(), error) {
	select {
	case c.busy <- struct{}{}:
		return func() { <-c.busy }, nil
	default:
		return nil, domain.PreconditionFailure("別の生成処理が実行中です。完了までお待ちください")
	}
}

// startWaitMessages は待機メッセージの回転を開始し、停止用の関数を返します。
func (c *Controller) startWaitMessages(ctx context.Context, messages []string, interval time.Duration) func() {
	if c.onWait == nil {
		return func() {}
	}
	rctx, cancel := context.WithCancel(ctx)
	rot := generator.NewRotator(messages, interval)
	go rot.Run(rctx, c.onWait)
	return cancel
}

func (c *Controller) outcome(message string) *Outcome {
	return &Outcome{Message: message, View: c.session.Snapshot()}
}
