package controller

import (
	"github.com/shouni/gemini-room-kit/pkg/domain"
)

// Command は利用者操作を表す型付きコマンドです。
// 描画層のイベントコールバックは、対応するコマンドを組み立てて Dispatch へ渡すだけで、
// 状態遷移のロジックをここに閉じ込めたままテストできます。
type Command interface{ isCommand() }

// ClickPoint は表示画像に対する正規化クリック座標 ([0,1]×[0,1]) です。
type ClickPoint struct {
	X, Y float64
}

// UploadCommand はアップロードされた画像を新しいベース画像として設定します。
type UploadCommand struct {
	Image domain.ImageRef
}

// PickSampleCommand はサンプルギャラリーから名前で画像を選びます。
type PickSampleCommand struct {
	Name string
}

// StyleCommand は現在表示中の画像へスタイリングを要求します。
// Click が非 nil の場合、クリック位置から配置ヒントを導出して指示文に連結します。
type StyleCommand struct {
	Instruction string
	Click       *ClickPoint
	Seed        *int64
}

// GenerateVideoCommand は直近のスタイル済み画像からウォークスルー動画を生成します。
type GenerateVideoCommand struct{}

// UndoCommand / RedoCommand は履歴カーソルを移動します。
type UndoCommand struct{}
type RedoCommand struct{}

// SuggestCommand は現在の画像に対する AI のリスタイリング提案を取得します。
type SuggestCommand struct{}

// EstimateCostCommand は元画像とスタイル済み画像から概算費用を取得します。
type EstimateCostCommand struct{}

// ズーム・パン・比較表示の操作コマンド。
type ZoomInCommand struct{}
type ZoomOutCommand struct{}
type ResetZoomCommand struct{}

type BeginPanCommand struct{ X, Y float64 }
type PanToCommand struct{ X, Y float64 }
type EndPanCommand struct{}

type ToggleComparisonCommand struct{}
type SetSliderCommand struct{ Percent float64 }

func (UploadCommand) isCommand()           {}
func (PickSampleCommand) isCommand()       {}
func (StyleCommand) isCommand()            {}
func (GenerateVideoCommand) isCommand()    {}
func (UndoCommand) isCommand()             {}
func (RedoCommand) isCommand()             {}
func (SuggestCommand) isCommand()          {}
func (EstimateCostCommand) isCommand()     {}
func (ZoomInCommand) isCommand()           {}
func (ZoomOutCommand) isCommand()          {}
func (ResetZoomCommand) isCommand()        {}
func (BeginPanCommand) isCommand()         {}
func (PanToCommand) isCommand()            {}
func (EndPanCommand) isCommand()           {}
func (ToggleComparisonCommand) isCommand() {}
func (SetSliderCommand) isCommand()        {}
