package session

import (
	"errors"
	"sync"

	"github.com/shouni/gemini-room-kit/pkg/domain"
)

// ErrStaleResult は、新しいベース画像の設定後に届いた古い生成結果を示します。
// 呼び出し側は結果を破棄するだけでよく、利用者へのエラー表示は不要です。
var ErrStaleResult = errors.New("stale styled result: base image has changed")

// Session は VersionStore・HistoryLedger・ViewState の三つ組を単一のミューテックスの
// 背後に隠し、すべての変更を直列化する唯一の書き込み主体です。
//
// 世代番号（epoch）は SetBaseImage のたびに進み、リモート呼び出し中にベース画像が
// 差し替わった場合の古い結果を ApplyStyledResult で弾くために使います。
type Session struct {
	mu     sync.Mutex
	store  VersionStore
	ledger *HistoryLedger
	view   *ViewState
	epoch  uint64
}

// NewSession は空のセッションを生成するのだ。
func NewSession() *Session {
	return &Session{
		ledger: NewHistoryLedger(),
		view:   NewViewState(),
	}
}

// SetBaseImage は新しいベース画像を設定し、履歴と派生状態をすべて初期化します。
// 履歴はベース画像のスナップショット1件から始まるため、最初のスタイリング後の
// アンドゥで元の写真に戻れます。世代番号が進むため、以後に届く古い世代の
// スタイル結果は破棄されます。
func (s *Session) SetBaseImage(img *domain.ImageRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.SetBase(img)
	s.ledger.Clear()
	s.ledger.Push(img)
	s.view.Reset()
	s.epoch++
}

// Epoch は現在の世代番号を返します。リモート呼び出しの前に控えておき、
// 結果の反映時に ApplyStyledResult へ渡します。
func (s *Session) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// ApplyStyledResult はスタイリング成功結果をストアと履歴へ原子的に反映します。
// epoch が現在の世代と一致しない場合は何も変更せず ErrStaleResult を返します。
func (s *Session) ApplyStyledResult(epoch uint64, img *domain.ImageRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return ErrStaleResult
	}
	if err := s.store.ApplyStyled(img); err != nil {
		return err
	}
	s.ledger.Push(img)
	return nil
}

// Undo は履歴カーソルを1つ戻し、そのスナップショットを復元して返します。
func (s *Session) Undo() (*domain.ImageRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, err := s.ledger.Undo()
	if err != nil {
		return nil, err
	}
	s.store.RestoreSnapshot(img)
	return img, nil
}

// Redo は履歴カーソルを1つ進め、そのスナップショットを復元して返します。
func (s *Session) Redo() (*domain.ImageRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, err := s.ledger.Redo()
	if err != nil {
		return nil, err
	}
	s.store.RestoreSnapshot(img)
	return img, nil
}

// ZoomIn はズーム倍率を1段階上げるのだ。
func (s *Session) ZoomIn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.ZoomIn()
}

// ZoomOut はズーム倍率を1段階下げるのだ。
func (s *Session) ZoomOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.ZoomOut()
}

// ResetZoom はズームとパンを既定値へ戻すのだ。
func (s *Session) ResetZoom() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.ResetZoom()
}

// BeginPan はドラッグ開始座標を記録するのだ。
func (s *Session) BeginPan(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.BeginPan(x, y)
}

// PanTo はドラッグ中のパンオフセットを更新するのだ。
func (s *Session) PanTo(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.PanTo(x, y)
}

// EndPan はドラッグを終了するのだ。
func (s *Session) EndPan() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.EndPan()
}

// ToggleComparison は比較モードを切り替えます。
// 比較モードに入るにはスタイル済み画像が1枚以上必要です。
func (s *Session) ToggleComparison() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.view.Comparison() && s.store.LastStyled() == nil {
		return domain.PreconditionFailure("比較する前に、まずスタイルを適用してください")
	}
	s.view.SetComparison(!s.view.Comparison())
	return nil
}

// SetSliderPercent は比較スライダー位置を設定するのだ（[0,100] にクランプ）。
func (s *Session) SetSliderPercent(percent float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.SetSlider(percent)
}

// Snapshot は描画層へ渡す読み取り専用ビューです。
// 比較モードの「前」は常に Original、「後」は常に LastStyled を使います。
// アンドゥ/リドゥで Current が動いても before/after の基準は崩れません。
type Snapshot struct {
	Original   *domain.ImageRef
	Current    *domain.ImageRef
	LastStyled *domain.ImageRef

	Zoom          float64
	PanX, PanY    float64
	Comparison    bool
	SliderPercent float64

	CanUndo    bool
	CanRedo    bool
	CanCompare bool
	CanVideo   bool

	Epoch uint64
}

// Snapshot は現在の状態の読み取り専用コピーを返します。
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	panX, panY := s.view.Pan()
	return Snapshot{
		Original:      s.store.Original(),
		Current:       s.store.Current(),
		LastStyled:    s.store.LastStyled(),
		Zoom:          s.view.Zoom(),
		PanX:          panX,
		PanY:          panY,
		Comparison:    s.view.Comparison(),
		SliderPercent: s.view.Slider(),
		CanUndo:       s.ledger.CanUndo(),
		CanRedo:       s.ledger.CanRedo(),
		CanCompare:    s.store.LastStyled() != nil,
		CanVideo:      s.store.LastStyled() != nil,
		Epoch:         s.epoch,
	}
}
