package session

const (
	// ZoomMin / ZoomMax / ZoomStep はズーム倍率の下限・上限・1段階の刻みです。
	ZoomMin  = 1.0
	ZoomMax  = 3.0
	ZoomStep = 0.25

	// SliderDefault は比較スライダーの初期位置（%）です。
	SliderDefault = 50.0
)

// ViewState は描画層が参照する派生状態（ズーム・パン・比較表示）です。
// VersionStore を読むだけで、決して書き換えません。セッションをまたいで永続化もしません。
type ViewState struct {
	zoom   float64
	panX   float64
	panY   float64
	slider float64

	comparison bool

	// ドラッグ開始時のアンカー座標と、その時点のパンオフセット。
	panning      bool
	anchorX      float64
	anchorY      float64
	panAtAnchorX float64
	panAtAnchorY float64
}

// NewViewState は既定値（ズーム1.0、パン(0,0)、比較オフ、スライダー50%）を生成するのだ。
func NewViewState() *ViewState {
	return &ViewState{zoom: ZoomMin, slider: SliderDefault}
}

// Reset はすべての派生状態を既定値へ戻します。新しいベース画像の設定時に呼ばれます。
func (v *ViewState) Reset() {
	*v = ViewState{zoom: ZoomMin, slider: SliderDefault}
}

// ZoomIn はズーム倍率を1段階上げます（上限 3.0）。
func (v *ViewState) ZoomIn() {
	v.zoom = min(ZoomMax, v.zoom+ZoomStep)
}

// ZoomOut はズーム倍率を1段階下げます（下限 1.0）。
// ちょうど 1.0 に戻った時点でパンオフセットも (0,0) にリセットします。
func (v *ViewState) ZoomOut() {
	v.zoom = max(ZoomMin, v.zoom-ZoomStep)
	if v.zoom == ZoomMin {
		v.panX, v.panY = 0, 0
	}
}

// ResetZoom はズームとパンを即座に既定値へ戻すのだ。
func (v *ViewState) ResetZoom() {
	v.zoom = ZoomMin
	v.panX, v.panY = 0, 0
	v.panning = false
}

// BeginPan はドラッグ開始座標をアンカーとして記録します。
// パンはズーム中（倍率 > 1.0）のみ許可されます。
func (v *ViewState) BeginPan(x, y float64) {
	if v.zoom <= ZoomMin {
		return
	}
	v.panning = true
	v.anchorX, v.anchorY = x, y
	v.panAtAnchorX, v.panAtAnchorY = v.panX, v.panY
}

// PanTo はアンカーからの差分でパンオフセットを更新します。
// 画像境界へのクランプは行いません。
func (v *ViewState) PanTo(x, y float64) {
	if !v.panning {
		return
	}
	v.panX = v.panAtAnchorX + (x - v.anchorX)
	v.panY = v.panAtAnchorY + (y - v.anchorY)
}

// EndPan はドラッグを終了します。
func (v *ViewState) EndPan() { v.panning = false }

// SetComparison は比較モードのオン/オフを設定します。
// lastStyled の存在チェックは Session 側の責務です。
func (v *ViewState) SetComparison(on bool) { v.comparison = on }

// SetSlider は比較スライダー位置を [0,100] にクランプして設定します。
func (v *ViewState) SetSlider(percent float64) {
	v.slider = min(100, max(0, percent))
}

// Zoom は現在のズーム倍率を返すのだ。
func (v *ViewState) Zoom() float64 { return v.zoom }

// Pan は現在のパンオフセットを返すのだ。
func (v *ViewState) Pan() (x, y float64) { return v.panX, v.panY }

// Comparison は比較モードかどうかを返すのだ。
func (v *ViewState) Comparison() bool { return v.comparison }

// Slider は比較スライダー位置（%）を返すのだ。
func (v *ViewState) Slider() float64 { return v.slider }
