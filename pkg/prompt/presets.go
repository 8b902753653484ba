package prompt

import "time"

// PresetInstructions はワンタップで適用できる定型スタイル指示です。
var PresetInstructions = []string{
	"Redesign this room in a warm Scandinavian style with light wood and neutral tones",
	"Give this room a modern industrial look with exposed brick and black metal accents",
	"Turn this into a cozy bohemian room with plants, rattan and warm textiles",
	"Make this a minimalist Japanese-inspired room with clean lines and natural materials",
}

const (
	// StyleWaitInterval はスタイリング中の待機メッセージ差し替え間隔です。
	StyleWaitInterval = 3 * time.Second
	// VideoWaitInterval は動画生成中の待機メッセージ差し替え間隔です。
	VideoWaitInterval = 10 * time.Second
)

// StylingWaitMessages はスタイリング呼び出しの間にローテーション表示する文言です。
// 表示の差し替えは生成処理の進行を一切ブロックしません。
var StylingWaitMessages = []string{
	"部屋を採寸しています…",
	"家具の配置を検討しています…",
	"色のバランスを調整しています…",
	"仕上げの小物を選んでいます…",
}

// VideoWaitMessages は動画生成ジョブのポーリング中にローテーション表示する文言です。
var VideoWaitMessages = []string{
	"カメラの動線を計画しています…",
	"ウォークスルーを撮影しています…",
	"映像をレンダリングしています…（数分かかることがあります）",
	"もう少しで完成します…",
}

// SuggestionPrompt は「AIの提案」機能でモデルへ送る指示文です。
const SuggestionPrompt = "You are an interior designer. Look at this room photo and suggest three concrete restyling ideas. Answer with a short numbered list in Japanese."

// CostEstimatePrompt は費用見積り機能でモデルへ送る指示文です。
// 1枚目が元の部屋、2枚目がスタイル適用後の部屋です。
const CostEstimatePrompt = "The first image is the original room and the second is a proposed redesign. Estimate a rough cost range to realize the redesign (furniture, materials, labor) and itemize the main positions. Answer briefly in Japanese."

// VideoTourPrompt はスタイル済み画像からウォークスルー動画を起こす際の指示文です。
const VideoTourPrompt = "A smooth cinematic walkthrough of this room, slowly panning across the space, realistic lighting, no people."
