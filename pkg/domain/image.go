package domain

import "bytes"

// ImageRef は部屋写真1枚のバイナリと MIME タイプを保持する値オブジェクトです。
// 生成後は変更せず、同一性は参照ではなく値（バイト列 + MIME タイプ）で判定します。
type ImageRef struct {
	Data     []byte
	MIMEType string
}

// Equal は2つの ImageRef が値として同一かどうかを判定するのだ。
func (r *ImageRef) Equal(other *ImageRef) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.MIMEType == other.MIMEType && bytes.Equal(r.Data, other.Data)
}

// StyleRequest は1回の部屋スタイリング要求です。
// PlacementHint はクリック位置から導出した配置ヒント文で、指示文の末尾にそのまま連結されます。
type StyleRequest struct {
	Instruction   string
	PlacementHint string
	Seed          *int64 // nil でランダム、値指定で固定。Gemini SDK 互換
}

// StyleResult はスタイリング呼び出しの成功結果です。
// Message はモデルが画像と併せて返したテキスト（空のこともある）です。
type StyleResult struct {
	Image   *ImageRef
	Message string
}

// VideoResult は生成されたウォークスルー動画のデータとそのメタデータです。
type VideoResult struct {
	Data     []byte
	MIMEType string
}
