package session

import (
	"fmt"

	"github.com/shouni/gemini-room-kit/pkg/domain"
)

// VersionStore は original / current / lastStyled の3スロットを保持します。
//
// 不変条件:
//   - original と current は必ず対で設定・解除される。
//   - lastStyled は現在の original の下で最初のスタイリングが成功するまで nil。
//   - original は新しいベース画像イベントまで書き換えられない。
type VersionStore struct {
	original   *domain.ImageRef
	current    *domain.ImageRef
	lastStyled *domain.ImageRef
}

// SetBase は新しいベース画像を設定し、lastStyled を破棄します。
func (s *VersionStore) SetBase(img *domain.ImageRef) {
	s.original = img
	s.current = img
	s.lastStyled = nil
}

// ApplyStyled はスタイリング成功結果を current と lastStyled の両方に反映します。
// ベース画像が未設定のまま呼ばれるのはプログラミングエラーです。
func (s *VersionStore) ApplyStyled(img *domain.ImageRef) error {
	if s.original == nil {
		return fmt.Errorf("internal fault: styled result applied before base image was set")
	}
	s.current = img
	s.lastStyled = img
	return nil
}

// RestoreSnapshot はアンドゥ/リドゥで履歴カーソルが指すスナップショットを復元します。
// スタイル済みスナップショットは最新のスタイル結果として扱うため current と
// lastStyled を揃えて動かします。ベース画像へ戻った場合は current のみを動かし、
// lastStyled は変更しません。
func (s *VersionStore) RestoreSnapshot(img *domain.ImageRef) {
	s.current = img
	// ベース画像のスナップショットは SetBase で設定したものと同一の参照になる
	if img != s.original {
		s.lastStyled = img
	}
}

// HasBase はベース画像が設定済みかどうかを返すのだ。
func (s *VersionStore) HasBase() bool { return s.original != nil }

// Original は利用者が供給した元画像を返します。
func (s *VersionStore) Original() *domain.ImageRef { return s.original }

// Current は現在表示中の画像を返します。
func (s *VersionStore) Current() *domain.ImageRef { return s.current }

// LastStyled は直近にスタイリングへ成功した画像を返します（未スタイルなら nil）。
func (s *VersionStore) LastStyled() *domain.ImageRef { return s.lastStyled }
