package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/gemini-room-kit/pkg/domain"
)

func baseImage() *domain.ImageRef {
	return &domain.ImageRef{Data: []byte("base-room"), MIMEType: "image/jpeg"}
}

func styledImage(tag string) *domain.ImageRef {
	return &domain.ImageRef{Data: []byte("styled-" + tag), MIMEType: "image/png"}
}

func TestSession_SetBaseImage(t *testing.T) {
	t.Run("ベース画像の設定でoriginalとcurrentが揃って入るのだ", func(t *testing.T) {
		s := NewSession()
		img := baseImage()

		s.SetBaseImage(img)

		snap := s.Snapshot()
		assert.True(t, snap.Original.Equal(img))
		assert.True(t, snap.Current.Equal(img))
		assert.Nil(t, snap.LastStyled)
		assert.False(t, snap.CanCompare)
		assert.False(t, snap.CanVideo)
	})

	t.Run("新しいベース画像で履歴と派生状態がすべて初期化されるのだ", func(t *testing.T) {
		s := NewSession()
		s.SetBaseImage(baseImage())
		require.NoError(t, s.ApplyStyledResult(s.Epoch(), styledImage("a")))
		require.NoError(t, s.ApplyStyledResult(s.Epoch(), styledImage("b")))
		s.ZoomIn()
		require.NoError(t, s.ToggleComparison())

		s.SetBaseImage(baseImage())

		snap := s.Snapshot()
		assert.False(t, snap.CanUndo)
		assert.False(t, snap.CanRedo)
		assert.Nil(t, snap.LastStyled)
		assert.Equal(t, ZoomMin, snap.Zoom)
		assert.False(t, snap.Comparison)
		assert.Equal(t, SliderDefault, snap.SliderPercent)
	})
}

func TestSession_ApplyStyledResult(t *testing.T) {
	t.Run("成功結果はcurrentとlastStyledの両方に反映されるのだ", func(t *testing.T) {
		s := NewSession()
		s.SetBaseImage(baseImage())
		styled := styledImage("a")

		require.NoError(t, s.ApplyStyledResult(s.Epoch(), styled))

		snap := s.Snapshot()
		assert.True(t, snap.Current.Equal(styled))
		assert.True(t, snap.LastStyled.Equal(styled))
		assert.True(t, snap.CanCompare)
		assert.True(t, snap.CanVideo)
	})

	t.Run("古い世代の結果は破棄されて状態が変わらないのだ", func(t *testing.T) {
		s := NewSession()
		s.SetBaseImage(baseImage())
		staleEpoch := s.Epoch()

		// リモート呼び出し中に新しいベース画像が設定されたことを模す
		newBase := baseImage()
		s.SetBaseImage(newBase)

		err := s.ApplyStyledResult(staleEpoch, styledImage("stale"))

		assert.ErrorIs(t, err, ErrStaleResult)
		snap := s.Snapshot()
		assert.True(t, snap.Current.Equal(newBase))
		assert.Nil(t, snap.LastStyled)
		assert.False(t, snap.CanUndo)
	})

	t.Run("ベース画像なしでの反映は内部エラーになるのだ", func(t *testing.T) {
		s := NewSession()
		err := s.ApplyStyledResult(s.Epoch(), styledImage("a"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrStaleResult)
	})
}

func TestSession_UndoRedo(t *testing.T) {
	t.Run("アンドゥとリドゥはcurrentとlastStyledを揃えて動かすのだ", func(t *testing.T) {
		s := NewSession()
		s.SetBaseImage(baseImage())
		a := styledImage("a")
		b := styledImage("b")
		require.NoError(t, s.ApplyStyledResult(s.Epoch(), a))
		require.NoError(t, s.ApplyStyledResult(s.Epoch(), b))

		img, err := s.Undo()
		require.NoError(t, err)
		assert.True(t, img.Equal(a))

		snap := s.Snapshot()
		assert.True(t, snap.Current.Equal(a))
		assert.True(t, snap.LastStyled.Equal(a))

		img, err = s.Redo()
		require.NoError(t, err)
		assert.True(t, img.Equal(b))

		snap = s.Snapshot()
		assert.True(t, snap.Current.Equal(b))
		assert.True(t, snap.LastStyled.Equal(b))
	})

	t.Run("スタイル1回のアンドゥでベース画像に戻るのだ", func(t *testing.T) {
		s := NewSession()
		base := baseImage()
		s.SetBaseImage(base)
		// ベース画像を設定しただけではまだ戻る先がない
		assert.False(t, s.Snapshot().CanUndo)

		b := styledImage("b")
		require.NoError(t, s.ApplyStyledResult(s.Epoch(), b))
		require.True(t, s.Snapshot().CanUndo)

		img, err := s.Undo()
		require.NoError(t, err)
		assert.True(t, img.Equal(base))

		snap := s.Snapshot()
		assert.True(t, snap.Current.Equal(base))
		// lastStyled はベース復元では動かない
		assert.True(t, snap.LastStyled.Equal(b))
		assert.True(t, snap.CanRedo)

		img, err = s.Redo()
		require.NoError(t, err)
		assert.True(t, img.Equal(b))
		assert.True(t, s.Snapshot().Current.Equal(b))
	})
}

func TestSession_Comparison(t *testing.T) {
	t.Run("スタイル前は比較モードに入れないのだ", func(t *testing.T) {
		s := NewSession()
		s.SetBaseImage(baseImage())

		err := s.ToggleComparison()

		assert.Error(t, err)
		assert.Equal(t, domain.FailurePrecondition, domain.KindOf(err))
		assert.False(t, s.Snapshot().Comparison)
	})

	t.Run("ベース画像に戻した後も比較のafterはlastStyledなのだ", func(t *testing.T) {
		s := NewSession()
		base := baseImage()
		s.SetBaseImage(base)
		b := styledImage("b")
		require.NoError(t, s.ApplyStyledResult(s.Epoch(), b))

		// アンドゥで current はベース画像に戻る
		_, err := s.Undo()
		require.NoError(t, err)

		require.NoError(t, s.ToggleComparison())

		snap := s.Snapshot()
		assert.True(t, snap.Comparison)
		assert.True(t, snap.Current.Equal(base))
		assert.True(t, snap.Original.Equal(base))
		assert.True(t, snap.LastStyled.Equal(b))
	})

	t.Run("アンドゥ後も比較のbeforeはoriginal、afterはlastStyledなのだ", func(t *testing.T) {
		s := NewSession()
		base := baseImage()
		s.SetBaseImage(base)
		a := styledImage("a")
		b := styledImage("b")
		require.NoError(t, s.ApplyStyledResult(s.Epoch(), a))
		require.NoError(t, s.ApplyStyledResult(s.Epoch(), b))

		// アンドゥで current は a に戻る
		_, err := s.Undo()
		require.NoError(t, err)

		require.NoError(t, s.ToggleComparison())

		snap := s.Snapshot()
		assert.True(t, snap.Comparison)
		// before は current ではなく必ず original
		assert.True(t, snap.Original.Equal(base))
		// after はカーソルが指す lastStyled (= a)
		assert.True(t, snap.LastStyled.Equal(a))
	})

	t.Run("比較モードは再トグルで解除できるのだ", func(t *testing.T) {
		s := NewSession()
		s.SetBaseImage(baseImage())
		require.NoError(t, s.ApplyStyledResult(s.Epoch(), styledImage("a")))

		require.NoError(t, s.ToggleComparison())
		assert.True(t, s.Snapshot().Comparison)

		require.NoError(t, s.ToggleComparison())
		assert.False(t, s.Snapshot().Comparison)
	})
}
