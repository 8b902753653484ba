package imgutil

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// DetectMIME は先頭バイトから MIME タイプを推定するのだ。
func DetectMIME(data []byte) string {
	return http.DetectContentType(data)
}

// IsImage はデータが画像として扱えるかどうかを返すのだ。
func IsImage(data []byte) bool {
	return strings.HasPrefix(DetectMIME(data), "image/")
}

// EncodeDataURL はバイナリ画像を転送可能な data URL 文字列へ符号化します。
// mimeType が空の場合は内容から推定します。
func EncodeDataURL(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = DetectMIME(data)
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL は data URL 文字列をバイナリと MIME タイプに復号します。
func DecodeDataURL(s string) (data []byte, mimeType string, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, "", fmt.Errorf("data URL ではありません")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("data URL の区切りが見つかりません")
	}

	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return nil, "", fmt.Errorf("base64 以外の data URL には対応していません")
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("base64 の復号に失敗しました: %w", err)
	}
	return data, mimeType, nil
}
