package summarizer

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Playback Summary":   "再生サマリー",
		"Generated":          "生成日時",
		"Run ID":             "実行ID",
		"Result":             "結果",
		"Streams":            "ストリーム",
		"Renderer":           "レンダラー",
		"Settings":           "設定",
		"Item":               "項目",
		"Value":              "値",
		"Path":               "パス",
		"Size":               "サイズ",
		"Frames":             "フレーム数",
		"Events":             "イベント数",
		"Snapshots":          "スナップショット",
		"Status":             "状態",
		"Phase":              "フェーズ",
		"Surface":            "サーフェス",
		"Frames drawn":       "描画フレーム数",
		"Draw failures":      "描画失敗数",
		"Surface resizes":    "サーフェスのリサイズ回数",
		"Render targets":     "描画ターゲット数",
		"Resolution changes": "解像度の変更回数",
		"Last error":         "最後のエラー",
		"Container":          "コンテナ",
		"Tolerance":          "許容誤差",
		"Scaler":             "スケーラー",
		"Background":         "背景色",
		"disabled":           "無効",
		"every %d frames":    "%d フレームごと",
		"Interrupted":        "中断",
		"Failed: %s":         "失敗: %s",
		"Completed":          "完了",
	})
}
