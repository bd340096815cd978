package logger

const MatchStartMsg = "新比賽開始 (%s 模式)"
const PointScoredMsg = "%s 得分！ 比分 %d : %d"
const MatchOverMsg = "比賽結束！ %s 獲勝"
const PaddleHitMsg = "%s 球拍擊球, 球速 %.1f"

const PauseMsg = "遊戲暫停"
const ResumeMsg = "遊戲繼續"
const ModeChangedMsg = "切換模式: %s"

const ResizeMsg = "場地大小變更 %.0fx%.0f"
const RetuneMsg = "遊戲參數已重新載入"

const ConfigReloadFailedMsg = "設定檔重新載入失敗: %v"
const ConfigMissingMsg = "找不到設定檔 %s，使用預設值"

const StartupMsg = "遊戲啟動 (%s 介面, %s 環境)"
const ShutdownMsg = "遊戲關閉"
const WatchMsg = "監聽設定檔 %s"
