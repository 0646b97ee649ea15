package usecase

import "journal_backend/internal/feature/trades/domain/entity"

// フレーズバンクは損益の符号だけをキーとした定型文の集合です。
// 推論システムではなく、外部Analyzer未設定時のフォールバックです。
// 選択は取引IDに基づいて決定的に行われ、同じ取引には常に同じ文が返ります。
var (
	winPhrases = []string{
		"Solid execution. The entry aligned with your edge and you let the winner run.",
		"Good trade management. Locking in profit here keeps the equity curve healthy.",
		"Clean win. Review what made this setup work and look for it again.",
		"Nice result. Consistency on setups like this compounds over the month.",
		"Well played. The risk taken was proportional to the reward captured.",
	}
	lossPhrases = []string{
		"A controlled loss. What matters is that it stayed within your risk limit.",
		"Losing trades are tuition. Note what invalidated the setup and move on.",
		"This one went against you. Check whether the entry matched your plan.",
		"Drawdowns happen. Keep position sizing steady and avoid revenge trading.",
		"Review the exit. Cutting earlier may have preserved more capital here.",
	}
	breakevenPhrases = []string{
		"Flat result. Scratching a trade that stops working is a skill, not a failure.",
		"Breakeven keeps you in the game. Capital preserved is opportunity retained.",
		"No harm done. Consider whether the setup deserved an entry at all.",
	}
)

// PhraseFor は取引の損益符号に対応するフレーズバンクから、
// 取引IDで決定的にフレーズを1つ選択します。
func PhraseFor(t *entity.Trade) string {
	bank := breakevenPhrases
	if p := t.ProfitValue(); p > 0 {
		bank = winPhrases
	} else if p < 0 {
		bank = lossPhrases
	}
	return bank[int(t.ID)%len(bank)]
}
