package consensus

import "github.com/wonny/warroom/internal/contracts"

// actionRemap collapses the extended scorer vocabulary into the three
// canonical actions the arbiter scores.
// ⭐ SSOT: 액션 리매핑 테이블은 여기서만 정의
var actionRemap = map[contracts.Action]contracts.Action{
	contracts.ActionBuy:  contracts.ActionBuy,
	contracts.ActionSell: contracts.ActionSell,
	contracts.ActionHold: contracts.ActionHold,

	contracts.ActionMaintain: contracts.ActionHold,
	contracts.ActionReduce:   contracts.ActionSell,
	contracts.ActionTrim:     contracts.ActionSell,
	contracts.ActionIncrease: contracts.ActionBuy,
	contracts.ActionAdd:      contracts.ActionBuy,
	contracts.ActionDCA:      contracts.ActionBuy,
}

// Remap resolves any action to its canonical form. Unknown vocabulary
// maps to HOLD — an unrecognized opinion must never move a position.
// Idempotent: Remap(Remap(a)) == Remap(a).
func Remap(a contracts.Action) contracts.Action {
	if canonical, ok := actionRemap[a]; ok {
		return canonical
	}
	return contracts.ActionHold
}
