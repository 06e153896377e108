package user

// ActionType is the numeric actionType carried by user action packs.
type ActionType int

const (
	ActionRankQuery    ActionType = 1
	ActionHistoryQuery ActionType = 2
)

// Action is one of RankQuery, HistoryQuery or CustomAction.
type Action interface {
	Type() ActionType
	isAction()
}

// RankQuery asks for the rank board.
type RankQuery struct{}

// HistoryQuery asks for the caller's game history.
type HistoryQuery struct{}

// CustomAction is any code without a dedicated variant. Data is the
// additionalData object as sent.
type CustomAction struct {
	Code ActionType
	Data map[string]any
}

func (RankQuery) Type() ActionType { return ActionRankQuery }
func (HistoryQuery) Type() ActionType { return ActionHistoryQuery }
func (a CustomAction) Type() ActionType { return a.Code }

func (RankQuery) isAction() {}
func (HistoryQuery) isAction() {}
func (CustomAction) isAction() {}

// DecodeAction maps an actionType code to its variant. Known variants carry no
// payload, so data is only kept for CustomAction.
func DecodeAction(code int, data map[string]any) Action {
	switch ActionType(code) {
	case ActionRankQuery:
		return RankQuery{}
	case ActionHistoryQuery:
		return HistoryQuery{}
	default:
		return CustomAction{Code: ActionType(code), Data: data}
	}
}
