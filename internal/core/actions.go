package core

// Action is a logical input the controller understands
type Action int

const (
	ActionNone Action = iota
	ActionMoveNext
	ActionMovePrevious
	ActionUnselect
	ActionDescend
	ActionAscend
	ActionReload
	ActionToggleSort
	ActionQuit
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case ActionMoveNext:
		return "MoveNext"
	case ActionMovePrevious:
		return "MovePrevious"
	case ActionUnselect:
		return "Unselect"
	case ActionDescend:
		return "Descend"
	case ActionAscend:
		return "Ascend"
	case ActionReload:
		return "Reload"
	case ActionToggleSort:
		return "ToggleSort"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}
