package state

// Reducer computes the next state from the current state and an action.
type Reducer func(State, Action) State

// Reduce is the session reducer. It has no side effects: persistence is
// handled by the Persistence middleware.
//
// SyncSessionStorage carries the persisted token as payload; an empty
// payload clears the token.
func Reduce(s State, a Action) State {
	switch a.Type {
	case SetToken:
		s.Token = a.Payload
		return s
	case RemoveToken:
		s.Token = ""
		return s
	case SetMessage:
		s.Message = a.Payload
		return s
	case SyncSessionStorage:
		s.Token = a.Payload
		return s
	default:
		return s
	}
}
