// Package state holds the client session: the auth token and the last status
// message, changed only by dispatching actions through a Store.
package state

// ActionType tags an Action.
type ActionType string

const (
	SetToken           ActionType = "SET_TOKEN"
	RemoveToken        ActionType = "REMOVE_TOKEN"
	SetMessage         ActionType = "SET_MESSAGE"
	SyncSessionStorage ActionType = "SYNC_SESSION_STORAGE"
)

// Action is a plain state change request.
type Action struct {
	Type    ActionType
	Payload string
}

// State is the session snapshot. An empty string means the value is unset.
type State struct {
	// Token mirrors the value persisted under the "token" storage key.
	Token string
	// Message is display-only and never persisted.
	Message string
}

// HasToken reports whether a token is set.
func (s State) HasToken() bool { return s.Token != "" }

// InitialStore returns the state the application starts with.
func InitialStore() State {
	return State{}
}
