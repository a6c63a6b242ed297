// Package state holds the single application state of the scini shell.
//
// State changes only through Intents dispatched to a Store. The Store owns the
// current State, runs the pure Reduce function for every Intent and then
// notifies subscribers synchronously, in the order they subscribed:
//
//	store := state.NewStore(state.Initial())
//	unsubscribe := store.Subscribe(func(s state.State) { ... })
//	store.Dispatch(state.Navigate{Location: "/controls?q=lights"})
//
// An Intent dispatched from inside a subscriber is queued and reduced after
// the current notification round finishes.
package state
