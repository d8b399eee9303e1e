// Package event provides synchronous change notifications for the vizcore
// engines.
//
// An Event[T] keeps an ordered registry of hooks. Trigger calls every hook,
// in the order they were attached, on the caller's goroutine. Engines trigger
// their events once, at the end of each public operation, so a hook always
// observes a fully consistent structure.
//
// Example usage:
//
//	changed := event.New[string]()
//	hook := changed.Hook(func(msg string) { fmt.Println(msg) })
//	changed.Trigger("inserted 7")
//	hook.Unhook()
//
// Hooks may unhook themselves (or others) while a trigger is in progress;
// Trigger iterates over a snapshot taken before the first callback runs.
package event
