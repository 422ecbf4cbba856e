package hfsm

// Logger receives one call per hook invocation, named after the state it
// ran on and the hook method ("substitute", "enter", "update",
// "transition", "react", "leave"). Attach one with AttachLogger;
// github.com/apextree/hfsm/pkg/logging provides a log/slog-backed
// implementation.
type Logger interface {
	Log(state string, method string)
}
