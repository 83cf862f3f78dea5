package token

import "sync"

// Grammar terminal ids are opaque to this package; only the grammar engine
// gives them meaning. The registry below lets that engine attach names to
// the ids it hands out, so diagnostics can render a terminal symbolically.
// Id 0 stays reserved for tokens not produced via grammar reduction.

var (
	termMu     sync.Mutex
	nextTermID int
	termNames  = make(map[int]string)
	termIDs    = make(map[string]int)
)

// RegisterTerminal assigns an id to a grammar terminal name. Registering
// the same name again returns the id assigned the first time.
func RegisterTerminal(name string) int {
	termMu.Lock()
	defer termMu.Unlock()

	if id, ok := termIDs[name]; ok {
		return id
	}
	nextTermID++
	termNames[nextTermID] = name
	termIDs[name] = nextTermID
	return nextTermID
}

// TerminalName returns the name registered for a grammar terminal id.
func TerminalName(id int) (string, bool) {
	termMu.Lock()
	defer termMu.Unlock()

	name, ok := termNames[id]
	return name, ok
}

// RegisteredTerminals returns a copy of all registered terminals.
func RegisteredTerminals() map[int]string {
	termMu.Lock()
	defer termMu.Unlock()

	result := make(map[int]string, len(termNames))
	for id, name := range termNames {
		result[id] = name
	}
	return result
}
