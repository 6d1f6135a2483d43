// Package ui implements the customer- and staff-facing views over the
// heladería API. Each view renders into a display region and re-renders
// fully from the server's response after every operation; the client
// never keeps authoritative state of its own.
package ui

// Region is a display area whose content gets fully replaced on every
// render.
type Region interface {
	Replace(content string)
}

// Alerter surfaces a blocking, user-visible message.
type Alerter interface {
	Alert(message string)
}

// Field is a single-value input, such as the table-number entry.
type Field interface {
	Value() string
	Clear()
}
