package domain

import "errors"

var (
	// ErrChannelNotFound means the upstream page returned 404 for a tracked
	// channel. The orchestrator reacts by deregistering the channel.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrChannelExists is returned when adding a channel that is already on
	// the watch list for the same kind.
	ErrChannelExists = errors.New("channel already tracked")
)
