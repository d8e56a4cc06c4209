package main

import "sync"

const (
	maxMessages = 1000
)

var (
	messageMu sync.Mutex
	messages  []string
)

func consoleMessage(msg string) {
	if msg == "" {
		return
	}

	messageMu.Lock()
	messages = append(messages, msg)
	if len(messages) > maxMessages {
		messages = messages[len(messages)-maxMessages:]
	}
	messageMu.Unlock()
}

// consoleTail returns up to n of the newest messages, oldest first.
func consoleTail(n int) []string {
	messageMu.Lock()
	defer messageMu.Unlock()

	if len(messages) < n {
		n = len(messages)
	}
	out := make([]string, n)
	copy(out, messages[len(messages)-n:])
	return out
}
