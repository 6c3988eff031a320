package client

import (
	"fmt"
	"os"
	"sync"
)

// ExitMessage is displayed once the command is done (ex: update notice)
type ExitMessage struct {
	mutex    sync.Mutex
	Message  string
	disabled bool
}

var globalExitMessage *ExitMessage

// InitExitMessage must be called before any command runs
func InitExitMessage() {
	globalExitMessage = &ExitMessage{}
}

// GetExitMessage returns the global ExitMessage instance
func GetExitMessage() *ExitMessage {
	if globalExitMessage == nil {
		InitExitMessage()
	}
	return globalExitMessage
}

// SetMessage replaces the message
func (em *ExitMessage) SetMessage(msg string) {
	em.mutex.Lock()
	defer em.mutex.Unlock()
	em.Message = msg
}

// Disable the message (machine-readable outputs)
func (em *ExitMessage) Disable() {
	em.mutex.Lock()
	defer em.mutex.Unlock()
	em.disabled = true
}

// Display the message, if any, on stderr
func (em *ExitMessage) Display() {
	em.mutex.Lock()
	defer em.mutex.Unlock()
	if em.disabled || em.Message == "" {
		return
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprint(os.Stderr, em.Message)
}
