package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// WaitForCtrlC blocks until the process receives an interrupt or term signal.
func WaitForCtrlC() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
}

func SliceContains(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
