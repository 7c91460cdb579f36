// Command controls builds a screen of dropdowns from a configuration file and
// renders it, replays scripted input against it, or runs it interactively.
//
// Usage:
//
//	controls render --config screen.yaml
//	controls replay --config screen.yaml --script events.txt
//	controls run    --config screen.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
