package main

import (
	"os"

	"github.com/OnitiFR/yd/cmd/yd/client"
	"github.com/OnitiFR/yd/cmd/yd/topics"
)

func main() {
	client.InitExitMessage()

	err := topics.Execute()

	msg := client.GetExitMessage()
	msg.Display()

	if err != nil {
		os.Exit(1)
	}
}
