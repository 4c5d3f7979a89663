package main

import (
	"github.com/kmehta/moodlint/cmd"
)

func main() {
	cmd.Execute()
}
