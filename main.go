package main

import "github.com/theirongolddev/switchride/cmd"

func main() {
	cmd.Execute()
}
