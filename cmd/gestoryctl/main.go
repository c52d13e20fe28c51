package main

import "github.com/gestory/gestoryctl/cmd/gestoryctl/cmd"

func main() {
	cmd.Execute()
}
