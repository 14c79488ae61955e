package main

import "github.com/gaurav-prasanna/anchorfix/cmd"

func main() {
	cmd.Execute()
}
