package main

import "github.com/gaurav-prasanna/tfdocs/cmd"

func main() {
	cmd.Execute()
}
