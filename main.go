// Command wikiroulette prints a random Wikipedia article summary to the terminal.
package main

import "github.com/gaurav-prasanna/wikiroulette/cmd"

func main() {
	cmd.Execute()
}
