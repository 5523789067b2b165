package main

import "github.com/alexiusacademia/gosag/cmd"

func main() {
	cmd.Execute()
}
