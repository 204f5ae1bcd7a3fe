package main

import "poc-portal/cmd"

func main() {
	cmd.Execute()
}
