package main

import "userorders/cmd"

func main() {
	cmd.Execute()
}
