package main

import "momentum/cmd/mm/root"

func main() {
	root.Execute()
}
