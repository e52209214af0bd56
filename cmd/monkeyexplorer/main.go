package main

import "github.com/dbsmedya/monkeyexplorer/cmd/monkeyexplorer/cmd"

func main() {
	cmd.Execute()
}
