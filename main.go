package main

import "asset-curator/cmd"

func main() {
	cmd.Execute()
}
