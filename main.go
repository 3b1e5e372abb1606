package main

import "github.com/Mohsinsiddi/tokenapi/cmd"

func main() {
	cmd.Execute()
}
