package main

import "showroom-audit/cmd"

func main() {
	cmd.Execute()
}
