package main

import "github.com/Rohan-Kumar320/Export-Apparel-Admin/cmd"

func main() {
	cmd.Execute()
}
