/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/remogolf/wallace/cmd/wallace/cmd"

func main() {
	cmd.Execute()
}
