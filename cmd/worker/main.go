/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/willipe53/onebor-position-keeper/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
