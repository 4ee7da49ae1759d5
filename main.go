package main

import "github.com/robfromboulder/viewmapper/cmd"

var version = "0.1.0"

func main() {
	cmd.Execute(version)
}
