package main

import "github.com/osse101/PlotPlanner_Go/internal/cli"

func main() {
	cli.Execute()
}
