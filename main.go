// Package main is the entry point for the plstats CLI tool, which loads
// Premier League match data and computes player/team performance metrics.
package main

import "github.com/walauceh/Premier-League-Analytics-Project/cmd"

func main() {
	cmd.Execute()
}
