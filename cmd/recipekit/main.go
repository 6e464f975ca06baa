package main

import "recipekit/internal/cli"

func main() {
	cli.Execute()
}
