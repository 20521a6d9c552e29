package main

import "github.com/phanxgames/glide/cmd/glide/cmd"

func main() {
	cmd.Execute()
}
