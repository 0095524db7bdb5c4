package main

import "github.com/oshokin/version-checker/cmd/version-checker/cmd"

func main() {
	cmd.Execute()
}
