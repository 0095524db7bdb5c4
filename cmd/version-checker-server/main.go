package main

import "github.com/oshokin/version-checker/cmd/version-checker-server/cmd"

func main() {
	cmd.Execute()
}
