package main

import "github.com/hellodexcom/greeter/cmd"

func main() {
	cmd.Execute()
}
