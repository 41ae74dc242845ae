package main

import "github.com/ValentinKolb/dWeet/cmd"

func main() {
	cmd.Execute()
}
