package main

import "github.com/ValentinKolb/redic/cmd"

func main() {
	cmd.Execute()
}
