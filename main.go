package main

import "github.com/Dima111000/shedule-zsm-1/cmd"

func main() {
	cmd.Execute()
}
