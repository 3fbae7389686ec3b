package main

import "todolist.com/todolist/cmd"

func main() {
	cmd.Execute()
}
