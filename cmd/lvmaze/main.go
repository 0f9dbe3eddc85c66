// Command lvmaze solves oriented-cost mazes from text files.
package main

func main() {
	Execute()
}
