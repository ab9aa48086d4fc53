// drivectl is a small CLI for inspecting OneDrive metadata collections
// through the Graph drive client.
package main

func main() {
	Execute()
}
