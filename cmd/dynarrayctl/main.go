// Command dynarrayctl exercises the dynarray package from the command line.
package main

func main() {
	execute()
}
