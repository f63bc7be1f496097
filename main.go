// Command tasktxt is a terminal viewer for plain-text checklists.
package main

import "github.com/twiced-technology-gmbh/tasktxt/cmd"

func main() {
	cmd.Execute()
}
