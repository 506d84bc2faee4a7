// Command swtdetect runs stroke-width text detection over an image
// supplied on the command line.
package main

import "github.com/Fepozopo/swtdetect/pkg/cli"

func main() {
	cli.Run()
}
