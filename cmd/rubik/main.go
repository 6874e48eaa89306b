// rubik - a 3x3x3 cube simulator with session recording.
package main

import (
	"github.com/SeamusWaldron/rubik2d/internal/cli"
)

func main() {
	cli.Execute()
}
