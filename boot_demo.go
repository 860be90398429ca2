// boot_demo.go - Early boot console sequence

package main

import (
	"strconv"
	"strings"
)

// Line 5 is longer than a row and wraps.
const bootLongLine = "Test_Line 50000000000000000000000000000000000000000000000000000500000000000000000000000000000000000000000"

// bootTestLines is the numbered block the boot sequence prints in cyan
func bootTestLines() string {
	var sb strings.Builder
	for i := 1; i <= 17; i++ {
		if i == 5 {
			sb.WriteString(bootLongLine)
		} else {
			sb.WriteString("Test_Line " + strconv.Itoa(i))
		}
		sb.WriteString(" \n")
	}
	return sb.String()
}

// RunBootDemo prints the boot banner, shapes and parks the hardware
// cursor, then prints the test block and the closing lines.
func RunBootDemo(grid *GridBuffer, port *CursorPort) {
	grid.WriteSequence([]byte("Loading Kernel Main...                    Done\n"))
	grid.WriteSequence([]byte("Creating TTY...               \n"))

	port.SetShape(12, 15)
	port.MoveTo(55, 22)

	grid.SetColors(VGAColorCyan, VGAColorBlack)
	grid.WriteSequence([]byte(bootTestLines()))

	grid.SetColors(VGAColorLightGrey, VGAColorBlack)
	grid.WriteSequence([]byte("                                          Done\n"))

	grid.SetColors(VGAColorLightBlue, VGAColorBlack)
	grid.WriteSequence([]byte("Hello there! \n"))
	grid.SetColors(VGAColorLightGrey, VGAColorBlack)
}
