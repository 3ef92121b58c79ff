package main

import "fmt"

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

func PrintInfo(format string, a ...any) {
	fmt.Printf(colorBlue+"i "+format+colorReset+"\n", a...)
}

func PrintSuccess(format string, a ...any) {
	fmt.Printf(colorGreen+"ok "+format+colorReset+"\n", a...)
}

func PrintWarning(format string, a ...any) {
	fmt.Printf(colorYellow+"! "+format+colorReset+"\n", a...)
}

func PrintError(format string, a ...any) {
	fmt.Printf(colorRed+"x "+format+colorReset+"\n", a...)
}

func PrintHeader(title string) {
	fmt.Printf("\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}
