package utils

import "fmt"

// Print a Colored Block in terminal
func ColoredBlock(block string, red, green, blue uint8) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}

// Returns the number of bytes in n bits, rounded up
func BytesForBits(n uint64) uint64 {
	return (n + 7) / 8
}
