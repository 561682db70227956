// Package main provides the seclog CLI, which translates XML secure logging
// configuration files into DDS security plugin properties.
package main

func main() {
	Execute()
}
