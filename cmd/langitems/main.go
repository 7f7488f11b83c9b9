// langitems is a developer tool that inspects the fernc language-item
// catalog: the fixed set of library declarations the compiler locates
// through the `lang` marker attribute.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
