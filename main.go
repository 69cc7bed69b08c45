// Command nichekit is the meditation teaching niche finder and
// income calculator.
package main

import "github.com/nichekit-dev/nichekit/internal/cli"

func main() {
	cli.Execute()
}
