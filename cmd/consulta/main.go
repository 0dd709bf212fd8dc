// Command consulta is the batch judicial case lookup CLI.
package main

import (
	"github.com/litigio-labs/consulta-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
