// citizenctl runs operator tasks against the Citizen Voice backend.
package main

import (
	"os"

	"CitizenVoice/cmd/citizenctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
