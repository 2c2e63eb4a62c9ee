package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stenoproject/plojo/machine"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Lists serial ports found by the Gemini PR machine driver",
	RunE: func(cmd *cobra.Command, args []string) error {
		ports := machine.ListPorts()
		switch len(ports) {
		case 0:
			fmt.Println("No ports found.")
		case 1:
			fmt.Println("Found 1 port:")
		default:
			fmt.Printf("Found %d ports:\n", len(ports))
		}
		for _, p := range ports {
			fmt.Printf("  %s\n", p.Name)
			if p.Manufacturer != "" {
				fmt.Printf("    Manufacturer: %s\n", p.Manufacturer)
			}
		}
		if georgi := machine.FindGeorgiPort(); georgi != "" {
			fmt.Printf("Georgi detected on %s\n", georgi)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(portsCmd)
}
