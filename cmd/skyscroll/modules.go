package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyscroll/internal/registry"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List gameplay modules",
	Long: `Shows every registered gameplay module in attach order. The modules
list in the config file selects a subset; an empty list enables all.`,
	Args: cobra.NoArgs,
	Run:  runModules,
}

func runModules(cmd *cobra.Command, args []string) {
	modules := registry.List()

	if len(modules) == 0 {
		fmt.Println("No modules registered.")
		return
	}

	cfg, err := loadConfig()
	enabled := func(string) bool { return true }
	if err == nil {
		enabled = cfg.Enabled
	}

	fmt.Println("Modules:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modules {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	// Print header
	fmt.Printf("  %-5s  %-*s  %-7s  %s\n", "Order", maxIDLen, "ID", "Enabled", "Title")
	fmt.Printf("  %-5s  %-*s  %-7s  %s\n", "-----", maxIDLen, "--", "-------", "-----")

	for _, m := range modules {
		on := "no"
		if enabled(m.ID) {
			on = "yes"
		}
		fmt.Printf("  %-5d  %-*s  %-7s  %s\n", m.Order, maxIDLen, m.ID, on, m.Title)
	}
}
