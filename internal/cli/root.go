// Package cli implements the devisqa command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devisqa",
	Short: "Agent Gemini pour analyser un devis PDF",
	Long: `devisqa découpe un devis PDF en projets, indexe leur contenu et répond
aux questions projet par projet en s'appuyant sur Gemini. Sans clé API
(GEMINI_API_KEY), un mode hors ligne déterministe restitue le contexte
retrouvé.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
