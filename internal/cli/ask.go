package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/devisqa/internal/agent"
	"github.com/dgallion1/devisqa/internal/config"
	"github.com/dgallion1/devisqa/internal/gemini"
	"github.com/spf13/cobra"
)

var askFlags struct {
	pdf       string
	question  string
	section   string
	topK      int
	chunkSize int
	overlap   int
	model     string
	asJSON    bool
}

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Poser une question sur un devis PDF",
	Long: `Analyse le devis PDF et répond à la question pour chaque projet détecté,
avec un score de confiance et les pages sources.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Fail on a missing file before any processing begins.
		if _, err := os.Stat(askFlags.pdf); err != nil {
			return fmt.Errorf("pdf file not found: %s: %w", askFlags.pdf, err)
		}

		cfg := config.Load()
		model := askFlags.model
		if model == "" {
			model = cfg.GeminiModel
		}

		gen, err := gemini.New(cmd.Context(), cfg.GeminiAPIKey, model)
		if err != nil {
			return err
		}
		if closer, ok := gen.(io.Closer); ok {
			defer closer.Close()
		}

		ag, err := agent.FromPDF(askFlags.pdf, agent.Options{
			Section:   askFlags.section,
			ChunkSize: askFlags.chunkSize,
			Overlap:   askFlags.overlap,
			Generator: gen,
		})
		if err != nil {
			return err
		}

		answers, err := ag.Answer(cmd.Context(), askFlags.question, askFlags.topK, "")
		if err != nil {
			return err
		}

		if askFlags.asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(answers)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderAnswers(answers))
		return nil
	},
}

func init() {
	askCmd.Flags().StringVar(&askFlags.pdf, "pdf", "", "Chemin vers le devis en PDF")
	askCmd.Flags().StringVar(&askFlags.question, "question", "", "Question à poser à l'agent")
	askCmd.Flags().StringVar(&askFlags.section, "section", "", "Numéro de section à filtrer (ex: 25)")
	askCmd.Flags().IntVar(&askFlags.topK, "top-k", agent.DefaultTopK, "Nombre de passages à injecter dans Gemini")
	askCmd.Flags().IntVar(&askFlags.chunkSize, "chunk-size", agent.DefaultChunkSize, "Taille des chunks en caractères")
	askCmd.Flags().IntVar(&askFlags.overlap, "overlap", agent.DefaultOverlap, "Chevauchement entre les chunks")
	askCmd.Flags().StringVar(&askFlags.model, "model", "", "Modèle Gemini à utiliser (défaut: GEMINI_MODEL)")
	askCmd.Flags().BoolVar(&askFlags.asJSON, "json", false, "Afficher les résultats au format JSON")
	askCmd.MarkFlagRequired("pdf")
	askCmd.MarkFlagRequired("question")
	rootCmd.AddCommand(askCmd)
}
