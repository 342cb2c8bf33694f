package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/cli/config"
	"github.com/secmon-lab/atelier/pkg/domain/types"
	"github.com/secmon-lab/atelier/pkg/usecase"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var analysisID string
	var output string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "analysis",
			Usage:       "Analysis ID to export (the full store when omitted)",
			Sources:     cli.EnvVars("ATELIER_ANALYSIS_ID"),
			Destination: &analysisID,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (stdout when omitted)",
			Destination: &output,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "export",
		Usage: "Export analyses as a portable JSON document",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc, err := usecase.New(ctx, repo)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize use cases")
			}

			var data []byte
			if analysisID != "" {
				var filename string
				data, filename, err = uc.ExportAnalysis(types.AnalysisID(analysisID))
				if err != nil {
					return err
				}
				if output == "" {
					output = filename
				}
			} else {
				data, err = uc.ExportAll()
				if err != nil {
					return err
				}
			}

			if output == "" || output == "-" {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write export file", goerr.V("path", output))
			}
			logging.Default().Info("Export written", "path", output, "bytes", len(data))
			return nil
		},
	}
}
