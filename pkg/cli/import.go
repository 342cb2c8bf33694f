package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atelier/pkg/cli/config"
	"github.com/secmon-lab/atelier/pkg/usecase"
	"github.com/secmon-lab/atelier/pkg/utils/logging"
	"github.com/secmon-lab/atelier/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdImport() *cli.Command {
	var input string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Input file path (stdin when omitted)",
			Destination: &input,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "import",
		Usage: "Import a portable JSON document into the store",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			var r io.Reader = os.Stdin
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return goerr.Wrap(err, "failed to open import file", goerr.V("path", input))
				}
				defer safe.Close(ctx, f)
				r = f
			}

			data, err := io.ReadAll(r)
			if err != nil {
				return goerr.Wrap(err, "failed to read import document")
			}

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

			imported, err := uc.ImportDocument(ctx, data)
			if err != nil {
				return err
			}
			logging.Default().Info("Import completed", "analyses", len(imported))
			return nil
		},
	}
}
